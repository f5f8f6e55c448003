package context

import (
	"context"

	"github.com/bornholm/bbs/internal/core/model"
)

const keyUser contextKey = "user"

// User returns the user attached to the request, or nil for anonymous
// requests.
func User(ctx context.Context) model.User {
	user, ok := ctx.Value(keyUser).(model.User)
	if !ok {
		return nil
	}

	return user
}

func SetUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}
