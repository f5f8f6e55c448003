package authn

import (
	"context"
	"encoding/gob"
)

// User is an identity asserted by an authenticator, before it is mapped to
// a persistent model.User.
type User struct {
	Email       string
	Provider    string
	Subject     string
	DisplayName string
}

// Provider describes an external identity provider offered on the login
// page.
type Provider struct {
	ID    string
	Label string
	Icon  string
}

type contextKey string

const keyUser contextKey = "authnUser"

func ContextUser(ctx context.Context) *User {
	user, ok := ctx.Value(keyUser).(*User)
	if !ok {
		return nil
	}

	return user
}

func setContextUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

func init() {
	gob.Register(&User{})
}
