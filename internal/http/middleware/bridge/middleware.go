package bridge

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

// Middleware maps the identity asserted by the authn middleware to a
// persisted user and attaches it to the request context. Anonymous requests
// pass through untouched.
func Middleware(userStore port.UserStore) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authnUser := authn.ContextUser(ctx)
			if authnUser == nil {
				h.ServeHTTP(w, r)
				return
			}

			user, err := resolveUser(r, userStore, authnUser)
			if err != nil {
				if errors.Is(err, port.ErrNotFound) {
					slog.WarnContext(ctx, "session references an unknown local user", slog.String("subject", authnUser.Subject))
					h.ServeHTTP(w, r)
					return
				}

				common.HandleError(w, r, errors.WithStack(err))
				return
			}

			ctx = httpCtx.SetUser(ctx, user)
			r = r.WithContext(ctx)

			h.ServeHTTP(w, r)
		}

		return fn
	}
}

func resolveUser(r *http.Request, userStore port.UserStore, authnUser *authn.User) (model.User, error) {
	ctx := r.Context()

	// Local accounts are only created through the command line
	if authnUser.Provider == model.ProviderLocal {
		user, err := userStore.GetUserBySubject(ctx, authnUser.Provider, authnUser.Subject)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return user, nil
	}

	user, err := userStore.FindOrCreateUser(ctx, authnUser.Provider, authnUser.Subject)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	changed := user.DisplayName() != authnUser.DisplayName ||
		user.Email() != authnUser.Email

	if !changed {
		return user, nil
	}

	updatable := model.CopyUser(user)
	updatable.SetDisplayName(authnUser.DisplayName)
	updatable.SetEmail(authnUser.Email)

	if err := userStore.SaveUser(ctx, updatable); err != nil {
		return nil, errors.WithStack(err)
	}

	return updatable, nil
}
