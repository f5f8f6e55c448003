package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	"github.com/bornholm/go-x/slogx"
)

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (*User, error)
}

// Middleware runs the authenticators in order and attaches the first
// identity found to the request context. When none matches, the request
// proceeds anonymously.
func Middleware(authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(err))
					common.HandleError(w, r, err)
					return
				}

				if user == nil {
					continue
				}

				ctx := setContextUser(r.Context(), user)

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		}

		return fn
	}
}
