package authz

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/bbs/internal/core/model"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/url"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type AssertFunc func(ctx context.Context, user model.User) (bool, error)

func IsAuthenticated(ctx context.Context, user model.User) (bool, error) {
	return user != nil, nil
}

func Assert(ctx context.Context, user model.User, funcs ...AssertFunc) (bool, error) {
	for _, fn := range funcs {
		allowed, err := fn(ctx, user)
		if err != nil {
			return false, errors.WithStack(err)
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func Middleware(forbidden http.Handler, funcs ...AssertFunc) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			user := httpCtx.User(ctx)

			allowed, err := Assert(ctx, user, funcs...)
			if err != nil {
				slog.ErrorContext(ctx, "could not assert user authorizations", slogx.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !allowed {
				if forbidden == nil {
					http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				} else {
					forbidden.ServeHTTP(w, r)
				}
				return
			}

			h.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// LoginRequired redirects anonymous callers to the login page, with the
// originally requested url as the "next" parameter.
func LoginRequired(loginPath string) func(h http.Handler) http.Handler {
	redirectToLogin := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		currentURL := httpCtx.CurrentURL(ctx)

		next := currentURL.Path
		if currentURL.RawQuery != "" {
			next += "?" + currentURL.RawQuery
		}

		loginURL := url.Mutate(httpCtx.BaseURL(ctx), url.WithPath(loginPath), url.WithValues("next", next))

		http.Redirect(w, r, loginURL.String(), http.StatusSeeOther)
	})

	return Middleware(redirectToLogin, IsAuthenticated)
}
