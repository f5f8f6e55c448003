package component

import (
	"context"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/core/model"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/url"
)

var (
	WithPath   = url.WithPath
	WithValues = url.WithValues
)

func BaseURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := url.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func MatchPath(ctx context.Context, path string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == path
}

// LoginURL returns the login page url, redirecting back to the current
// page once authenticated.
func LoginURL(ctx context.Context) templ.SafeURL {
	currentURL := httpCtx.CurrentURL(ctx)

	next := currentURL.Path
	if currentURL.RawQuery != "" {
		next += "?" + currentURL.RawQuery
	}

	return BaseURL(ctx, WithPath("/auth/login"), WithValues("next", next))
}

func CurrentUser(ctx context.Context) model.User {
	return httpCtx.User(ctx)
}
