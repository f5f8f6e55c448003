package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/bbs/internal/config"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	"github.com/bornholm/bbs/internal/http/middleware/authn/local"
	"github.com/bornholm/bbs/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func getLocalAuthnHandlerFromConfig(ctx context.Context, conf *config.Config) (*local.Handler, error) {
	sessions, err := getSessionsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userManager, err := getUserManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oidcSetup, err := getOIDCAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts := []local.OptionFunc{
		local.WithPasswordEnabled(conf.HTTP.Authn.Local.Enabled),
		local.WithProviders(oidcSetup.providers...),
	}

	rateLimitConf := conf.HTTP.RateLimit
	if rateLimitConf.Enabled {
		loginRateLimit := ratelimit.Middleware(
			ratelimit.WithTrustHeaders(rateLimitConf.TrustHeaders),
			ratelimit.WithRate(rateLimitConf.Interval, rateLimitConf.MaxBurst),
			ratelimit.WithCache(rateLimitConf.CacheSize, rateLimitConf.CacheTTL),
			ratelimit.WithOnLimited(func(w http.ResponseWriter, r *http.Request) {
				common.HandleError(w, r, common.NewError("too many login attempts", "Too many login attempts. Please try again later.", http.StatusTooManyRequests))
			}),
		)

		opts = append(opts, local.WithLoginMiddleware(loginRateLimit))
	}

	return local.NewHandler(sessions, userManager, opts...), nil
}
