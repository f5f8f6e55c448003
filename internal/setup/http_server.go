package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/bbs/internal/config"
	bbsHTTP "github.com/bornholm/bbs/internal/http"
	"github.com/bornholm/bbs/internal/http/handler/metrics"
	"github.com/bornholm/bbs/internal/http/handler/webui"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*bbsHTTP.Server, error) {
	sessions, err := getSessionsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure sessions from config")
	}

	bridgeMiddleware, err := getBridgeMiddlewareFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure bridge middleware from config")
	}

	localAuthn, err := getLocalAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure local authn handler from config")
	}

	oidcSetup, err := getOIDCAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure oidc authn handler from config")
	}

	articleManager, err := getArticleManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure article manager from config")
	}

	authnMiddleware := authn.Middleware(sessions)

	withUser := func(h http.Handler) http.Handler {
		return authnMiddleware(bridgeMiddleware(bbsHTTP.WithUserLogAttr(h)))
	}

	options := []bbsHTTP.OptionFunc{
		bbsHTTP.WithAddress(conf.HTTP.Address),
		bbsHTTP.WithBaseURL(conf.HTTP.BaseURL),
		bbsHTTP.WithShutdownTimeout(conf.HTTP.ShutdownTimeout),
		bbsHTTP.WithMount("/auth/", withUser(localAuthn)),
		bbsHTTP.WithMount("/auth/oidc/", oidcSetup.handler),
		bbsHTTP.WithMount("/", withUser(webui.NewHandler(articleManager))),
	}

	if conf.HTTP.Metrics.Enabled {
		options = append(options, bbsHTTP.WithMount("/metrics/", metrics.NewHandler(conf.HTTP.Metrics.Username, conf.HTTP.Metrics.Password)))
	}

	server := bbsHTTP.NewServer(options...)

	return server, nil
}
