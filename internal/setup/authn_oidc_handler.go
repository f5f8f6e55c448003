package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/bornholm/bbs/internal/config"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
	"github.com/bornholm/bbs/internal/http/middleware/authn/oidc"
	"github.com/bornholm/bbs/internal/metrics"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/gitea"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
)

type oidcSetup struct {
	handler   *oidc.Handler
	providers []authn.Provider
}

var getOIDCAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*oidcSetup, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions, err := getSessionsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	baseURL := strings.TrimSuffix(conf.HTTP.BaseURL, "/")
	callbackURL := func(provider string) string {
		return fmt.Sprintf("%s/auth/oidc/providers/%s/callback", baseURL, provider)
	}

	gothProviders := make([]goth.Provider, 0)
	providers := make([]authn.Provider, 0)

	providersConf := conf.HTTP.Authn.Providers

	if providersConf.Google.Key != "" && providersConf.Google.Secret != "" {
		googleProvider := google.New(
			providersConf.Google.Key,
			providersConf.Google.Secret,
			callbackURL("google"),
			providersConf.Google.Scopes...,
		)

		gothProviders = append(gothProviders, googleProvider)

		providers = append(providers, authn.Provider{
			ID:    googleProvider.Name(),
			Label: "Google",
			Icon:  "fa-google",
		})
	}

	if providersConf.Github.Key != "" && providersConf.Github.Secret != "" {
		githubProvider := github.New(
			providersConf.Github.Key,
			providersConf.Github.Secret,
			callbackURL("github"),
			providersConf.Github.Scopes...,
		)

		gothProviders = append(gothProviders, githubProvider)

		providers = append(providers, authn.Provider{
			ID:    githubProvider.Name(),
			Label: "Github",
			Icon:  "fa-github",
		})
	}

	if providersConf.Gitea.Key != "" && providersConf.Gitea.Secret != "" {
		giteaProvider := gitea.NewCustomisedURL(
			providersConf.Gitea.Key,
			providersConf.Gitea.Secret,
			callbackURL("gitea"),
			providersConf.Gitea.AuthURL,
			providersConf.Gitea.TokenURL,
			providersConf.Gitea.ProfileURL,
			providersConf.Gitea.Scopes...,
		)

		gothProviders = append(gothProviders, giteaProvider)

		providers = append(providers, authn.Provider{
			ID:    giteaProvider.Name(),
			Label: providersConf.Gitea.Label,
			Icon:  "fa-git-alt",
		})
	}

	if providersConf.OIDC.Key != "" && providersConf.OIDC.Secret != "" {
		oidcProvider, err := openidConnect.New(
			providersConf.OIDC.Key,
			providersConf.OIDC.Secret,
			callbackURL("openid-connect"),
			providersConf.OIDC.DiscoveryURL,
			providersConf.OIDC.Scopes...,
		)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure oidc provider")
		}

		gothProviders = append(gothProviders, oidcProvider)

		providers = append(providers, authn.Provider{
			ID:    oidcProvider.Name(),
			Label: providersConf.OIDC.Label,
			Icon:  providersConf.OIDC.Icon,
		})
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	handler := oidc.NewHandler(
		sessions,
		oidc.WithOnLogin(func(provider string, success bool) {
			status := "success"
			if !success {
				status = "failure"
			}

			metrics.Logins.WithLabelValues(provider, status).Inc()
		}),
	)

	return &oidcSetup{
		handler:   handler,
		providers: providers,
	}, nil
})
