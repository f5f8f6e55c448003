package setup

import (
	"context"

	"github.com/bornholm/bbs/internal/config"
	"github.com/bornholm/bbs/internal/core/service"
	"github.com/pkg/errors"
)

var getArticleManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ArticleManager, error) {
	store, err := getArticleStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewArticleManager(store), nil
})

// NewUserManagerFromConfig is used by the command line to manage local
// users.
func NewUserManagerFromConfig(ctx context.Context, conf *config.Config) (*service.UserManager, error) {
	userManager, err := getUserManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return userManager, nil
}

var getUserManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.UserManager, error) {
	store, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewUserManager(store, conf.HTTP.Authn.Local.BcryptCost), nil
})
