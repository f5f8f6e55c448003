package setup

import (
	"context"

	"github.com/bornholm/bbs/internal/config"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/pkg/errors"
)

var getArticleStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.ArticleStore, error) {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
})
