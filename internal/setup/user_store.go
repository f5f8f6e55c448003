package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/bbs/internal/adapter/cache"
	"github.com/bornholm/bbs/internal/config"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/pkg/errors"
)

var getUserStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.UserStore, error) {
	var (
		store port.UserStore
		err   error
	)

	store, err = getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cacheConf := conf.Storage.Database.Cache.Users
	if cacheConf.Enabled {
		slog.DebugContext(ctx, "using cached user store", slog.Duration("ttl", cacheConf.TTL), slog.Int("cache_size", cacheConf.Size))
		store = cache.NewUserStore(store, cacheConf.Size, cacheConf.TTL)
	}

	return store, nil
})
