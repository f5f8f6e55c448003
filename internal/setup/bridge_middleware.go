package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/bbs/internal/config"
	"github.com/bornholm/bbs/internal/http/middleware/bridge"
	"github.com/pkg/errors"
)

func getBridgeMiddlewareFromConfig(ctx context.Context, conf *config.Config) (func(http.Handler) http.Handler, error) {
	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return bridge.Middleware(userStore), nil
}
