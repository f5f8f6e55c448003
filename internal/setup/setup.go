package setup

import (
	"context"
	"sync"

	"github.com/bornholm/bbs/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes the result of the given factory so that
// every component sharing a dependency gets the same instance.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once     sync.Once
		instance T
		err      error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			instance, err = factory(ctx, conf)
		})
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		return instance, nil
	}
}
