package common

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type ViewModelFillerFunc[T any] func(ctx context.Context, vmodel *T, r *http.Request) error

// FillViewModel runs the fillers in order and stops at the first error.
func FillViewModel[T any](ctx context.Context, vmodel *T, r *http.Request, funcs ...ViewModelFillerFunc[T]) error {
	for _, fn := range funcs {
		if err := fn(ctx, vmodel, r); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
