package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/pkg/errors"
)

type Store interface {
	port.ArticleStore
	port.UserStore
}

type storeTestCase struct {
	Name string
	Run  func(t *testing.T, ctx context.Context, store Store) error
}

func runStoreTestCases(t *testing.T, factory func(t *testing.T) (Store, error), testCases []storeTestCase) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			store, err := factory(t)
			if err != nil {
				t.Fatalf("could not create store: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}

func createUser(ctx context.Context, store port.UserStore, subject string) (model.User, error) {
	user, err := store.FindOrCreateUser(ctx, model.ProviderLocal, subject)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	base := model.CopyUser(user)
	base.SetDisplayName(subject)
	base.SetEmail(subject + "@example.net")

	if err := store.SaveUser(ctx, base); err != nil {
		return nil, errors.WithStack(err)
	}

	return base, nil
}
