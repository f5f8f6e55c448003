package testsuite

import (
	"bytes"
	"context"
	"testing"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/pkg/errors"
)

func TestUserStore(t *testing.T, factory func(t *testing.T) (Store, error)) {
	runStoreTestCases(t, factory, []storeTestCase{
		{
			Name: "FindOrCreateUserIsIdempotent",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				first, err := store.FindOrCreateUser(ctx, "oidc", "1234")
				if err != nil {
					return errors.WithStack(err)
				}

				second, err := store.FindOrCreateUser(ctx, "oidc", "1234")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := first.ID(), second.ID(); e != g {
					t.Errorf("second.ID(): expected '%s', got '%s'", e, g)
				}

				other, err := store.FindOrCreateUser(ctx, model.ProviderLocal, "1234")
				if err != nil {
					return errors.WithStack(err)
				}

				if first.ID() == other.ID() {
					t.Errorf("other.ID(): expected a distinct user for another provider")
				}

				return nil
			},
		},
		{
			Name: "SaveAndGetUser",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				jdoe, err := createUser(ctx, store, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				user, err := store.GetUserByID(ctx, jdoe.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "jdoe@example.net", user.Email(); e != g {
					t.Errorf("user.Email(): expected '%s', got '%s'", e, g)
				}

				user, err = store.GetUserBySubject(ctx, model.ProviderLocal, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := jdoe.ID(), user.ID(); e != g {
					t.Errorf("user.ID(): expected '%s', got '%s'", e, g)
				}

				if _, err := store.GetUserBySubject(ctx, model.ProviderLocal, "unknown"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				provider := model.ProviderLocal

				users, err := store.QueryUsers(ctx, port.QueryUsersOptions{Provider: &provider})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(users); e != g {
					t.Errorf("len(users): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "Password",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				jdoe, err := createUser(ctx, store, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetUserPasswordHash(ctx, jdoe.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				hash := []byte("not-a-real-hash")

				if err := store.SetUserPassword(ctx, jdoe.ID(), hash); err != nil {
					return errors.WithStack(err)
				}

				// Saving the profile must not reset the password
				if err := store.SaveUser(ctx, jdoe); err != nil {
					return errors.WithStack(err)
				}

				stored, err := store.GetUserPasswordHash(ctx, jdoe.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if !bytes.Equal(hash, stored) {
					t.Errorf("stored: expected '%s', got '%s'", hash, stored)
				}

				return nil
			},
		},
		{
			Name: "DeleteProtectedAuthor",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				jdoe, err := createUser(ctx, store, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				article, err := store.CreateArticle(ctx, jdoe.ID(), "Hello")
				if err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteUser(ctx, jdoe.ID()); !errors.Is(err, port.ErrProtected) {
					t.Fatalf("err: expected port.ErrProtected, got '%+v'", err)
				}

				if _, err := store.GetArticleByID(ctx, article.ID()); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteArticle(ctx, article.ID()); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteUser(ctx, jdoe.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetUserByID(ctx, jdoe.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				return nil
			},
		},
	})
}
