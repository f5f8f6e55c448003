package service

import (
	"context"
	"testing"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func TestUserManagerAuthenticate(t *testing.T) {
	ctx := context.Background()

	store := newTestStore(t)
	users := NewUserManager(store, bcrypt.MinCost)

	created, err := users.CreateLocalUser(ctx, "jdoe", "s3cr3t", "John Doe", "jdoe@example.net")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.ProviderLocal, created.Provider(); e != g {
		t.Errorf("created.Provider(): expected '%s', got '%s'", e, g)
	}

	authenticated, err := users.Authenticate(ctx, "jdoe", "s3cr3t")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := created.ID(), authenticated.ID(); e != g {
		t.Errorf("authenticated.ID(): expected '%s', got '%s'", e, g)
	}

	if e, g := "John Doe", authenticated.DisplayName(); e != g {
		t.Errorf("authenticated.DisplayName(): expected '%s', got '%s'", e, g)
	}

	if _, err := users.Authenticate(ctx, "jdoe", "wrong"); !errors.Is(err, port.ErrInvalidCredentials) {
		t.Errorf("err: expected port.ErrInvalidCredentials, got '%+v'", err)
	}

	if _, err := users.Authenticate(ctx, "unknown", "s3cr3t"); !errors.Is(err, port.ErrInvalidCredentials) {
		t.Errorf("err: expected port.ErrInvalidCredentials, got '%+v'", err)
	}

	// Recreating a user replaces its password
	if _, err := users.CreateLocalUser(ctx, "jdoe", "n3w", "", ""); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := users.Authenticate(ctx, "jdoe", "s3cr3t"); !errors.Is(err, port.ErrInvalidCredentials) {
		t.Errorf("err: expected port.ErrInvalidCredentials, got '%+v'", err)
	}

	if _, err := users.Authenticate(ctx, "jdoe", "n3w"); err != nil {
		t.Errorf("%+v", errors.WithStack(err))
	}
}

func TestUserManagerDeleteProtected(t *testing.T) {
	ctx := context.Background()

	store := newTestStore(t)
	users := NewUserManager(store, bcrypt.MinCost)
	articles := NewArticleManager(store)

	jdoe, err := users.CreateLocalUser(ctx, "jdoe", "s3cr3t", "", "")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := articles.Create(ctx, jdoe, "Hello"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := users.Delete(ctx, model.ProviderLocal, "jdoe"); !errors.Is(err, port.ErrProtected) {
		t.Errorf("err: expected port.ErrProtected, got '%+v'", err)
	}

	list, err := users.List(ctx, model.ProviderLocal)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(list); e != g {
		t.Errorf("len(list): expected %d, got %d", e, g)
	}
}
