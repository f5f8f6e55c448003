package cache

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/pkg/errors"
)

type countingUserStore struct {
	port.UserStore
	users map[string]*model.BaseUser
	calls int
}

func (s *countingUserStore) FindOrCreateUser(ctx context.Context, provider string, subject string) (model.User, error) {
	s.calls++

	key := provider + "/" + subject
	if u, exists := s.users[key]; exists {
		return model.CopyUser(u), nil
	}

	u := model.NewUser(provider, subject, "", subject)
	s.users[key] = u

	return model.CopyUser(u), nil
}

func (s *countingUserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.calls++

	for _, u := range s.users {
		if u.ID() == userID {
			return model.CopyUser(u), nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

func (s *countingUserStore) SaveUser(ctx context.Context, user model.User) error {
	s.users[user.Provider()+"/"+user.Subject()] = model.CopyUser(user)
	return nil
}

func TestUserStoreCache(t *testing.T) {
	ctx := context.Background()

	backend := &countingUserStore{users: map[string]*model.BaseUser{}}
	store := NewUserStore(backend, 10, time.Minute)

	user, err := store.FindOrCreateUser(ctx, model.ProviderLocal, "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.FindOrCreateUser(ctx, model.ProviderLocal, "jdoe"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetUserByID(ctx, user.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, backend.calls; e != g {
		t.Errorf("backend.calls: expected %d, got %d", e, g)
	}

	renamed := model.CopyUser(user)
	renamed.SetDisplayName("John Doe")

	if err := store.SaveUser(ctx, renamed); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	refreshed, err := store.FindOrCreateUser(ctx, model.ProviderLocal, "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "John Doe", refreshed.DisplayName(); e != g {
		t.Errorf("refreshed.DisplayName(): expected '%s', got '%s'", e, g)
	}

	if e, g := 2, backend.calls; e != g {
		t.Errorf("backend.calls: expected %d, got %d", e, g)
	}
}

func TestUserStoreCacheMiss(t *testing.T) {
	backend := &countingUserStore{users: map[string]*model.BaseUser{}}
	store := NewUserStore(backend, 10, time.Minute)

	userID := model.NewUserID()

	for range 2 {
		if _, err := store.GetUserByID(context.Background(), userID); !errors.Is(err, port.ErrNotFound) {
			t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
		}
	}

	if e, g := 2, backend.calls; e != g {
		t.Errorf("backend.calls: expected %d, got %d", e, g)
	}
}
