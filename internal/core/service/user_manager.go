package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidUsername = errors.New("username is required")

// Used to spend the same time comparing passwords whether the user exists
// or not.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("dummy password"), bcrypt.DefaultCost)

type UserManager struct {
	store      port.UserStore
	bcryptCost int
}

func NewUserManager(store port.UserStore, bcryptCost int) *UserManager {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &UserManager{
		store:      store,
		bcryptCost: bcryptCost,
	}
}

// CreateLocalUser creates, or updates, a user authenticated by password.
func (m *UserManager) CreateLocalUser(ctx context.Context, username, password, displayName, email string) (model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.WithStack(ErrInvalidUsername)
	}

	if password == "" {
		return nil, errors.New("password is required")
	}

	if displayName == "" {
		displayName = username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash password")
	}

	existing, err := m.store.FindOrCreateUser(ctx, model.ProviderLocal, username)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user := model.CopyUser(existing)
	user.SetDisplayName(displayName)
	user.SetEmail(email)

	if err := m.store.SaveUser(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := m.store.SetUserPassword(ctx, user.ID(), hash); err != nil {
		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "local user saved", slog.String("user", model.UserString(user)))

	return user, nil
}

// Authenticate checks the given credentials against the stored password
// hash and returns port.ErrInvalidCredentials on mismatch.
func (m *UserManager) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := m.store.GetUserBySubject(ctx, model.ProviderLocal, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return nil, errors.WithStack(port.ErrInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	hash, err := m.store.GetUserPasswordHash(ctx, user.ID())
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return nil, errors.WithStack(port.ErrInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errors.WithStack(port.ErrInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (m *UserManager) List(ctx context.Context, provider string) ([]model.User, error) {
	opts := port.QueryUsersOptions{}
	if provider != "" {
		opts.Provider = &provider
	}

	users, err := m.store.QueryUsers(ctx, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}

// Delete removes a local user. Users still referenced by articles are
// protected and cannot be deleted.
func (m *UserManager) Delete(ctx context.Context, provider, subject string) error {
	user, err := m.store.GetUserBySubject(ctx, provider, subject)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := m.store.DeleteUser(ctx, user.ID()); err != nil {
		return errors.WithStack(err)
	}

	slog.InfoContext(ctx, "user deleted", slog.String("user", model.UserString(user)))

	return nil
}
