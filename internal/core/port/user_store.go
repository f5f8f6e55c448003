package port

import (
	"context"

	"github.com/bornholm/bbs/internal/core/model"
)

type UserStore interface {
	// FindOrCreateUser searches for a User in the store by its provider/subject unique tuple and returns
	// it if it exists, or create a new one otherwise
	FindOrCreateUser(ctx context.Context, provider, subject string) (model.User, error)

	// GetUserByID finds a user by its ID, or returns ErrNotFound if not found
	GetUserByID(ctx context.Context, userID model.UserID) (model.User, error)

	// GetUserBySubject finds a user by its provider/subject tuple, or returns ErrNotFound if not found
	GetUserBySubject(ctx context.Context, provider, subject string) (model.User, error)

	// SaveUser saves a user in the store
	SaveUser(ctx context.Context, user model.User) error

	// SetUserPassword stores the password hash of a local user
	SetUserPassword(ctx context.Context, userID model.UserID, hash []byte) error

	// GetUserPasswordHash returns the password hash of a local user, or ErrNotFound if the user has none
	GetUserPasswordHash(ctx context.Context, userID model.UserID) ([]byte, error)

	// QueryUsers returns users ordered by display name
	QueryUsers(ctx context.Context, opts QueryUsersOptions) ([]model.User, error)

	// DeleteUser deletes a user, or returns ErrProtected while articles still reference it
	DeleteUser(ctx context.Context, userID model.UserID) error
}

type QueryUsersOptions struct {
	Provider *string
	Page     *int
	Limit    *int
}
