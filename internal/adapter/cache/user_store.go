package cache

import (
	"context"
	"time"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
)

// UserStore keeps recently resolved users in memory. Every authenticated
// request resolves its user, so lookups by provider/subject and by id are
// served from the cache while writes go through and invalidate it.
type UserStore struct {
	backend   port.UserStore
	userCache *MultiIndexCache[*CacheableUser]
}

// FindOrCreateUser implements [port.UserStore].
func (s *UserStore) FindOrCreateUser(ctx context.Context, provider string, subject string) (model.User, error) {
	if user, exists := s.userCache.Get(getUserProviderSubjectCacheKey(provider, subject)); exists {
		return user, nil
	}

	user, err := s.backend.FindOrCreateUser(ctx, provider, subject)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	if user, exists := s.userCache.Get(string(userID)); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// GetUserBySubject implements [port.UserStore].
func (s *UserStore) GetUserBySubject(ctx context.Context, provider string, subject string) (model.User, error) {
	if user, exists := s.userCache.Get(getUserProviderSubjectCacheKey(provider, subject)); exists {
		return user, nil
	}

	user, err := s.backend.GetUserBySubject(ctx, provider, subject)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// QueryUsers implements [port.UserStore].
func (s *UserStore) QueryUsers(ctx context.Context, opts port.QueryUsersOptions) ([]model.User, error) {
	return s.backend.QueryUsers(ctx, opts)
}

// SaveUser implements [port.UserStore].
func (s *UserStore) SaveUser(ctx context.Context, user model.User) error {
	defer s.userCache.Remove(string(user.ID()))

	return s.backend.SaveUser(ctx, user)
}

// SetUserPassword implements [port.UserStore].
func (s *UserStore) SetUserPassword(ctx context.Context, userID model.UserID, hash []byte) error {
	return s.backend.SetUserPassword(ctx, userID, hash)
}

// GetUserPasswordHash implements [port.UserStore].
func (s *UserStore) GetUserPasswordHash(ctx context.Context, userID model.UserID) ([]byte, error) {
	return s.backend.GetUserPasswordHash(ctx, userID)
}

// DeleteUser implements [port.UserStore].
func (s *UserStore) DeleteUser(ctx context.Context, userID model.UserID) error {
	defer s.userCache.Remove(string(userID))

	return s.backend.DeleteUser(ctx, userID)
}

func NewUserStore(backend port.UserStore, size int, ttl time.Duration) *UserStore {
	return &UserStore{
		backend:   backend,
		userCache: NewMultiIndexCache[*CacheableUser](size, ttl),
	}
}

var _ port.UserStore = &UserStore{}
