package gorm

import (
	"context"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindOrCreateUser implements port.UserStore.
func (s *Store) FindOrCreateUser(ctx context.Context, provider, subject string) (model.User, error) {
	var user model.User
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var u User

		err := db.Where("provider = ? AND subject = ?", provider, subject).
			Attrs(&User{
				ID:       string(model.NewUserID()),
				Provider: provider,
				Subject:  subject,
			}).
			FirstOrCreate(&u).Error
		if err != nil {
			return errors.WithStack(err)
		}

		user = &wrappedUser{&u}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// GetUserByID implements port.UserStore.
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// GetUserBySubject implements port.UserStore.
func (s *Store) GetUserBySubject(ctx context.Context, provider, subject string) (model.User, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "provider = ? AND subject = ?", provider, subject).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// SaveUser implements port.UserStore.
func (s *Store) SaveUser(ctx context.Context, user model.User) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		gormUser := fromUser(user)

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"provider", "subject", "display_name", "email", "updated_at"}),
		}).Omit("Articles").Create(gormUser).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// SetUserPassword implements port.UserStore.
func (s *Store) SetUserPassword(ctx context.Context, userID model.UserID, hash []byte) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Model(&User{}).Where("id = ?", string(userID)).Update("password_hash", hash)
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetUserPasswordHash implements port.UserStore.
func (s *Store) GetUserPasswordHash(ctx context.Context, userID model.UserID) ([]byte, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Select("id", "password_hash").First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(user.PasswordHash) == 0 {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user.PasswordHash, nil
}

// QueryUsers implements port.UserStore.
func (s *Store) QueryUsers(ctx context.Context, opts port.QueryUsersOptions) ([]model.User, error) {
	var users []*User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&User{})

		if opts.Provider != nil {
			query = query.Where("provider = ?", *opts.Provider)
		}

		if opts.Page != nil {
			limit := 10
			if opts.Limit != nil {
				limit = *opts.Limit
			}
			query = query.Offset(*opts.Page * limit)
		}

		if opts.Limit != nil {
			query = query.Limit(*opts.Limit)
		}

		query = query.Order("display_name ASC")

		if err := query.Find(&users).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedUsers := make([]model.User, 0, len(users))
	for _, u := range users {
		wrappedUsers = append(wrappedUsers, &wrappedUser{u})
	}

	return wrappedUsers, nil
}

// DeleteUser implements port.UserStore.
func (s *Store) DeleteUser(ctx context.Context, userID model.UserID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var articles int64
		if err := db.Model(&Article{}).Where("author_id = ?", string(userID)).Count(&articles).Error; err != nil {
			return errors.WithStack(err)
		}

		if articles > 0 {
			return errors.Wrapf(port.ErrProtected, "user is the author of %d article(s)", articles)
		}

		result := db.Delete(&User{}, "id = ?", string(userID))
		if result.Error != nil {
			var sqliteErr *sqlite3.Error
			if errors.As(result.Error, &sqliteErr) && sqliteErr.ExtendedCode() == sqlite3.CONSTRAINT_FOREIGNKEY {
				return errors.WithStack(port.ErrProtected)
			}

			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
