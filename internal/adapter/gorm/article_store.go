package gorm

import (
	"context"
	"time"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Timestamps are stored as text and do not sort reliably below the second,
// rowid follows insertion order.
const articleOrder = "articles.rowid ASC"

// CreateArticle implements port.ArticleStore.
func (s *Store) CreateArticle(ctx context.Context, authorID model.UserID, content string) (model.Article, error) {
	var article Article

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		now := time.Now().UTC()

		article = Article{
			ID:            string(model.NewArticleID()),
			CreatedAt:     now,
			UpdatedAt:     now,
			AuthorID:      string(authorID),
			Content:       content,
			FoldedContent: foldContent(content),
		}

		if err := db.Omit("Author").Create(&article).Error; err != nil {
			var sqliteErr *sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode() == sqlite3.CONSTRAINT_FOREIGNKEY {
				return errors.Wrapf(port.ErrNotFound, "author '%s' does not exist", authorID)
			}

			return errors.WithStack(err)
		}

		if err := db.Preload("Author").First(&article, "id = ?", article.ID).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArticle{&article}, nil
}

// GetArticleByID implements port.ArticleStore.
func (s *Store) GetArticleByID(ctx context.Context, id model.ArticleID) (model.Article, error) {
	var article Article

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Author").First(&article, "id = ?", string(id)).Error; err != nil {
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

	return &wrappedArticle{&article}, nil
}

// QueryArticles implements port.ArticleStore.
func (s *Store) QueryArticles(ctx context.Context) ([]model.Article, error) {
	var articles []*Article

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&Article{}).Preload("Author").Order(articleOrder).Find(&articles).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return wrapArticles(articles), nil
}

// SearchArticles implements port.ArticleStore.
func (s *Store) SearchArticles(ctx context.Context, words string) ([]model.Article, error) {
	var articles []*Article

	folded := foldContent(words)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		// instr() keeps '%' and '_' literal, unlike LIKE
		err := db.Model(&Article{}).
			Preload("Author").
			Where("instr(folded_content, ?) > 0", folded).
			Order(articleOrder).
			Find(&articles).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return wrapArticles(articles), nil
}

// UpdateArticle implements port.ArticleStore.
func (s *Store) UpdateArticle(ctx context.Context, id model.ArticleID, content string) (model.Article, error) {
	var article Article

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&article, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		// updated_at must strictly advance, even on coarse clocks
		updatedAt := time.Now().UTC()
		if !updatedAt.After(article.UpdatedAt) {
			updatedAt = article.UpdatedAt.Add(time.Microsecond)
		}

		err := db.Model(&Article{}).
			Where("id = ?", article.ID).
			Updates(map[string]any{
				"content":        content,
				"folded_content": foldContent(content),
				"updated_at":     updatedAt,
			}).Error
		if err != nil {
			return errors.WithStack(err)
		}

		if err := db.Preload("Author").First(&article, "id = ?", article.ID).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArticle{&article}, nil
}

// DeleteArticle implements port.ArticleStore.
func (s *Store) DeleteArticle(ctx context.Context, id model.ArticleID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Delete(&Article{}, "id = ?", string(id))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// CountArticles implements port.ArticleStore.
func (s *Store) CountArticles(ctx context.Context) (int64, error) {
	var total int64

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&Article{}).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

func wrapArticles(articles []*Article) []model.Article {
	wrapped := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		wrapped = append(wrapped, &wrappedArticle{a})
	}

	return wrapped
}
