package port

import (
	"context"

	"github.com/bornholm/bbs/internal/core/model"
)

type ArticleStore interface {
	// CreateArticle persists a new article authored by the given user, or returns ErrNotFound if the user does not exist
	CreateArticle(ctx context.Context, authorID model.UserID, content string) (model.Article, error)

	// GetArticleByID finds an article by its ID, or returns ErrNotFound if not found
	GetArticleByID(ctx context.Context, id model.ArticleID) (model.Article, error)

	// QueryArticles returns every article in insertion order
	QueryArticles(ctx context.Context) ([]model.Article, error)

	// SearchArticles returns the articles whose content contains words, ignoring case
	SearchArticles(ctx context.Context, words string) ([]model.Article, error)

	// UpdateArticle replaces the article content and refreshes its update time
	UpdateArticle(ctx context.Context, id model.ArticleID, content string) (model.Article, error)

	// DeleteArticle permanently removes an article, or returns ErrNotFound if not found
	DeleteArticle(ctx context.Context, id model.ArticleID) error

	CountArticles(ctx context.Context) (int64, error)
}
