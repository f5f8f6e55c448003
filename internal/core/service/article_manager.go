package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/bornholm/bbs/internal/metrics"
	"github.com/pkg/errors"
)

type ArticleAction string

const (
	ArticleActionEdit   ArticleAction = "edit"
	ArticleActionDelete ArticleAction = "delete"
)

type ArticleManager struct {
	store port.ArticleStore
}

func NewArticleManager(store port.ArticleStore) *ArticleManager {
	return &ArticleManager{
		store: store,
	}
}

// List returns every article in insertion order.
func (m *ArticleManager) List(ctx context.Context) ([]model.Article, error) {
	articles, err := m.store.QueryArticles(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return articles, nil
}

func (m *ArticleManager) Count(ctx context.Context) (int64, error) {
	total, err := m.store.CountArticles(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

func (m *ArticleManager) Get(ctx context.Context, id model.ArticleID) (model.Article, error) {
	article, err := m.store.GetArticleByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return article, nil
}

// Create persists a new article. The author is always the given user,
// whatever the submitted data contained.
func (m *ArticleManager) Create(ctx context.Context, author model.User, content string) (model.Article, error) {
	if author == nil {
		return nil, errors.WithStack(port.ErrForbidden)
	}

	content, err := normalizeContent(content)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	article, err := m.store.CreateArticle(ctx, author.ID(), content)
	if err != nil {
		// The account was removed while its session was still alive
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(NewForbiddenError(MessageUnknownAuthor))
		}

		return nil, errors.WithStack(err)
	}

	metrics.ArticlesCreated.Inc()

	slog.InfoContext(ctx, "article created", slog.String("article_id", string(article.ID())), slog.String("author", model.UserString(author)))

	return article, nil
}

// Authorize loads the article and checks that the caller may perform the
// given action on it.
func (m *ArticleManager) Authorize(ctx context.Context, caller model.User, id model.ArticleID, action ArticleAction) (model.Article, error) {
	article, err := m.store.GetArticleByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !CanModifyArticle(caller, article) {
		metrics.ForbiddenRequests.WithLabelValues(string(action)).Inc()

		slog.WarnContext(ctx, "article modification denied",
			slog.String("article_id", string(id)),
			slog.String("action", string(action)),
			slog.String("user", model.UserString(caller)),
		)

		return nil, errors.WithStack(forbiddenError(action))
	}

	return article, nil
}

func (m *ArticleManager) Update(ctx context.Context, caller model.User, id model.ArticleID, content string) (model.Article, error) {
	if _, err := m.Authorize(ctx, caller, id, ArticleActionEdit); err != nil {
		return nil, errors.WithStack(err)
	}

	content, err := normalizeContent(content)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	article, err := m.store.UpdateArticle(ctx, id, content)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.ArticlesUpdated.Inc()

	return article, nil
}

func (m *ArticleManager) Delete(ctx context.Context, caller model.User, id model.ArticleID) error {
	if _, err := m.Authorize(ctx, caller, id, ArticleActionDelete); err != nil {
		return errors.WithStack(err)
	}

	if err := m.store.DeleteArticle(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	metrics.ArticlesDeleted.Inc()

	slog.InfoContext(ctx, "article deleted", slog.String("article_id", string(id)), slog.String("user", model.UserString(caller)))

	return nil
}

// Search returns the articles containing words, ignoring case. Callers are
// expected to have validated words beforehand.
func (m *ArticleManager) Search(ctx context.Context, words string) ([]model.Article, error) {
	metrics.SearchRequests.Inc()

	articles, err := m.store.SearchArticles(ctx, words)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return articles, nil
}

func normalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errors.WithStack(ErrEmptyContent)
	}

	return content, nil
}

func forbiddenError(action ArticleAction) *ForbiddenError {
	switch action {
	case ArticleActionDelete:
		return NewForbiddenError(MessageDeleteForbidden)
	default:
		return NewForbiddenError(MessageEditForbidden)
	}
}
