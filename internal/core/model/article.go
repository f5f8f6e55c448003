package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/xid"
)

type ArticleID string

func NewArticleID() ArticleID {
	return ArticleID(xid.New().String())
}

type Article interface {
	WithID[ArticleID]
	WithAuthor
	WithLifecycle

	Content() string
}

type BaseArticle struct {
	id        ArticleID
	author    User
	content   string
	createdAt time.Time
	updatedAt time.Time
}

// Author implements Article.
func (a *BaseArticle) Author() User {
	return a.author
}

// Content implements Article.
func (a *BaseArticle) Content() string {
	return a.content
}

// CreatedAt implements Article.
func (a *BaseArticle) CreatedAt() time.Time {
	return a.createdAt
}

// ID implements Article.
func (a *BaseArticle) ID() ArticleID {
	return a.id
}

// UpdatedAt implements Article.
func (a *BaseArticle) UpdatedAt() time.Time {
	return a.updatedAt
}

func NewArticle(id ArticleID, author User, content string, createdAt, updatedAt time.Time) *BaseArticle {
	return &BaseArticle{
		id:        id,
		author:    author,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

var _ Article = &BaseArticle{}

const articleTitleLength = 50

// ArticleTitle returns the first line of the article content, truncated
// to a displayable length.
func ArticleTitle(a Article) string {
	content := strings.TrimSpace(a.Content())

	if idx := strings.IndexAny(content, "\r\n"); idx != -1 {
		content = content[:idx]
	}

	if utf8.RuneCountInString(content) <= articleTitleLength {
		return content
	}

	runes := []rune(content)

	return string(runes[:articleTitleLength]) + "…"
}
