package gorm

import (
	"time"

	"github.com/bornholm/bbs/internal/core/model"
	"golang.org/x/text/cases"
)

type Article struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Author   *User  `gorm:"constraint:OnDelete:RESTRICT;"`
	AuthorID string `gorm:"index;not null"`

	Content string `gorm:"not null"`

	// Case folded copy of Content, used for caseless substring search
	FoldedContent string
}

type wrappedArticle struct {
	a *Article
}

// Author implements model.Article.
func (w *wrappedArticle) Author() model.User {
	if w.a.Author == nil {
		return nil
	}

	return &wrappedUser{w.a.Author}
}

// Content implements model.Article.
func (w *wrappedArticle) Content() string {
	return w.a.Content
}

// CreatedAt implements model.Article.
func (w *wrappedArticle) CreatedAt() time.Time {
	return w.a.CreatedAt
}

// ID implements model.Article.
func (w *wrappedArticle) ID() model.ArticleID {
	return model.ArticleID(w.a.ID)
}

// UpdatedAt implements model.Article.
func (w *wrappedArticle) UpdatedAt() time.Time {
	return w.a.UpdatedAt
}

var _ model.Article = &wrappedArticle{}

func foldContent(content string) string {
	return cases.Fold().String(content)
}
