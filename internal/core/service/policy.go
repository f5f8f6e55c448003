package service

import "github.com/bornholm/bbs/internal/core/model"

// CanModifyArticle reports whether the caller is allowed to edit or delete
// the article. Only the article's author is.
func CanModifyArticle(caller model.User, article model.Article) bool {
	if caller == nil || article == nil {
		return false
	}

	return model.SameUser(caller, article.Author())
}
