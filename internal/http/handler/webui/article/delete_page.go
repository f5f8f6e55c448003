package article

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/service"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/handler/webui/article/component"
	commonComp "github.com/bornholm/bbs/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleDeletePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	article, err := h.articles.Authorize(ctx, httpCtx.User(ctx), model.ArticleID(r.PathValue("id")), service.ArticleActionDelete)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	deletePage := component.ArticleDeletePage(component.ArticleDeletePageVModel{
		Article: article,
	})

	templ.Handler(deletePage).ServeHTTP(w, r)
}

func (h *Handler) handleArticleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.articles.Delete(ctx, httpCtx.User(ctx), model.ArticleID(r.PathValue("id"))); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/"))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
