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

func (h *Handler) getArticleEditPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	article, err := h.articles.Authorize(ctx, httpCtx.User(ctx), model.ArticleID(r.PathValue("id")), service.ArticleActionEdit)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	renderArticleForm(w, r, article, &ArticleForm{Content: article.Content()})
}

func (h *Handler) handleArticleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := httpCtx.User(ctx)
	articleID := model.ArticleID(r.PathValue("id"))

	// Authorization happens before the submitted data is even read
	article, err := h.articles.Authorize(ctx, user, articleID, service.ArticleActionEdit)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	form, err := parseArticleForm(r)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	if !form.Validate() {
		renderArticleForm(w, r, article, form)
		return
	}

	updated, err := h.articles.Update(ctx, user, articleID, form.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			form.ContentErrors = []string{messageRequired}
			renderArticleForm(w, r, article, form)
			return
		}

		handleError(w, r, errors.WithStack(err))
		return
	}

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/articles", string(updated.ID())))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}

func renderArticleForm(w http.ResponseWriter, r *http.Request, article model.Article, form *ArticleForm) {
	vmodel := component.ArticleFormPageVModel{
		Article:       article,
		Content:       form.Content,
		ContentErrors: form.ContentErrors,
	}

	templ.Handler(component.ArticleFormPage(vmodel)).ServeHTTP(w, r)
}
