package article

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/core/service"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/handler/webui/article/component"
	commonComp "github.com/bornholm/bbs/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleCreatePage(w http.ResponseWriter, r *http.Request) {
	formPage := component.ArticleFormPage(component.ArticleFormPageVModel{})

	templ.Handler(formPage).ServeHTTP(w, r)
}

func (h *Handler) handleArticleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := httpCtx.User(ctx)
	if user == nil {
		handleError(w, r, errors.New("could not retrieve user from context"))
		return
	}

	form, err := parseArticleForm(r)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	if !form.Validate() {
		renderArticleForm(w, r, nil, form)
		return
	}

	article, err := h.articles.Create(ctx, user, form.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			form.ContentErrors = []string{messageRequired}
			renderArticleForm(w, r, nil, form)
			return
		}

		handleError(w, r, errors.WithStack(err))
		return
	}

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/articles", string(article.ID())))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
