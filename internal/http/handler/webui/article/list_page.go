package article

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/http/handler/webui/article/component"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleListPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillArticleListPageViewModel(r)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	listPage := component.ArticleListPage(*vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}

func (h *Handler) fillArticleListPageViewModel(r *http.Request) (*component.ArticleListPageVModel, error) {
	vmodel := &component.ArticleListPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx, vmodel, r,
		h.fillArticleListPageVModelArticles,
		h.fillArticleListPageVModelTotal,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillArticleListPageVModelArticles(ctx context.Context, vmodel *component.ArticleListPageVModel, r *http.Request) error {
	articles, err := h.articles.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Articles = articles

	return nil
}

func (h *Handler) fillArticleListPageVModelTotal(ctx context.Context, vmodel *component.ArticleListPageVModel, r *http.Request) error {
	total, err := h.articles.Count(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Total = total

	return nil
}
