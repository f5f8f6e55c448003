package article

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/service"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/handler/webui/article/component"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	"github.com/bornholm/bbs/internal/markdown"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleDetailPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillArticleDetailPageViewModel(r)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	detailPage := component.ArticleDetailPage(*vmodel)

	templ.Handler(detailPage).ServeHTTP(w, r)
}

func (h *Handler) fillArticleDetailPageViewModel(r *http.Request) (*component.ArticleDetailPageVModel, error) {
	vmodel := &component.ArticleDetailPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx, vmodel, r,
		h.fillArticleDetailPageVModelArticle,
		h.fillArticleDetailPageVModelBody,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillArticleDetailPageVModelArticle(ctx context.Context, vmodel *component.ArticleDetailPageVModel, r *http.Request) error {
	articleID := model.ArticleID(r.PathValue("id"))

	article, err := h.articles.Get(ctx, articleID)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Article = article
	vmodel.CanModify = service.CanModifyArticle(httpCtx.User(ctx), article)

	return nil
}

func (h *Handler) fillArticleDetailPageVModelBody(ctx context.Context, vmodel *component.ArticleDetailPageVModel, r *http.Request) error {
	body, err := markdown.Render(vmodel.Article.Content())
	if err != nil {
		slog.WarnContext(ctx, "could not render article content", slogx.Error(err))
		body = template.HTML("<p>" + template.HTMLEscapeString(vmodel.Article.Content()) + "</p>")
	}

	vmodel.Body = body

	return nil
}
