package article

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/http/handler/webui/article/component"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func (h *Handler) getSearchPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillSearchPageViewModel(r)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	searchPage := component.SearchPage(*vmodel)

	templ.Handler(searchPage).ServeHTTP(w, r)
}

func (h *Handler) fillSearchPageViewModel(r *http.Request) (*component.SearchPageVModel, error) {
	vmodel := &component.SearchPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx, vmodel, r,
		h.fillSearchPageVModelResults,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillSearchPageVModelResults(ctx context.Context, vmodel *component.SearchPageVModel, r *http.Request) error {
	form := parseSearchForm(r.URL.Query())

	valid := form.Validate()

	vmodel.Words = form.Words
	vmodel.WordsErrors = form.WordsErrors

	if !valid || !form.ShouldSearch() {
		return nil
	}

	articles, err := h.articles.Search(ctx, form.Words)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Searched = true
	vmodel.Articles = articles

	return nil
}
