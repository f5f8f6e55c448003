package article

import (
	"net/http"

	"github.com/bornholm/bbs/internal/core/port"
	"github.com/bornholm/bbs/internal/core/service"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/bbs/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

// handleError translates article related errors into their user facing
// counterparts before rendering the error page.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var forbiddenErr *service.ForbiddenError

	switch {
	case errors.As(err, &forbiddenErr):
		err = common.NewError(err.Error(), forbiddenErr.Message, http.StatusForbidden, articleLinks(r)...)
	case errors.Is(err, port.ErrForbidden):
		err = common.NewHTTPError(http.StatusForbidden)
	case errors.Is(err, port.ErrNotFound):
		err = common.NewError(err.Error(), "This article does not exist.", http.StatusNotFound)
	}

	common.HandleError(w, r, err)
}

func articleLinks(r *http.Request) []commonComp.LinkItem {
	articleID := r.PathValue("id")
	if articleID == "" {
		return nil
	}

	return []commonComp.LinkItem{
		{
			URL:   commonComp.BaseURL(r.Context(), commonComp.WithPath("/articles", articleID)),
			Label: "Back to the article",
		},
	}
}
