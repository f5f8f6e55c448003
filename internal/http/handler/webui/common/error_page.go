package common

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/bornholm/bbs/internal/http/handler/webui/common/component"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

type WithErrorLinks interface {
	error
	Links() []component.LinkItem
}

// HandleError renders the error page matching err. Errors carrying neither
// a status code nor a user message are logged and answered with a 500.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	vmodel := component.ErrorPageVModel{}

	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		statusCode = httpErr.StatusCode()
	case errors.Is(err, port.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, port.ErrForbidden):
		statusCode = http.StatusForbidden
	}

	vmodel.StatusCode = statusCode

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		vmodel.Message = userFacingErr.UserMessage()
	} else {
		vmodel.Message = http.StatusText(statusCode)
	}

	var errLinks WithErrorLinks
	if errors.As(err, &errLinks) {
		vmodel.Links = errLinks.Links()
	}

	if statusCode >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(errors.WithStack(err)))
	}

	errorPage := component.ErrorPage(vmodel)

	templ.Handler(errorPage, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}
