package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/bbs/internal/core/service"
	"github.com/bornholm/bbs/internal/http/handler/webui/article"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(articles *service.ArticleManager) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	mount(h.mux, "/assets/", common.NewHandler())
	mount(h.mux, "/", article.NewHandler(articles))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
