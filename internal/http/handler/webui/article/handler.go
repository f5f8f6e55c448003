package article

import (
	"net/http"

	"github.com/bornholm/bbs/internal/core/service"
	"github.com/bornholm/bbs/internal/http/middleware/authz"
)

type Handler struct {
	mux      *http.ServeMux
	articles *service.ArticleManager
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(articles *service.ArticleManager) *Handler {
	h := &Handler{
		mux:      http.NewServeMux(),
		articles: articles,
	}

	loginRequired := authz.LoginRequired("/auth/login")

	h.mux.HandleFunc("GET /{$}", h.getArticleListPage)
	h.mux.HandleFunc("GET /search", h.getSearchPage)
	h.mux.HandleFunc("GET /articles/{id}", h.getArticleDetailPage)

	h.mux.Handle("GET /articles/new", loginRequired(http.HandlerFunc(h.getArticleCreatePage)))
	h.mux.Handle("POST /articles/new", loginRequired(http.HandlerFunc(h.handleArticleCreate)))
	h.mux.Handle("GET /articles/{id}/edit", loginRequired(http.HandlerFunc(h.getArticleEditPage)))
	h.mux.Handle("POST /articles/{id}/edit", loginRequired(http.HandlerFunc(h.handleArticleUpdate)))
	h.mux.Handle("GET /articles/{id}/delete", loginRequired(http.HandlerFunc(h.getArticleDeletePage)))
	h.mux.Handle("POST /articles/{id}/delete", loginRequired(http.HandlerFunc(h.handleArticleDelete)))

	return h
}

var _ http.Handler = &Handler{}
