package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler exposes the default prometheus registry. When username is not
// empty, the endpoint requires HTTP basic authentication.
func NewHandler(username, password string) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	var handler http.Handler = promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})

	if username != "" {
		handler = basicAuth(username, password, handler)
	}

	h.mux.Handle("GET /{$}", handler)

	return h
}

var _ http.Handler = &Handler{}
