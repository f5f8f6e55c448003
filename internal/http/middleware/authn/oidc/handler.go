package oidc

import (
	"net/http"

	"github.com/bornholm/bbs/internal/http/middleware/authn"
)

// Handler drives the OAuth2/OpenID Connect flows of the providers
// registered with goth.
type Handler struct {
	mux      *http.ServeMux
	sessions *authn.Sessions
	onLogin  func(provider string, success bool)
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessions *authn.Sessions, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:      http.NewServeMux(),
		sessions: sessions,
		onLogin:  opts.OnLogin,
	}

	h.mux.HandleFunc("GET /providers/{provider}", h.handleProvider)
	h.mux.HandleFunc("GET /providers/{provider}/callback", h.handleProviderCallback)
	h.mux.HandleFunc("GET /providers/{provider}/logout", h.handleProviderLogout)

	return h
}

var _ http.Handler = &Handler{}
