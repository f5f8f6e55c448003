package local

import (
	"net/http"

	"github.com/bornholm/bbs/internal/core/service"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
)

// Handler serves the login page, the password login flow and the logout
// endpoint shared by every login method.
type Handler struct {
	mux             *http.ServeMux
	sessions        *authn.Sessions
	users           *service.UserManager
	passwordEnabled bool
	providers       []authn.Provider
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessions *authn.Sessions, users *service.UserManager, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:             http.NewServeMux(),
		sessions:        sessions,
		users:           users,
		passwordEnabled: opts.PasswordEnabled,
		providers:       opts.Providers,
	}

	h.mux.HandleFunc("GET /login", h.getLoginPage)
	h.mux.Handle("POST /login", opts.LoginMiddleware(http.HandlerFunc(h.handleLogin)))
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
