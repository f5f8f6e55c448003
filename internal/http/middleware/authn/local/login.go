package local

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
	"github.com/bornholm/bbs/internal/http/middleware/authn/local/component"
	"github.com/bornholm/bbs/internal/metrics"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

const messageInvalidCredentials = "Please enter a correct username and password."

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.LoginPageVModel{
		PasswordEnabled: h.passwordEnabled,
		Providers:       h.providers,
		Next:            authn.SafeNext(r.URL.Query().Get("next"), "/"),
	}

	templ.Handler(component.LoginPage(vmodel)).ServeHTTP(w, r)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.passwordEnabled {
		common.HandleError(w, r, common.NewHTTPError(http.StatusNotFound))
		return
	}

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	ctx := r.Context()

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	next := authn.SafeNext(r.PostFormValue("next"), "/")

	user, err := h.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, port.ErrInvalidCredentials) {
			metrics.Logins.WithLabelValues(model.ProviderLocal, "failure").Inc()

			slog.WarnContext(ctx, "invalid login attempt", slog.String("username", username))

			vmodel := component.LoginPageVModel{
				PasswordEnabled: h.passwordEnabled,
				Providers:       h.providers,
				Next:            next,
				Username:        username,
				Error:           messageInvalidCredentials,
			}

			templ.Handler(component.LoginPage(vmodel), templ.WithStatus(http.StatusUnauthorized)).ServeHTTP(w, r)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	authnUser := &authn.User{
		Email:       user.Email(),
		Provider:    user.Provider(),
		Subject:     user.Subject(),
		DisplayName: user.DisplayName(),
	}

	if err := h.sessions.StoreUser(w, r, authnUser); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(err))
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	metrics.Logins.WithLabelValues(model.ProviderLocal, "success").Inc()

	baseURL := httpCtx.BaseURL(ctx)

	http.Redirect(w, r, authn.NextURL(baseURL, next), http.StatusSeeOther)
}
