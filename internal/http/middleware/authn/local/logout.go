package local

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/bbs/internal/core/model"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/handler/webui/common"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.sessions.RetrieveUser(r)
	if err != nil && !errors.Is(err, authn.ErrSessionNotFound) {
		slog.WarnContext(ctx, "could not retrieve user from session", slogx.Error(err))
	}

	if err := h.sessions.Clear(w, r); err != nil && !errors.Is(err, authn.ErrSessionNotFound) {
		slog.ErrorContext(ctx, "could not clear session", slogx.Error(err))
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	baseURL := httpCtx.BaseURL(ctx)

	// Users authenticated by an external provider are logged out from it too
	if user != nil && user.Provider != model.ProviderLocal {
		http.Redirect(w, r, baseURL.JoinPath("/auth/oidc/providers", user.Provider, "logout").String(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, baseURL.String(), http.StatusSeeOther)
}
