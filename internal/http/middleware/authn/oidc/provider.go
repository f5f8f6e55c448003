package oidc

import (
	"log/slog"
	"net/http"
	"strings"

	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
	"github.com/bornholm/go-x/slogx"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	next := authn.SafeNext(r.URL.Query().Get("next"), "/")

	if err := h.sessions.StoreNext(w, r, next); err != nil {
		slog.WarnContext(ctx, "could not store next url", slogx.Error(err))
	}

	gothic.BeginAuthHandler(w, r)
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := r.PathValue("provider")
	baseURL := httpCtx.BaseURL(ctx)
	loginURL := baseURL.JoinPath("/auth/login").String()

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		h.onLogin(provider, false)
		slog.ErrorContext(ctx, "could not complete user auth", slogx.Error(errors.WithStack(err)))
		http.Redirect(w, r, loginURL, http.StatusSeeOther)
		return
	}

	slog.DebugContext(ctx, "authenticated user", slog.String("provider", gothUser.Provider), slog.String("subject", gothUser.UserID))

	user := &authn.User{
		Email:       gothUser.Email,
		Provider:    gothUser.Provider,
		Subject:     gothUser.UserID,
		DisplayName: getUserDisplayName(gothUser),
	}

	if user.Provider == "" || user.Subject == "" {
		h.onLogin(provider, false)
		slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(errors.New("user provider or subject missing")))
		http.Redirect(w, r, loginURL, http.StatusSeeOther)
		return
	}

	if err := h.sessions.StoreUser(w, r, user); err != nil {
		h.onLogin(provider, false)
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(err))
		http.Redirect(w, r, loginURL, http.StatusSeeOther)
		return
	}

	h.onLogin(provider, true)

	next, err := h.sessions.PopNext(w, r)
	if err != nil {
		slog.WarnContext(ctx, "could not retrieve next url", slogx.Error(err))
	}

	http.Redirect(w, r, authn.NextURL(baseURL, authn.SafeNext(next, "/")), http.StatusSeeOther)
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := gothic.Logout(w, r); err != nil {
		slog.WarnContext(ctx, "could not logout user", slogx.Error(err))
	}

	baseURL := httpCtx.BaseURL(ctx)

	http.Redirect(w, r, baseURL.String(), http.StatusSeeOther)
}

func getUserDisplayName(user goth.User) string {
	var displayName string

	rawPreferredUsername, exists := user.RawData["preferred_username"]
	if exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok {
			displayName = preferredUsername
		}
	}

	if displayName == "" {
		displayName = user.NickName
	}

	if displayName == "" {
		displayName = user.Name
	}

	if displayName == "" && (user.FirstName != "" || user.LastName != "") {
		displayName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}

	if displayName == "" {
		displayName = user.UserID
	}

	return displayName
}
