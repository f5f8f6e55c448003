package authz

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bornholm/bbs/internal/core/model"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
)

func TestLoginRequired(t *testing.T) {
	protected := LoginRequired("/auth/login")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/articles/new?draft=1", nil)
		req = req.WithContext(httpCtx.SetCurrentURL(req.Context(), req.URL))

		res := httptest.NewRecorder()

		protected.ServeHTTP(res, req)

		if e, g := http.StatusSeeOther, res.Code; e != g {
			t.Fatalf("res.Code: expected %d, got %d", e, g)
		}

		location, err := url.Parse(res.Header().Get("Location"))
		if err != nil {
			t.Fatalf("%+v", err)
		}

		if e, g := "/auth/login", location.Path; e != g {
			t.Errorf("location.Path: expected '%s', got '%s'", e, g)
		}

		if e, g := "/articles/new?draft=1", location.Query().Get("next"); e != g {
			t.Errorf("next: expected '%s', got '%s'", e, g)
		}
	})

	t.Run("Authenticated", func(t *testing.T) {
		user := model.NewUser(model.ProviderLocal, "jdoe", "", "jdoe")

		req := httptest.NewRequest(http.MethodGet, "/articles/new", nil)
		req = req.WithContext(httpCtx.SetUser(req.Context(), user))

		res := httptest.NewRecorder()

		protected.ServeHTTP(res, req)

		if e, g := http.StatusOK, res.Code; e != g {
			t.Errorf("res.Code: expected %d, got %d", e, g)
		}
	})
}

func TestAssert(t *testing.T) {
	user := model.NewUser(model.ProviderLocal, "jdoe", "", "jdoe")

	allowed, err := Assert(t.Context(), user, IsAuthenticated)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if !allowed {
		t.Errorf("allowed: expected true, got false")
	}

	allowed, err = Assert(t.Context(), nil, IsAuthenticated)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if allowed {
		t.Errorf("allowed: expected false, got true")
	}
}
