package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

func TestSessions(t *testing.T) {
	store := sessions.NewCookieStore([]byte("01234567890123456789012345678901"))
	sess := NewSessions(store, "bbs_test")

	user := &User{
		Email:       "jdoe@example.net",
		Provider:    "local",
		Subject:     "jdoe",
		DisplayName: "John Doe",
	}

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	if err := sess.StoreUser(res, req, user); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	cookies := res.Result().Cookies()
	if e, g := 1, len(cookies); e != g {
		t.Fatalf("len(cookies): expected %d, got %d", e, g)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	authenticated, err := sess.Authenticate(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if authenticated == nil {
		t.Fatalf("authenticated: expected user, got nil")
	}

	if e, g := *user, *authenticated; e != g {
		t.Errorf("authenticated: expected %v, got %v", e, g)
	}

	anonymous, err := sess.Authenticate(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if anonymous != nil {
		t.Errorf("anonymous: expected nil, got %v", anonymous)
	}
}

func TestMiddlewareAnonymous(t *testing.T) {
	store := sessions.NewCookieStore([]byte("01234567890123456789012345678901"))
	sess := NewSessions(store, "bbs_test")

	var called bool

	handler := Middleware(nil, sess)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		if user := ContextUser(r.Context()); user != nil {
			t.Errorf("ContextUser(): expected nil, got %v", user)
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Errorf("next handler was not called")
	}
}
