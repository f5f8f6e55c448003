package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bornholm/bbs/internal/adapter/gorm"
	"github.com/bornholm/bbs/internal/core/model"
	httpCtx "github.com/bornholm/bbs/internal/http/context"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type staticAuthenticator struct {
	user *authn.User
}

// Authenticate implements [authn.Authenticator].
func (a *staticAuthenticator) Authenticate(w http.ResponseWriter, r *http.Request) (*authn.User, error) {
	return a.user, nil
}

func TestMiddleware(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	serve := func(authnUser *authn.User) model.User {
		var contextUser model.User

		handler := authn.Middleware(&staticAuthenticator{authnUser})(
			Middleware(store)(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					contextUser = httpCtx.User(r.Context())
				}),
			),
		)

		res := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		handler.ServeHTTP(res, req)

		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("res.Code: expected %d, got %d", e, g)
		}

		return contextUser
	}

	t.Run("Anonymous", func(t *testing.T) {
		if user := serve(nil); user != nil {
			t.Errorf("user: expected nil, got %v", user)
		}
	})

	t.Run("ExternalUser", func(t *testing.T) {
		user := serve(&authn.User{
			Provider:    "github",
			Subject:     "42",
			Email:       "jdoe@example.net",
			DisplayName: "jdoe",
		})
		if user == nil {
			t.Fatalf("user: expected user, got nil")
		}

		if e, g := "jdoe", user.DisplayName(); e != g {
			t.Errorf("user.DisplayName(): expected '%s', got '%s'", e, g)
		}

		renamed := serve(&authn.User{
			Provider:    "github",
			Subject:     "42",
			Email:       "jdoe@example.net",
			DisplayName: "John Doe",
		})

		if e, g := user.ID(), renamed.ID(); e != g {
			t.Errorf("renamed.ID(): expected '%s', got '%s'", e, g)
		}

		stored, err := store.GetUserByID(ctx, user.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "John Doe", stored.DisplayName(); e != g {
			t.Errorf("stored.DisplayName(): expected '%s', got '%s'", e, g)
		}
	})

	t.Run("UnknownLocalUser", func(t *testing.T) {
		user := serve(&authn.User{
			Provider: model.ProviderLocal,
			Subject:  "ghost",
		})

		if user != nil {
			t.Errorf("user: expected nil, got %v", user)
		}

		if _, err := store.GetUserBySubject(ctx, model.ProviderLocal, "ghost"); err == nil {
			t.Errorf("expected local user not to be created")
		}
	})
}

func newTestStore(t *testing.T) *gorm.Store {
	dbFile := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := gormlib.Open(gormlite.Open("file:"+dbFile), &gormlib.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		internalDB.Close()
	})

	return gorm.NewStore(db)
}
