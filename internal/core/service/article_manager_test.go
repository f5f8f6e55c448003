package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bornholm/bbs/internal/adapter/gorm"
	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestArticleManagerWorkflow(t *testing.T) {
	ctx := context.Background()

	store := newTestStore(t)
	manager := NewArticleManager(store)

	alice := newTestUser(t, store, "alice")
	bob := newTestUser(t, store, "bob")

	article, err := manager.Create(ctx, alice, "  Hello World  ")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Hello World", article.Content(); e != g {
		t.Errorf("article.Content(): expected '%s', got '%s'", e, g)
	}

	if e, g := alice.ID(), article.Author().ID(); e != g {
		t.Errorf("article.Author().ID(): expected '%s', got '%s'", e, g)
	}

	results, err := manager.Search(ctx, "hello")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(results); e != g {
		t.Fatalf("len(results): expected %d, got %d", e, g)
	}

	_, err = manager.Update(ctx, bob, article.ID(), "Hijacked")

	var forbiddenErr *ForbiddenError
	if !errors.As(err, &forbiddenErr) {
		t.Fatalf("err: expected *ForbiddenError, got '%+v'", err)
	}

	if e, g := MessageEditForbidden, forbiddenErr.Message; e != g {
		t.Errorf("forbiddenErr.Message: expected '%s', got '%s'", e, g)
	}

	if !errors.Is(err, port.ErrForbidden) {
		t.Errorf("err: expected port.ErrForbidden, got '%+v'", err)
	}

	err = manager.Delete(ctx, bob, article.ID())
	if !errors.As(err, &forbiddenErr) {
		t.Fatalf("err: expected *ForbiddenError, got '%+v'", err)
	}

	if e, g := MessageDeleteForbidden, forbiddenErr.Message; e != g {
		t.Errorf("forbiddenErr.Message: expected '%s', got '%s'", e, g)
	}

	unchanged, err := manager.Get(ctx, article.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Hello World", unchanged.Content(); e != g {
		t.Errorf("unchanged.Content(): expected '%s', got '%s'", e, g)
	}

	updated, err := manager.Update(ctx, alice, article.ID(), "Hello Go")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !updated.UpdatedAt().After(article.UpdatedAt()) {
		t.Errorf("updated.UpdatedAt(): expected after %v, got %v", article.UpdatedAt(), updated.UpdatedAt())
	}

	if err := manager.Delete(ctx, alice, article.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	articles, err := manager.List(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(articles); e != g {
		t.Errorf("len(articles): expected %d, got %d", e, g)
	}
}

func TestArticleManagerValidation(t *testing.T) {
	ctx := context.Background()

	store := newTestStore(t)
	manager := NewArticleManager(store)

	alice := newTestUser(t, store, "alice")

	if _, err := manager.Create(ctx, alice, " \n\t "); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("err: expected ErrEmptyContent, got '%+v'", err)
	}

	if _, err := manager.Create(ctx, nil, "anonymous post"); !errors.Is(err, port.ErrForbidden) {
		t.Errorf("err: expected port.ErrForbidden, got '%+v'", err)
	}

	ghost := model.NewUser(model.ProviderLocal, "ghost", "", "ghost")

	_, err := manager.Create(ctx, ghost, "posted after deletion")

	var forbiddenErr *ForbiddenError
	if !errors.As(err, &forbiddenErr) {
		t.Fatalf("err: expected *ForbiddenError, got '%+v'", err)
	}

	if e, g := MessageUnknownAuthor, forbiddenErr.Message; e != g {
		t.Errorf("forbiddenErr.Message: expected '%s', got '%s'", e, g)
	}

	article, err := manager.Create(ctx, alice, "original")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.Update(ctx, alice, article.ID(), ""); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("err: expected ErrEmptyContent, got '%+v'", err)
	}

	if _, err := manager.Update(ctx, nil, article.ID(), "anonymous edit"); !errors.Is(err, port.ErrForbidden) {
		t.Errorf("err: expected port.ErrForbidden, got '%+v'", err)
	}

	if _, err := manager.Get(ctx, model.NewArticleID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
	}

	if err := manager.Delete(ctx, alice, model.NewArticleID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
	}
}

func TestCanModifyArticle(t *testing.T) {
	alice := model.NewUser(model.ProviderLocal, "alice", "", "alice")
	bob := model.NewUser(model.ProviderLocal, "bob", "", "bob")

	article := model.NewArticle(model.NewArticleID(), alice, "content", time.Now(), time.Now())

	type testCase struct {
		Name     string
		Caller   model.User
		Expected bool
	}

	testCases := []testCase{
		{Name: "Author", Caller: alice, Expected: true},
		{Name: "AuthorCopy", Caller: model.CopyUser(alice), Expected: true},
		{Name: "OtherUser", Caller: bob, Expected: false},
		{Name: "Anonymous", Caller: nil, Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, CanModifyArticle(tc.Caller, article); e != g {
				t.Errorf("CanModifyArticle(): expected %v, got %v", e, g)
			}
		})
	}
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

	if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return gorm.NewStore(db)
}

func newTestUser(t *testing.T, store port.UserStore, name string) model.User {
	user, err := store.FindOrCreateUser(context.Background(), model.ProviderLocal, name)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return user
}
