package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestArticleStore(t *testing.T, factory func(t *testing.T) (Store, error)) {
	runStoreTestCases(t, factory, []storeTestCase{
		{
			Name: "CreateAndGet",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				jdoe, err := createUser(ctx, store, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				created, err := store.CreateArticle(ctx, jdoe.ID(), "Hello world")
				if err != nil {
					return errors.WithStack(err)
				}

				if created.ID() == "" {
					t.Errorf("created.ID(): expected non empty id")
				}

				if !created.CreatedAt().Equal(created.UpdatedAt()) {
					t.Errorf("created.UpdatedAt(): expected %v, got %v", created.CreatedAt(), created.UpdatedAt())
				}

				article, err := store.GetArticleByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Hello world", article.Content(); e != g {
					t.Errorf("article.Content(): expected '%s', got '%s'", e, g)
				}

				if article.Author() == nil {
					t.Fatalf("article.Author(): expected author, got nil")
				}

				if e, g := jdoe.ID(), article.Author().ID(); e != g {
					t.Errorf("article.Author().ID(): expected '%s', got '%s'", e, g)
				}

				if e, g := "jdoe", article.Author().DisplayName(); e != g {
					t.Errorf("article.Author().DisplayName(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetUnknownArticle",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				_, err := store.GetArticleByID(ctx, model.NewArticleID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				return nil
			},
		},
		{
			Name: "QueryInInsertionOrder",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				jdoe, err := createUser(ctx, store, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				asmith, err := createUser(ctx, store, "asmith")
				if err != nil {
					return errors.WithStack(err)
				}

				contents := []string{"first", "second", "third"}
				authors := []model.User{jdoe, asmith, jdoe}

				for i, c := range contents {
					if _, err := store.CreateArticle(ctx, authors[i].ID(), c); err != nil {
						return errors.WithStack(err)
					}
				}

				articles, err := store.QueryArticles(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := len(contents), len(articles); e != g {
					t.Fatalf("len(articles): expected %d, got %d", e, g)
				}

				for i, a := range articles {
					if e, g := contents[i], a.Content(); e != g {
						t.Errorf("articles[%d].Content(): expected '%s', got '%s'", i, e, g)
					}
				}

				for i, a := range articles {
					if e, g := authors[i].ID(), a.Author().ID(); e != g {
						t.Errorf("articles[%d].Author().ID(): expected '%s', got '%s'", i, e, g)
					}
				}

				total, err := store.CountArticles(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(3), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "CreateWithUnknownAuthor",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				_, err := store.CreateArticle(ctx, model.NewUserID(), "orphan")
				if !errors.Is(err, port.ErrNotFound) {
					t.Fatalf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				total, err := store.CountArticles(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(0), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "SearchIgnoresCase",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				jdoe, err := createUser(ctx, store, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				contents := []string{
					"Hello World",
					"Goodbye",
					"say HELLO again",
					"Élan vital",
					"100% sure",
					"under_score",
				}

				for _, c := range contents {
					if _, err := store.CreateArticle(ctx, jdoe.ID(), c); err != nil {
						return errors.WithStack(err)
					}
				}

				type searchCase struct {
					Words    string
					Expected []string
				}

				searchCases := []searchCase{
					{Words: "hello", Expected: []string{"Hello World", "say HELLO again"}},
					{Words: "HELLO", Expected: []string{"Hello World", "say HELLO again"}},
					{Words: "élan", Expected: []string{"Élan vital"}},
					{Words: "%", Expected: []string{"100% sure"}},
					{Words: "r_s", Expected: []string{"under_score"}},
					{Words: "_", Expected: []string{"under_score"}},
					{Words: "nothing", Expected: []string{}},
				}

				for _, sc := range searchCases {
					articles, err := store.SearchArticles(ctx, sc.Words)
					if err != nil {
						return errors.WithStack(err)
					}

					if e, g := len(sc.Expected), len(articles); e != g {
						t.Errorf("search '%s': len(articles): expected %d, got %d (%s)", sc.Words, e, g, spew.Sdump(contentsOf(articles)))
						continue
					}

					for i, a := range articles {
						if e, g := sc.Expected[i], a.Content(); e != g {
							t.Errorf("search '%s': articles[%d].Content(): expected '%s', got '%s'", sc.Words, i, e, g)
						}
					}
				}

				return nil
			},
		},
		{
			Name: "UpdateAdvancesUpdatedAt",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				jdoe, err := createUser(ctx, store, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				created, err := store.CreateArticle(ctx, jdoe.ID(), "draft")
				if err != nil {
					return errors.WithStack(err)
				}

				updated, err := store.UpdateArticle(ctx, created.ID(), "final")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "final", updated.Content(); e != g {
					t.Errorf("updated.Content(): expected '%s', got '%s'", e, g)
				}

				if !updated.CreatedAt().Equal(created.CreatedAt()) {
					t.Errorf("updated.CreatedAt(): expected %v, got %v", created.CreatedAt(), updated.CreatedAt())
				}

				if !updated.UpdatedAt().After(created.UpdatedAt()) {
					t.Errorf("updated.UpdatedAt(): expected after %v, got %v", created.UpdatedAt(), updated.UpdatedAt())
				}

				if e, g := jdoe.ID(), updated.Author().ID(); e != g {
					t.Errorf("updated.Author().ID(): expected '%s', got '%s'", e, g)
				}

				articles, err := store.SearchArticles(ctx, "FINAL")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(articles); e != g {
					t.Errorf("len(articles): expected %d, got %d", e, g)
				}

				if _, err := store.UpdateArticle(ctx, model.NewArticleID(), "nope"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				return nil
			},
		},
		{
			Name: "Delete",
			Run: func(t *testing.T, ctx context.Context, store Store) error {
				jdoe, err := createUser(ctx, store, "jdoe")
				if err != nil {
					return errors.WithStack(err)
				}

				created, err := store.CreateArticle(ctx, jdoe.ID(), "ephemeral")
				if err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteArticle(ctx, created.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetArticleByID(ctx, created.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				if err := store.DeleteArticle(ctx, created.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				return nil
			},
		},
	})
}

func contentsOf(articles []model.Article) []string {
	contents := make([]string, 0, len(articles))
	for _, a := range articles {
		contents = append(contents, a.Content())
	}
	return contents
}
