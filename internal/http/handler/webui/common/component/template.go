package component

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/core/model"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templates embed.FS

var layout = template.Must(
	template.New("layout").
		Funcs(staticFuncs).
		Funcs(contextFuncs(context.Background())).
		ParseFS(templates, "templates/layout.gohtml"),
)

var staticFuncs = template.FuncMap{
	"title": model.ArticleTitle,
	"humanize": func(t time.Time) string {
		return humanize.Time(t)
	},
	"comma": func(n int64) string {
		return humanize.Comma(n)
	},
	"datetime": func(t time.Time) string {
		return t.Format(time.RFC3339)
	},
}

func contextFuncs(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"baseURL": func(paths ...string) string {
			return string(BaseURL(ctx, WithPath(paths...)))
		},
		"loginURL": func() string {
			return string(LoginURL(ctx))
		},
		"currentUser": func() model.User {
			return CurrentUser(ctx)
		},
		"isCurrentPath": func(path string) bool {
			return MatchPath(ctx, path)
		},
	}
}

// Page is an html template rendered inside the shared layout.
type Page struct {
	tmpl *template.Template
}

// Component binds the page to its view model.
func (p *Page) Component(vmodel any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl, err := p.tmpl.Clone()
		if err != nil {
			return errors.WithStack(err)
		}

		tmpl.Funcs(contextFuncs(ctx))

		if err := tmpl.ExecuteTemplate(w, "layout", vmodel); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

// NewPage parses the page templates matching patterns in fsys. Pages are
// expected to define the "title" and "content" blocks.
func NewPage(fsys fs.FS, patterns ...string) *Page {
	tmpl := template.Must(layout.Clone())
	tmpl = template.Must(tmpl.ParseFS(fsys, patterns...))

	return &Page{tmpl}
}
