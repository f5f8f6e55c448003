package article

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const messageRequired = "This field is required."

// ArticleForm holds the user submitted article fields. Only the content is
// read, any author field is ignored.
type ArticleForm struct {
	Content       string
	ContentErrors []string
}

func (f *ArticleForm) Validate() bool {
	f.ContentErrors = nil

	if strings.TrimSpace(f.Content) == "" {
		f.ContentErrors = append(f.ContentErrors, messageRequired)
	}

	return len(f.ContentErrors) == 0
}

func parseArticleForm(r *http.Request) (*ArticleForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &ArticleForm{
		Content: r.PostFormValue("content"),
	}, nil
}
