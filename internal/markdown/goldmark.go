package markdown

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// New returns a markdown converter producing safe html: raw html blocks
// are omitted and dangerous link destinations are dropped.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

var defaultMarkdown = New()

func Render(source string) (template.HTML, error) {
	var buff bytes.Buffer

	if err := defaultMarkdown.Convert([]byte(source), &buff); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}
