package component

import (
	"github.com/a-h/templ"
)

type LinkItem struct {
	URL   templ.SafeURL
	Label string
}

type ErrorPageVModel struct {
	StatusCode int
	Message    string
	Links      []LinkItem
}

var errorPage = NewPage(templates, "templates/error_page.gohtml")

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return errorPage.Component(vmodel)
}
