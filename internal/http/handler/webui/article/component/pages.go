package component

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/core/model"
	common "github.com/bornholm/bbs/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var (
	listPage   = common.NewPage(templates, "templates/article_list.gohtml", "templates/article_items.gohtml")
	detailPage = common.NewPage(templates, "templates/article_detail.gohtml")
	formPage   = common.NewPage(templates, "templates/article_form.gohtml")
	deletePage = common.NewPage(templates, "templates/article_delete.gohtml")
	searchPage = common.NewPage(templates, "templates/search.gohtml", "templates/article_items.gohtml")
)

type ArticleListPageVModel struct {
	Articles []model.Article
	Total    int64
}

func ArticleListPage(vmodel ArticleListPageVModel) templ.Component {
	return listPage.Component(vmodel)
}

type ArticleDetailPageVModel struct {
	Article model.Article
	// Rendered markdown content
	Body      template.HTML
	CanModify bool
}

func ArticleDetailPage(vmodel ArticleDetailPageVModel) templ.Component {
	return detailPage.Component(vmodel)
}

type ArticleFormPageVModel struct {
	// Nil when creating a new article
	Article model.Article

	Content       string
	ContentErrors []string
}

func ArticleFormPage(vmodel ArticleFormPageVModel) templ.Component {
	return formPage.Component(vmodel)
}

type ArticleDeletePageVModel struct {
	Article model.Article
}

func ArticleDeletePage(vmodel ArticleDeletePageVModel) templ.Component {
	return deletePage.Component(vmodel)
}

type SearchPageVModel struct {
	Words       string
	WordsErrors []string

	// Searched is false when no search was performed, which differs from a
	// search without results
	Searched bool
	Articles []model.Article
}

func SearchPage(vmodel SearchPageVModel) templ.Component {
	return searchPage.Component(vmodel)
}
