package component

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/bornholm/bbs/internal/http/middleware/authn"
	common "github.com/bornholm/bbs/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var loginPage = common.NewPage(templates, "templates/login_page.gohtml")

type LoginPageVModel struct {
	PasswordEnabled bool
	Providers       []authn.Provider

	Next     string
	Username string
	Error    string
}

func LoginPage(vmodel LoginPageVModel) templ.Component {
	return loginPage.Component(vmodel)
}
