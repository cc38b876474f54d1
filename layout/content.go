package layout

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/ghiac/appshell/layout/ui/components"
	"github.com/ghiac/appshell/model"
)

// PlaceholderContent is the body of a page mounted for a menu item
func PlaceholderContent(item model.LinkDescriptor) []g.Node {
	return []g.Node{
		components.Card(item.Title,
			html.P(g.Textf("This is the %s page.", item.Title)),
			html.P(html.Class("text-muted"), html.Code(g.Text(item.Path))),
		),
	}
}

// NotFoundContent is the body of the 404 page
func NotFoundContent(path string) []g.Node {
	return []g.Node{
		components.WarningAlert("Page not found: " + path),
	}
}

// SignInCard renders the development sign-in form
func SignInCard(action, returnTo string) g.Node {
	return components.Card("Sign in",
		components.InfoAlert("Development sign-in: any name is accepted."),
		components.PostForm(action, returnTo,
			html.Input(
				html.Type("text"),
				html.Name("user"),
				html.Placeholder("Your name"),
				html.Required(),
				html.MaxLength("64"),
			),
			html.Button(html.Type("submit"), g.Text("Sign in")),
		),
	)
}
