package layout

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui"
	"github.com/xraph/forgeui/components/button"
	"github.com/xraph/forgeui/icons"

	"github.com/ghiac/appshell/model"
)

// TopBar renders the fixed application bar with the sidebar toggle
func TopBar(title, drawerID string, onMobile bool, state model.AppSharedState) g.Node {
	class := "topbar"
	if onMobile {
		class += " topbar-mobile"
	}
	return html.Header(
		html.Class(class),
		button.Button(
			g.Group([]g.Node{
				icons.Menu(icons.WithSize(20)),
			}),
			button.WithVariant(forgeui.VariantGhost),
			button.WithSize(forgeui.SizeIcon),
			button.WithAttrs(
				g.Attr("data-drawer-toggle", drawerID),
				g.Attr("aria-controls", drawerID),
				g.Attr("aria-label", "Toggle sidebar"),
			),
		),
		html.Div(html.Class("topbar-title"), g.Text(title)),
		g.If(state.IsAuthenticated && state.CurrentUser != "",
			html.Span(html.Class("topbar-user"), g.Text(state.CurrentUser)),
		),
	)
}
