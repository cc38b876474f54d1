package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/icons"

	"github.com/ghiac/appshell/model"
)

// Icon maps an icon name to its node. Unknown names render a bullet
// placeholder that still carries the requested name.
func Icon(ref model.IconRef, size int) g.Node {
	if ref == model.NoIcon {
		return nil
	}
	opt := icons.WithSize(size)

	switch ref {
	case "home":
		return icons.Home(opt)
	case "dashboard":
		return icons.LayoutDashboard(opt)
	case "account", "user", "profile":
		return icons.User(opt)
	case "settings", "gear":
		return icons.Settings(opt)
	case "search":
		return icons.Search(opt)
	case "notifications", "bell":
		return icons.Bell(opt)
	case "activity":
		return icons.Activity(opt)
	case "server":
		return icons.Server(opt)
	case "chart":
		return icons.ChartBar(opt)
	case "info", "about", "file", "docs":
		return icons.FileText(opt)
	case "security", "shield":
		return icons.Shield(opt)
	case "lock":
		return icons.Lock(opt)
	case "key":
		return icons.Key(opt)
	case "billing":
		return icons.CreditCard(opt)
	case "inbox":
		return icons.Inbox(opt)
	case "layers":
		return icons.Layers(opt)
	case "login":
		return icons.LogIn(opt)
	case "logout":
		return icons.LogOut(opt)
	case "menu":
		return icons.Menu(opt)
	case "close":
		return icons.X(opt)
	case "night", "dark":
		return icons.Moon(opt)
	case "day", "light":
		return icons.Sun(opt)
	default:
		return html.Span(
			html.Class("icon-placeholder"),
			html.Data("icon", string(ref)),
			g.Text("•"),
		)
	}
}
