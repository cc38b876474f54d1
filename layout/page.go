// Package layout composes the top bar, the sidebar drawer and the page
// content into a complete document.
package layout

import (
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/ghiac/appshell/layout/sidebar"
	"github.com/ghiac/appshell/layout/ui"
	"github.com/ghiac/appshell/layout/ui/components"
	"github.com/ghiac/appshell/model"
)

const drawerID = "sidebar"

// PageProps describes one page rendered inside the layout
type PageProps struct {
	AppTitle    string
	Title       string
	CurrentPath string
	Items       []model.LinkDescriptor
	Content     []g.Node
}

// PrivateLayout is the layout for signed-in areas: the drawer is an overlay
// closed by default on narrow viewports, and an open persistent panel otherwise.
type PrivateLayout struct {
	props       PageProps
	env         sidebar.Env
	Variant     model.PanelVariant
	Anchor      model.Anchor
	SidebarOpen bool
}

// NewPrivateLayout creates the layout for one request
func NewPrivateLayout(p PageProps, env sidebar.Env) *PrivateLayout {
	l := &PrivateLayout{
		props:       p,
		env:         env,
		Variant:     model.VariantPersistent,
		Anchor:      ui.SidebarDesktopAnchor,
		SidebarOpen: true,
	}
	if env.OnMobile {
		l.Variant = model.VariantTemporary
		l.Anchor = ui.SidebarMobileAnchor
		l.SidebarOpen = false
	}
	if l.env.Actions.Return == "" {
		l.env.Actions.Return = p.CurrentPath
	}
	return l
}

// OpenSidebar shows the drawer
func (l *PrivateLayout) OpenSidebar() {
	l.SidebarOpen = true
}

func (l *PrivateLayout) onSideBarClose(*sidebar.MouseEvent, sidebar.CloseReason) {
	l.SidebarOpen = false
}

// SideBar builds the drawer for the current layout state
func (l *PrivateLayout) SideBar() *sidebar.SideBar {
	return sidebar.New(sidebar.Props{
		ID:          drawerID,
		Anchor:      l.Anchor,
		Open:        l.SidebarOpen,
		Variant:     l.Variant,
		Items:       l.props.Items,
		OnClose:     l.onSideBarClose,
		CurrentPath: l.props.CurrentPath,
	}, l.env)
}

// Title returns the document title
func (l *PrivateLayout) Title() string {
	switch {
	case l.props.Title == "":
		return l.props.AppTitle
	case l.props.AppTitle == "":
		return l.props.Title
	}
	return l.props.Title + " - " + l.props.AppTitle
}

// Node renders the whole document
func (l *PrivateLayout) Node() g.Node {
	mainClass := "shell-main"
	if l.env.OnMobile {
		mainClass += " shell-main-mobile"
	}
	if l.SidebarOpen && l.Variant != model.VariantTemporary {
		mainClass += " with-sidebar"
	}

	return ui.Document(l.Title(), l.env.State.DarkMode,
		TopBar(l.props.AppTitle, drawerID, l.env.OnMobile, l.env.State),
		l.SideBar(),
		html.Main(
			html.Class(mainClass),
			g.Group(l.props.Content),
		),
	)
}

// Render writes the document
func (l *PrivateLayout) Render(w io.Writer) error {
	return l.Node().Render(w)
}

// Component exposes the document as a templ component
func (l *PrivateLayout) Component() templ.Component {
	return components.Component(l)
}
