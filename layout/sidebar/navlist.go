package sidebar

import (
	"io"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/ghiac/appshell/layout/ui"
	"github.com/ghiac/appshell/model"
)

const navIconSize = 18

// NavItem is one rendered navigation link
type NavItem struct {
	Key     string
	Icon    model.IconRef
	Path    string
	Title   string
	Active  bool
	OnClick EventHandler
}

// Click runs the item's own handler. Bubbling to the container is the
// caller's job.
func (it NavItem) Click(e *MouseEvent) {
	if it.OnClick != nil {
		it.OnClick(e)
	}
}

// ItemRenderer draws a navigation item
type ItemRenderer func(item NavItem) g.Node

// RenderNavItem is the default item markup: a link with an optional icon
func RenderNavItem(item NavItem) g.Node {
	class := "sidebar-nav-item"
	if item.Active {
		class += " active"
	}
	return html.A(
		html.Class(class),
		html.Href(item.Path),
		html.Data("key", item.Key),
		g.If(item.Active, html.Aria("current", "page")),
		ui.Icon(item.Icon, navIconSize),
		html.Span(g.Text(item.Title)),
	)
}

// NavListProps configures a NavList
type NavListProps struct {
	Items     []model.LinkDescriptor
	ShowIcons bool
	OnClick   EventHandler
	// CurrentPath marks the matching item active; it never filters
	CurrentPath string
	// Attrs are passed through to the list container
	Attrs []g.Node
	// Render overrides the item markup
	Render ItemRenderer
}

// NavList renders a list of navigation items
type NavList struct {
	Items  []NavItem
	attrs  []g.Node
	render ItemRenderer
}

// NewNavList builds one item per descriptor, in input order
func NewNavList(p NavListProps) *NavList {
	items := make([]NavItem, 0, len(p.Items))
	for _, d := range p.Items {
		icon := model.NoIcon
		if p.ShowIcons {
			icon = d.Icon
		}
		items = append(items, NavItem{
			Key:     d.Key(),
			Icon:    icon,
			Path:    d.Path,
			Title:   d.Title,
			Active:  p.CurrentPath != "" && d.Path == p.CurrentPath,
			OnClick: p.OnClick,
		})
	}

	render := p.Render
	if render == nil {
		render = RenderNavItem
	}
	return &NavList{Items: items, attrs: p.Attrs, render: render}
}

// Node renders the list container and its items
func (l *NavList) Node() g.Node {
	return html.Nav(
		html.Class("sidebar-nav-list"),
		g.Group(l.attrs),
		g.Map(l.Items, func(item NavItem) g.Node {
			return l.render(item)
		}),
	)
}

// Render writes the list markup, so a NavList can be used as a node
func (l *NavList) Render(w io.Writer) error {
	return l.Node().Render(w)
}
