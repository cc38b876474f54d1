package sidebar

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/ghiac/appshell/layout/ui"
	"github.com/ghiac/appshell/layout/ui/components"
	"github.com/ghiac/appshell/model"
)

// Default form endpoints for the footer controls
const (
	DefaultDarkModeAction = "/appshell/dark-mode"
	DefaultLogoutAction   = "/appshell/logout"
)

// Labels of the footer controls
const (
	LabelDarkMode      = "Dark mode"
	LabelLightMode     = "Light mode"
	TooltipToLightMode = "Switch to Light mode"
	TooltipToDarkMode  = "Switch to Dark mode"
	LogoutTitle        = "Logout Current User"
	LogoutIcon         = model.IconRef("logout")
)

const (
	defaultDOMID   = "sidebar"
	darkModeField  = "dark_mode"
	footerIconSize = 22
)

// Props configures a SideBar
type Props struct {
	ID      string // DOM id, defaults to "sidebar"
	Anchor  model.Anchor
	Open    bool
	Variant model.PanelVariant
	Items   []model.LinkDescriptor
	OnClose CloseHandler
	// CurrentPath highlights the matching navigation item
	CurrentPath string
	// Class and Attrs are passed through to the content container
	Class string
	Attrs []g.Node
}

// Actions are the form endpoints through which the browser triggers the
// footer callbacks
type Actions struct {
	DarkMode string
	Logout   string
	// Return is where the browser goes back to after an action
	Return string
}

// Env carries the collaborators owned outside the sidebar
type Env struct {
	State          model.AppSharedState
	OnMobile       bool
	SwitchDarkMode func()
	Logout         func()
	Actions        Actions
}

// DarkModeControl is the labeled dark mode switch
type DarkModeControl struct {
	Checked  bool
	Label    string
	Tooltip  string
	OnChange func()
}

// Toggle runs the switch callback
func (c DarkModeControl) Toggle() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// LogoutControl is the logout icon button
type LogoutControl struct {
	Icon    model.IconRef
	Title   string
	OnClick func()
}

// Activate runs the logout callback
func (c LogoutControl) Activate() {
	if c.OnClick != nil {
		c.OnClick()
	}
}

// SideBar is a drawer holding the navigation list and the footer controls
type SideBar struct {
	props    Props
	actions  Actions
	Geometry Geometry
	Nav      *NavList
	DarkMode DarkModeControl
	// Logout is nil when the visitor is not authenticated
	Logout *LogoutControl
}

// New builds a SideBar from its props and environment
func New(p Props, env Env) *SideBar {
	if p.ID == "" {
		p.ID = defaultDOMID
	}
	if p.Anchor == "" {
		p.Anchor = model.AnchorLeft
	}

	s := &SideBar{
		props:    p,
		actions:  withDefaults(env.Actions),
		Geometry: ComputeGeometry(env.OnMobile, p.Variant),
		Nav: NewNavList(NavListProps{
			Items:       p.Items,
			ShowIcons:   true,
			CurrentPath: p.CurrentPath,
		}),
		DarkMode: darkModeControl(env.State.DarkMode, env.SwitchDarkMode),
	}
	if env.State.IsAuthenticated {
		s.Logout = &LogoutControl{Icon: LogoutIcon, Title: LogoutTitle, OnClick: env.Logout}
	}
	return s
}

func darkModeControl(dark bool, onChange func()) DarkModeControl {
	c := DarkModeControl{
		Checked:  dark,
		Label:    LabelLightMode,
		Tooltip:  TooltipToDarkMode,
		OnChange: onChange,
	}
	if dark {
		c.Label = LabelDarkMode
		c.Tooltip = TooltipToLightMode
	}
	return c
}

func withDefaults(a Actions) Actions {
	if a.DarkMode == "" {
		a.DarkMode = DefaultDarkModeAction
	}
	if a.Logout == "" {
		a.Logout = DefaultLogoutAction
	}
	return a
}

// ClosesOnNavigate reports whether a click in the content closes the drawer
func (s *SideBar) ClosesOnNavigate() bool {
	return s.props.Variant == model.VariantTemporary && s.props.OnClose != nil
}

// HandleClick is the content container's click handler
func (s *SideBar) HandleClick(e *MouseEvent) {
	if s.ClosesOnNavigate() {
		s.props.OnClose(e, ReasonBackdropClick)
	}
}

// ClickItem simulates a click on the i-th navigation item: the item handles
// it first, then it bubbles to the content container. It reports false when
// i is out of range.
func (s *SideBar) ClickItem(i int) bool {
	if i < 0 || i >= len(s.Nav.Items) {
		return false
	}
	item := s.Nav.Items[i]
	e := NewClick(item.Path)
	item.Click(e)
	if !e.PropagationStopped() {
		s.HandleClick(e)
	}
	return true
}

// Close requests closing, as a backdrop click or the Escape key would
func (s *SideBar) Close(reason CloseReason) {
	if s.props.OnClose != nil {
		s.props.OnClose(NewClick(""), reason)
	}
}

// Node renders the drawer
func (s *SideBar) Node() g.Node {
	p := s.props
	return html.Aside(
		html.ID(p.ID),
		html.Class("sidebar-drawer"),
		html.Data("anchor", string(p.Anchor)),
		html.Data("variant", string(p.Variant)),
		html.Data("open", strconv.FormatBool(p.Open)),
		html.Aria("hidden", strconv.FormatBool(!p.Open)),
		g.If(p.Variant == model.VariantTemporary, html.Div(html.Class("sidebar-backdrop"))),
		html.Div(
			html.Class("sidebar-paper"),
			html.Style(s.Geometry.Style()),
			s.content(),
		),
	)
}

func (s *SideBar) content() g.Node {
	class := "stack sidebar-content"
	if s.props.Class != "" {
		class += " " + s.props.Class
	}
	return html.Div(
		html.Class(class),
		g.Group(s.props.Attrs),
		g.If(s.ClosesOnNavigate(), html.Data("close-on-navigate", "true")),
		s.Nav,
		components.Divider(),
		components.Row(
			components.Tooltip(s.DarkMode.Tooltip,
				components.PostForm(s.actions.DarkMode, s.actions.Return,
					components.Switch(darkModeField, s.DarkMode.Label, s.DarkMode.Checked, true),
				),
			),
			s.logoutButton(),
		),
	)
}

func (s *SideBar) logoutButton() g.Node {
	if s.Logout == nil {
		return nil
	}
	return components.PostForm(s.actions.Logout, "",
		components.IconButton(ui.Icon(s.Logout.Icon, footerIconSize), s.Logout.Title),
	)
}

// Render writes the drawer markup, so a SideBar can be used as a node
func (s *SideBar) Render(w io.Writer) error {
	return s.Node().Render(w)
}

// Component exposes the drawer as a templ component
func (s *SideBar) Component() templ.Component {
	return components.Component(s)
}
