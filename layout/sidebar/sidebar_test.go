package sidebar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/ghiac/appshell/model"
)

var exampleItems = []model.LinkDescriptor{
	{Title: "Home", Path: "/"},
	{Title: "Settings", Path: "/settings", Icon: "gear"},
}

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestNavListKeepsInputOrder(t *testing.T) {
	items := []model.LinkDescriptor{
		{Title: "B", Path: "/b"},
		{Title: "A", Path: "/a"},
		{Title: "B", Path: "/b"},
	}
	list := NewNavList(NavListProps{Items: items})

	require.Len(t, list.Items, len(items))
	for i, d := range items {
		assert.Equal(t, d.Title, list.Items[i].Title)
		assert.Equal(t, d.Path, list.Items[i].Path)
		assert.Equal(t, d.Key(), list.Items[i].Key)
	}
}

func TestNavListHidesIconsByDefault(t *testing.T) {
	list := NewNavList(NavListProps{Items: exampleItems})
	for _, item := range list.Items {
		assert.Equal(t, model.NoIcon, item.Icon)
	}
	assert.NotContains(t, renderString(t, list), "<svg")
}

func TestNavListShowsDescriptorIcons(t *testing.T) {
	list := NewNavList(NavListProps{Items: exampleItems, ShowIcons: true})

	require.Len(t, list.Items, 2)
	assert.Equal(t, model.NoIcon, list.Items[0].Icon)
	assert.Equal(t, model.IconRef("gear"), list.Items[1].Icon)
}

func TestNavListEmpty(t *testing.T) {
	list := NewNavList(NavListProps{})
	assert.Empty(t, list.Items)
	assert.Equal(t, `<nav class="sidebar-nav-list"></nav>`, renderString(t, list))
}

func TestNavListSharesClickHandler(t *testing.T) {
	var clicked []string
	list := NewNavList(NavListProps{
		Items:   exampleItems,
		OnClick: func(e *MouseEvent) { clicked = append(clicked, e.Target) },
	})

	for _, item := range list.Items {
		item.Click(NewClick(item.Path))
	}
	assert.Equal(t, []string{"/", "/settings"}, clicked)
}

func TestNavListPassthroughAndRenderer(t *testing.T) {
	var seen []NavItem
	list := NewNavList(NavListProps{
		Items:       exampleItems,
		ShowIcons:   true,
		CurrentPath: "/settings",
		Attrs:       []g.Node{html.Aria("label", "Main")},
		Render: func(item NavItem) g.Node {
			seen = append(seen, item)
			return html.Li(g.Text(item.Title))
		},
	})

	out := renderString(t, list)
	assert.Equal(t, `<nav class="sidebar-nav-list" aria-label="Main"><li>Home</li><li>Settings</li></nav>`, out)
	require.Len(t, seen, 2)
	assert.False(t, seen[0].Active)
	assert.True(t, seen[1].Active)
}

func TestDefaultItemMarkup(t *testing.T) {
	list := NewNavList(NavListProps{Items: exampleItems, CurrentPath: "/"})
	out := renderString(t, list)

	assert.Contains(t, out, `href="/"`)
	assert.Contains(t, out, `href="/settings"`)
	assert.Contains(t, out, `data-key="Settings-/settings"`)
	assert.Contains(t, out, `class="sidebar-nav-item active"`)
	assert.Contains(t, out, `aria-current="page"`)
	assert.Less(t, strings.Index(out, "Home"), strings.Index(out, "Settings"))
}

func TestComputeGeometry(t *testing.T) {
	full := Geometry{Width: 240, MarginTop: "0", Height: "100%"}
	belowTopBar := Geometry{Width: 240, MarginTop: "64px", Height: "calc(100% - 64px)"}

	cases := []struct {
		onMobile bool
		variant  model.PanelVariant
		want     Geometry
	}{
		{true, model.VariantTemporary, full},
		{true, model.VariantPersistent, full},
		{true, model.VariantPermanent, full},
		{false, model.VariantTemporary, full},
		{false, model.VariantPersistent, belowTopBar},
		{false, model.VariantPermanent, belowTopBar},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ComputeGeometry(tc.onMobile, tc.variant), "mobile=%v variant=%s", tc.onMobile, tc.variant)
	}
	assert.Equal(t, "width: 240px; margin-top: 64px; height: calc(100% - 64px);", belowTopBar.Style())
}

type closeRecorder struct {
	calls   int
	reasons []CloseReason
	targets []string
}

func (r *closeRecorder) handler(e *MouseEvent, reason CloseReason) {
	r.calls++
	r.reasons = append(r.reasons, reason)
	r.targets = append(r.targets, e.Target)
}

func TestTemporaryClosesOnNavigate(t *testing.T) {
	rec := &closeRecorder{}
	s := New(Props{Variant: model.VariantTemporary, Open: true, Items: exampleItems, OnClose: rec.handler}, Env{})

	require.True(t, s.ClickItem(1))
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, []CloseReason{ReasonBackdropClick}, rec.reasons)
	assert.Equal(t, []string{"/settings"}, rec.targets)

	s.HandleClick(NewClick(""))
	assert.Equal(t, 2, rec.calls, "any click in the content area closes")

	assert.Contains(t, renderString(t, s), `data-close-on-navigate="true"`)
}

func TestNonTemporaryNeverClosesOnNavigate(t *testing.T) {
	for _, variant := range []model.PanelVariant{model.VariantPermanent, model.VariantPersistent} {
		rec := &closeRecorder{}
		s := New(Props{Variant: variant, Open: true, Items: exampleItems, OnClose: rec.handler}, Env{})

		s.ClickItem(0)
		s.ClickItem(1)
		s.HandleClick(NewClick(""))

		assert.Zero(t, rec.calls, variant)
		assert.NotContains(t, renderString(t, s), "data-close-on-navigate", variant)
	}
}

func TestTemporaryWithoutOnClose(t *testing.T) {
	s := New(Props{Variant: model.VariantTemporary, Items: exampleItems}, Env{})

	assert.False(t, s.ClosesOnNavigate())
	assert.True(t, s.ClickItem(0), "no close handler is not an error")
	assert.False(t, s.ClickItem(2))
	assert.False(t, s.ClickItem(-1))
}

func TestItemHandlerRunsBeforeContainer(t *testing.T) {
	var order []string
	s := New(Props{
		Variant: model.VariantTemporary,
		Items:   exampleItems,
		OnClose: func(*MouseEvent, CloseReason) { order = append(order, "container") },
	}, Env{})
	for i := range s.Nav.Items {
		s.Nav.Items[i].OnClick = func(*MouseEvent) { order = append(order, "item") }
	}

	s.ClickItem(0)
	assert.Equal(t, []string{"item", "container"}, order)
}

func TestStoppedClickDoesNotClose(t *testing.T) {
	rec := &closeRecorder{}
	s := New(Props{Variant: model.VariantTemporary, Items: exampleItems, OnClose: rec.handler}, Env{})
	s.Nav.Items[0].OnClick = func(e *MouseEvent) { e.StopPropagation() }

	s.ClickItem(0)
	assert.Zero(t, rec.calls)
}

func TestCloseReasons(t *testing.T) {
	rec := &closeRecorder{}
	s := New(Props{Variant: model.VariantPersistent, OnClose: rec.handler}, Env{})

	s.Close(ReasonEscapeKeyDown)
	assert.Equal(t, []CloseReason{ReasonEscapeKeyDown}, rec.reasons)

	New(Props{}, Env{}).Close(ReasonBackdropClick)
}

func TestSideBarShowsIcons(t *testing.T) {
	s := New(Props{Variant: model.VariantPermanent, Items: exampleItems}, Env{})

	require.Len(t, s.Nav.Items, 2)
	assert.Equal(t, model.NoIcon, s.Nav.Items[0].Icon)
	assert.Equal(t, model.IconRef("gear"), s.Nav.Items[1].Icon)
}

func TestDarkModeLabels(t *testing.T) {
	dark := New(Props{}, Env{State: model.AppSharedState{DarkMode: true}})
	assert.True(t, dark.DarkMode.Checked)
	assert.Equal(t, "Dark mode", dark.DarkMode.Label)
	assert.Equal(t, "Switch to Light mode", dark.DarkMode.Tooltip)

	light := New(Props{}, Env{State: model.AppSharedState{DarkMode: false}})
	assert.False(t, light.DarkMode.Checked)
	assert.Equal(t, "Light mode", light.DarkMode.Label)
	assert.Equal(t, "Switch to Dark mode", light.DarkMode.Tooltip)

	out := renderString(t, light)
	assert.Contains(t, out, `title="Switch to Dark mode"`)
	assert.Contains(t, out, "<span>Light mode</span>")
	assert.Contains(t, out, `action="/appshell/dark-mode"`)
}

func TestDarkModeToggleInvokesCallback(t *testing.T) {
	calls := 0
	s := New(Props{}, Env{SwitchDarkMode: func() { calls++ }})

	s.DarkMode.Toggle()
	assert.Equal(t, 1, calls)
}

func TestLogoutPresentOnlyWhenAuthenticated(t *testing.T) {
	anon := New(Props{}, Env{})
	assert.Nil(t, anon.Logout)
	assert.NotContains(t, renderString(t, anon), "Logout Current User")

	loggedOut := false
	auth := New(Props{}, Env{
		State:  model.AppSharedState{IsAuthenticated: true},
		Logout: func() { loggedOut = true },
	})
	require.NotNil(t, auth.Logout)
	assert.Equal(t, model.IconRef("logout"), auth.Logout.Icon)

	out := renderString(t, auth)
	assert.Contains(t, out, `aria-label="Logout Current User"`)
	assert.Contains(t, out, `action="/appshell/logout"`)

	auth.Logout.Activate()
	assert.True(t, loggedOut)
}

func TestDrawerMarkup(t *testing.T) {
	s := New(Props{
		Anchor:  model.AnchorRight,
		Open:    false,
		Variant: model.VariantTemporary,
		Class:   "custom",
		Attrs:   []g.Node{html.Data("test", "1")},
	}, Env{OnMobile: true, Actions: Actions{DarkMode: "/x/dark", Return: "/settings"}})

	out := renderString(t, s)
	assert.Contains(t, out, `id="sidebar"`)
	assert.Contains(t, out, `data-anchor="right"`)
	assert.Contains(t, out, `data-variant="temporary"`)
	assert.Contains(t, out, `data-open="false"`)
	assert.Contains(t, out, `aria-hidden="true"`)
	assert.Contains(t, out, `class="sidebar-backdrop"`)
	assert.Contains(t, out, `style="width: 240px; margin-top: 0; height: 100%;"`)
	assert.Contains(t, out, `class="stack sidebar-content custom"`)
	assert.Contains(t, out, `data-test="1"`)
	assert.Contains(t, out, `action="/x/dark"`)
	assert.Contains(t, out, `name="return" value="/settings"`)
}
