package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestSwitch(t *testing.T) {
	out := render(t, Switch("dark_mode", "Dark mode", true, true))
	assert.Contains(t, out, `type="checkbox"`)
	assert.Contains(t, out, `checked`)
	assert.Contains(t, out, `aria-checked="true"`)
	assert.Contains(t, out, `data-auto-submit="true"`)
	assert.Contains(t, out, "<span>Dark mode</span>")
	assert.Contains(t, out, "<noscript>")

	out = render(t, Switch("dark_mode", "Light mode", false, false))
	assert.NotContains(t, out, " checked")
	assert.Contains(t, out, `aria-checked="false"`)
	assert.NotContains(t, out, "data-auto-submit")
	assert.NotContains(t, out, "<noscript>")
}

func TestTooltip(t *testing.T) {
	out := render(t, Tooltip("Switch to Dark mode", html.Span()))
	assert.Contains(t, out, `title="Switch to Dark mode"`)
	assert.Contains(t, out, `data-tooltip="Switch to Dark mode"`)
}

func TestPostForm(t *testing.T) {
	out := render(t, PostForm("/appshell/logout", "/settings", IconButton(nil, "Logout Current User")))
	assert.Contains(t, out, `method="post"`)
	assert.Contains(t, out, `action="/appshell/logout"`)
	assert.Contains(t, out, `name="return" value="/settings"`)
	assert.Contains(t, out, `aria-label="Logout Current User"`)

	out = render(t, PostForm("/x", ""))
	assert.NotContains(t, out, `name="return"`)
}

func TestCardEscapesTitle(t *testing.T) {
	out := render(t, Card("<b>Title</b>", g.Text("body")))
	assert.Contains(t, out, "&lt;b&gt;Title&lt;/b&gt;")
	assert.Contains(t, out, "body")
}

func TestComponentAdapter(t *testing.T) {
	var buf bytes.Buffer
	err := Component(Divider()).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, `<hr class="divider">`, buf.String())

	buf.Reset()
	require.NoError(t, Component(nil).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, Component(Divider()).Render(ctx, &buf))
}
