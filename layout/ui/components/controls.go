package components

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Stack renders a vertical flex container
func Stack(children ...g.Node) g.Node {
	return html.Div(html.Class("stack"), g.Group(children))
}

// Row renders a horizontal stack with evenly spaced children
func Row(children ...g.Node) g.Node {
	return html.Div(html.Class("stack stack-row"), g.Group(children))
}

// Divider renders a horizontal rule
func Divider() g.Node {
	return html.Hr(html.Class("divider"))
}

// Tooltip attaches a hover title to its child
func Tooltip(title string, child g.Node) g.Node {
	return html.Span(
		html.Class("tooltip"),
		html.Title(title),
		html.Data("tooltip", title),
		child,
	)
}

// PostForm wraps children in a POST form to action. A non-empty returnTo is
// sent as the "return" field.
func PostForm(action, returnTo string, children ...g.Node) g.Node {
	return html.Form(
		html.Class("inline-form"),
		html.Method("post"),
		html.Action(action),
		g.If(returnTo != "", html.Input(html.Type("hidden"), html.Name("return"), html.Value(returnTo))),
		g.Group(children),
	)
}

// Switch renders a labeled checkbox switch. With autoSubmit the enclosing
// form is submitted on change; a noscript button covers browsers without JS.
func Switch(name, label string, checked, autoSubmit bool) g.Node {
	return html.Label(
		html.Class("form-control-label"),
		html.Input(
			html.Type("checkbox"),
			html.Class("switch"),
			html.Role("switch"),
			html.Name(name),
			html.Value("on"),
			g.If(checked, html.Checked()),
			html.Aria("checked", boolString(checked)),
			g.If(autoSubmit, html.Data("auto-submit", "true")),
		),
		html.Span(g.Text(label)),
		g.If(autoSubmit, html.NoScript(html.Button(html.Type("submit"), g.Text("Apply")))),
	)
}

// IconButton renders a round submit button showing icon
func IconButton(icon g.Node, title string) g.Node {
	return html.Button(
		html.Type("submit"),
		html.Class("icon-button"),
		html.Title(title),
		html.Aria("label", title),
		icon,
	)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
