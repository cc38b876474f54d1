package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Theme returns the data-theme value for the dark mode flag
func Theme(darkMode bool) string {
	if darkMode {
		return "dark"
	}
	return "light"
}

// Document renders a complete HTML page around body
func Document(title string, darkMode bool, body ...g.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Data("theme", Theme(darkMode)),
			html.Head(
				html.Meta(html.Charset("UTF-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1.0")),
				html.Meta(html.Name("color-scheme"), html.Content(Theme(darkMode))),
				html.TitleEl(g.Text(title)),
				html.StyleEl(g.Raw(GetStyles())),
			),
			html.Body(
				g.Group(body),
				html.Script(g.Raw(GetScripts())),
			),
		),
	)
}
