package components

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Card renders a card with a header
func Card(title string, body ...g.Node) g.Node {
	return html.Div(
		html.Class("card"),
		html.Div(html.Class("card-header"), html.H4(g.Text(title))),
		html.Div(html.Class("card-body"), g.Group(body)),
	)
}

// Alert renders a colored message box
func Alert(message, variant string) g.Node {
	return html.Div(
		html.Class("alert alert-"+variant),
		html.Role("alert"),
		g.Text(message),
	)
}

// InfoAlert renders an info alert
func InfoAlert(message string) g.Node {
	return Alert(message, "info")
}

// WarningAlert renders a warning alert
func WarningAlert(message string) g.Node {
	return Alert(message, "warning")
}
