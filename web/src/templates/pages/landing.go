package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Landing is the Gomponents Node for the landing view. It is a pure
// function of nothing: no parameters, no external state, no side
// effects. The heading always precedes the subtitle in document order.
func Landing() cmp.Node {
	return g.Div(
		g.Class("landing"),
		g.Div(
			g.Class("landing-content"),
			g.H1(
				g.Class("landing-title"),
				cmp.Text("FieldOps AI"),
			),
			g.P(
				g.Class("landing-subtitle"),
				cmp.Text("SMS-based AI assistant for field technicians"),
			),
		),
	)
}
