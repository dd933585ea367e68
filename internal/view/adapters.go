// Package view bridges the two component systems used for rendering.
// Pages are written with Gomponents; the layout content slot speaks
// templ.Component. The adapters below convert in both directions so a
// page never has to care which system the surrounding code uses.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// gomponentAdapter wraps a gomponents.Node so it satisfies
// templ.Component.
type gomponentAdapter struct {
	node gomponents.Node
}

func (a *gomponentAdapter) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl converts a Gomponents Node into a
// templ.Component so it can fill a Templ content slot.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &gomponentAdapter{node: node}
}

// templAdapter wraps a templ.Component so it satisfies
// gomponents.Node.
type templAdapter struct {
	component templ.Component
}

// Render delegates to the templ component. Gomponents rendering does
// not carry a context, so context.Background() is used for the bridge.
func (a *templAdapter) Render(w io.Writer) error {
	return a.component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a Gomponents
// Node so it can be placed inside a Gomponents tree.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &templAdapter{component: component}
}
