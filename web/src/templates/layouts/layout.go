package layouts

import (
	"github.com/a-h/templ"

	"github.com/fieldops/landing/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Options controls the optional parts of the document shell.
type Options struct {
	// LiveReload injects the development reload script into the page.
	// It must never be set in production.
	LiveReload bool
}

// liveReloadScript is intentionally tiny: reload the page whenever the
// server reports an asset change.
const liveReloadScript = `(function () {
	var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/livereload");
	ws.onmessage = function () { location.reload(); };
})();`

// CalculateTitle handles the conditional logic for the page title.
// An empty title yields the bare product name.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - FieldOps AI"
	}
	return "FieldOps AI"
}

// Base wraps page content in the full HTML document shell. Content is
// a templ.Component so that both Templ and adapted Gomponents pages
// fit the same slot.
func Base(title string, opts Options, content templ.Component) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			),
			g.Body(
				view.AdaptTemplToGomponent(content),
				cmp.If(opts.LiveReload, g.Script(cmp.Raw(liveReloadScript))),
			),
		),
	)
}
