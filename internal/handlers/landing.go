package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/landing/internal/view"
	"github.com/fieldops/landing/web/src/templates/layouts"
	"github.com/fieldops/landing/web/src/templates/pages"
)

// LandingHandler serves the landing view at the root route.
type LandingHandler struct {
	layoutOpts layouts.Options
}

// NewLandingHandler creates a new LandingHandler. The layout options
// are fixed at construction; the view itself takes no input.
func NewLandingHandler(opts layouts.Options) *LandingHandler {
	return &LandingHandler{layoutOpts: opts}
}

// LandingGet handles GET / by rendering the landing view inside the
// base layout.
func (h *LandingHandler) LandingGet(c echo.Context) error {
	// The page content is a Gomponents node; adapt it to fill the
	// layout's templ content slot.
	content := view.AdaptGomponentToTempl(pages.Landing())

	doc := layouts.Base("", h.layoutOpts, content)

	return c.Render(http.StatusOK, "", doc)
}
