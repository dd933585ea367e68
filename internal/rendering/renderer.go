package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders any supported component kind. The component input
// is interface{} so callers can pass templ.Component and
// gomponents.Node values through the same API.
type Renderer interface {
	// RenderComponent renders a component to bytes, for callers that
	// need the markup outside an HTTP response (e.g. static export).
	RenderComponent(ctx context.Context, component interface{}) ([]byte, error)
}

// UniversalRenderer renders templ components and Gomponents nodes. It
// also implements echo.Renderer, so handlers can call c.Render with
// the component in the data parameter.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the structural interface of gomponents.Node; it is
// matched structurally so this package does not import gomponents.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (ur *UniversalRenderer) render(ctx context.Context, component interface{}, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T: must be templ.Component or implement Render(io.Writer) error", component)
	}
}

// RenderComponent implements the Renderer interface.
func (ur *UniversalRenderer) RenderComponent(ctx context.Context, component interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := ur.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return buf.Bytes(), nil
}

// Render implements echo.Renderer. The name parameter is ignored; the
// component itself travels in data.
func (ur *UniversalRenderer) Render(w io.Writer, _ string, data interface{}, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTML)
	}
	return ur.render(c.Request().Context(), data, w)
}
