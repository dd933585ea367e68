package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the central HTTP error handler.
// Deliberate echo.HTTPErrors pass through to the default handler;
// anything else is an unhandled error and gets logged with a stack
// trace while the client sees a plain 500.
func setupErrorHandling(e *echo.Echo) {
	defaultHandler := e.HTTPErrorHandler

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			defaultHandler(err, c)
			return
		}

		slog.Error("Internal Server Error (Unhandled)",
			"error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)

		if !c.Response().Committed {
			_ = c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
