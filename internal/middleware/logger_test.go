package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldops/landing/internal/middleware"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_InjectsRequestScopedLogger(t *testing.T) {
	var logBuffer bytes.Buffer
	handler := slog.NewTextHandler(&logBuffer, nil)
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(originalLogger)

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.GET("/", func(c echo.Context) error {
		middleware.FromContext(c.Request().Context()).Info("handling request")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logBuffer.String(), "request_id=")
	assert.Contains(t, logBuffer.String(), "handling request")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	logger := middleware.FromContext(context.Background())
	assert.Equal(t, slog.Default(), logger)
}
