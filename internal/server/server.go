package server

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/fieldops/landing/internal/assets"
	"github.com/fieldops/landing/internal/config"
	"github.com/fieldops/landing/internal/livereload"
	"github.com/fieldops/landing/internal/logging"
	"github.com/fieldops/landing/internal/middleware"
	"github.com/fieldops/landing/internal/rendering"
)

// assetDebounce collapses editor write bursts into one reload event.
const assetDebounce = 200 * time.Millisecond

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg *config.Config

	// Development-only live reload plumbing; all nil in production.
	reloadBus     *livereload.Bus
	reloadHub     *livereload.Hub
	reloadWatcher *livereload.Watcher
	reloadHandler *livereload.Handler
}

// New creates a new Server instance.
func New() *Server {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.New(cfg.LogFormat) // Initialize the structured logger

	assetFS, err := assets.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize static assets", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	setupErrorHandling(e)

	// Serve the page's own assets (stylesheet) under /static.
	e.StaticFS("/static", afero.NewIOFS(assetFS))

	e.Renderer = rendering.NewUniversalRenderer()

	s := &Server{E: e, Cfg: cfg}

	if cfg.IsDevelopment() {
		s.setupLiveReload()
	}

	return s
}

// setupLiveReload wires the asset watcher, the in-process event bus
// and the broadcast hub together. Development mode only.
func (s *Server) setupLiveReload() {
	s.reloadBus = livereload.NewBus()
	s.reloadHub = livereload.NewHub()
	go s.reloadHub.Run()

	if err := s.reloadBus.Subscribe(context.Background(), func(path string) {
		slog.Debug("Asset changed, notifying clients", "path", path)
		s.reloadHub.Broadcast <- []byte("reload")
	}); err != nil {
		slog.Error("Failed to subscribe to asset changes", "error", err)
		os.Exit(1)
	}

	watcher, err := livereload.NewWatcher(s.reloadBus, s.Cfg.StaticDir, assetDebounce)
	if err != nil {
		slog.Error("Failed to watch static assets", "dir", s.Cfg.StaticDir, "error", err)
		os.Exit(1)
	}
	s.reloadWatcher = watcher
	s.reloadHandler = livereload.NewHandler(s.reloadHub)
}
