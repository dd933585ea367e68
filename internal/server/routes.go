package server

import (
	"github.com/fieldops/landing/internal/handlers"
	"github.com/fieldops/landing/web/src/templates/layouts"
)

// RegisterRoutes sets up the application routes. The landing view is
// the only product route; /livereload exists only in development.
func (s *Server) RegisterRoutes() {
	landingHandler := handlers.NewLandingHandler(layouts.Options{
		LiveReload: s.Cfg.IsDevelopment(),
	})

	s.E.GET("/", landingHandler.LandingGet)

	if s.reloadHandler != nil {
		s.E.GET("/livereload", s.reloadHandler.Serve)
	}
}
