// Package assets selects the filesystem the static assets are served
// from: the embedded copy in production, the working tree in
// development so stylesheet edits show up without a rebuild.
package assets

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/fieldops/landing/internal/config"
	"github.com/fieldops/landing/web"
)

// New returns the asset filesystem for the given configuration.
func New(cfg *config.Config) (afero.Fs, error) {
	if cfg.IsDevelopment() {
		return afero.NewBasePathFs(afero.NewOsFs(), cfg.StaticDir), nil
	}

	sub, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static assets missing: %w", err)
	}
	return afero.FromIOFS{FS: sub}, nil
}
