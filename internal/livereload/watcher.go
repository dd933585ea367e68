package livereload

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher publishes an event on the Bus whenever a file under the
// watched directory is written or created. Bursts of events (editors
// often write a file several times) are collapsed by a debounce
// window.
type Watcher struct {
	bus      *Bus
	fw       *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a Watcher over dir. Events are debounced by the
// given duration before being published.
func NewWatcher(bus *Bus, dir string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{bus: bus, fw: fw, debounce: debounce}, nil
}

// Run processes filesystem events until ctx is canceled. It must run
// in its own goroutine.
func (w *Watcher) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	<-timer.C // drain so Reset below starts a clean cycle

	var pending string
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = ev.Name
			timer.Reset(w.debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Warn("Asset watcher error", "error", err)

		case <-timer.C:
			if err := w.bus.Publish(pending); err != nil {
				slog.Error("Failed to publish asset change", "path", pending, "error", err)
			}
		}
	}
}

// Close stops watching the filesystem.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
