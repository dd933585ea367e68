// Package livereload is development-only hosting tooling: it watches
// the static asset directory and tells connected browsers to reload
// when a file changes. It is never wired in production.
package livereload

import "log/slog"

// Subscriber is a single connected browser. The Hub sends reload
// notifications through Send; the websocket handler drains it.
type Subscriber struct {
	// Send is a buffered channel of outbound messages. The Hub closes
	// it when the subscriber is unregistered.
	Send chan []byte
}

// Hub is a concurrent broadcast bus for reload notifications. It owns
// the subscriber set; all mutation happens inside Run's loop.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast delivers a message to every registered subscriber.
	Broadcast chan []byte

	// Register and Unregister add and remove subscribers.
	Register   chan *Subscriber
	Unregister chan *Subscriber
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
	}
}

// Run starts the Hub's processing loop. It must run in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case subscriber := <-h.Register:
			h.subscribers[subscriber] = true
			slog.Debug("Live reload client connected", "clients", len(h.subscribers))

		case subscriber := <-h.Unregister:
			if _, ok := h.subscribers[subscriber]; ok {
				delete(h.subscribers, subscriber)
				close(subscriber.Send)
				slog.Debug("Live reload client disconnected", "clients", len(h.subscribers))
			}

		case message := <-h.Broadcast:
			for subscriber := range h.subscribers {
				// Non-blocking send: a subscriber with a full buffer is
				// lagging or gone, so drop it.
				select {
				case subscriber.Send <- message:
				default:
					close(subscriber.Send)
					delete(h.subscribers, subscriber)
					slog.Warn("Dropping slow live reload client", "clients", len(h.subscribers))
				}
			}
		}
	}
}
