package livereload

import (
	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
)

// Handler upgrades /livereload requests to a websocket and streams hub
// broadcasts to the browser.
type Handler struct {
	hub *Hub
}

// NewHandler creates a Handler bound to the given hub.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// Serve handles GET /livereload. The browser never sends anything
// meaningful on this socket; the server only pushes reload messages.
func (h *Handler) Serve(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	sub := &Subscriber{Send: make(chan []byte, 8)}
	h.hub.Register <- sub
	defer func() { h.hub.Unregister <- sub }()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return nil

		case msg, ok := <-sub.Send:
			if !ok {
				// The hub evicted us.
				conn.Close(websocket.StatusNormalClosure, "")
				return nil
			}
			if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
				// Client went away; unregister via the deferred call.
				return nil
			}
		}
	}
}
