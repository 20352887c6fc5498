package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	hub "github.com/skillbridge/youth_platform/websocket"
)

// ServeWs registers a connection with the event hub and holds it open
// until the peer disconnects. Events are push-only; inbound frames are
// discarded.
func ServeWs(c *websocket.Conn) {
	client := &hub.Client{ID: uuid.New(), Conn: c}
	hub.Register <- client
	defer func() {
		hub.Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
