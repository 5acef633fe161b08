package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an accepted websocket connection to the hub.
func ServeWs(hub *Hub, c *websocket.Conn, workspaceID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, WorkspaceID: workspaceID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // runs in the handler goroutine, returns on disconnect
}
