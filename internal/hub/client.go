package hub

import (
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"
)

// Injector accepts simulated key presses from diagnostics clients. The
// fallback backend implements it; when the native backend is active no
// injector is available and "key" messages are refused.
type Injector interface {
	Press(key string)
	Release(key string)
}

// Client represents a connected WebSocket client.
type Client struct {
	hub    *Hub
	logger *slog.Logger
	conn   *websocket.Conn
	send   chan []byte
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:    hub,
		logger: hub.logger,
		conn:   conn,
		send:   make(chan []byte, 256),
	}
}

// WritePump sends messages from the send channel to the WebSocket connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		err := c.conn.WriteMessage(websocket.TextMessage, msg)
		if err != nil {
			break
		}
	}
}

// ReadPump reads messages from the WebSocket and handles client commands.
// injector may be nil when no backend accepts injected keys.
func (c *Client) ReadPump(injector Injector) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			c.logger.Warn("unparseable client message", "error", err)
			continue
		}

		switch clientMsg.Type {
		case "key":
			if injector == nil {
				c.logger.Warn("key injection refused, native backend active", "key", clientMsg.Key)
				continue
			}
			if clientMsg.Pressed {
				injector.Press(clientMsg.Key)
			} else {
				injector.Release(clientMsg.Key)
			}
		}
	}
}
