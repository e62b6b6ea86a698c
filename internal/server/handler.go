package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/soar/padkeys/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local use
	},
}

func handleWebSocket(logger *slog.Logger, h *hub.Hub, b *hub.Broadcaster, injector hub.Injector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("WebSocket upgrade failed", "error", err)
			return
		}

		client := hub.NewClient(h, conn)
		h.Register(client)

		// Send current status to the new client
		b.SendInitialState(client)

		go client.WritePump()
		go client.ReadPump(injector)
	}
}
