package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"microscan/internal/logger"
	ws "microscan/internal/services/websocket"
)

// previewReadTimeout bounds how long a preview viewer may stay silent. The
// server pings ahead of the deadline so idle viewers are kept alive.
const previewReadTimeout = 60 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PreviewWebsocketHandler registers a viewer with the camera preview hub.
// Frames flow server to client only; reads just keep the connection alive.
func PreviewWebsocketHandler(hub *ws.HubService, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connection, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("WebSocket upgrade error: %v", err)
			return
		}
		defer connection.Close()

		connection.SetReadLimit(512)
		stopPings := previewKeepAlive(connection, previewReadTimeout)
		defer stopPings()

		hub.Register(connection)
		defer hub.Unregister(connection)

		for {
			if _, _, err := connection.ReadMessage(); err != nil {
				break
			}
		}
	}
}

// previewKeepAlive arms the read deadline, extends it on pongs, and pings
// the client ahead of each deadline. WriteControl is safe alongside the
// hub's frame writes. The returned function stops the ping loop.
func previewKeepAlive(connection *websocket.Conn, timeout time.Duration) func() {
	connection.SetReadDeadline(time.Now().Add(timeout))
	connection.SetPongHandler(func(appData string) error {
		return connection.SetReadDeadline(time.Now().Add(timeout))
	})

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(timeout * 9 / 10)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				deadline := time.Now().Add(timeout / 2)
				if err := connection.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					return
				}
			}
		}
	}()
	return func() { close(stop) }
}
