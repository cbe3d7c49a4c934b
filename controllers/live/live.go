// Package livecontroller pushes order/contact events to connected admin
// dashboards over a websocket, mirroring the webhook payloads.
package livecontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	mu      sync.Mutex
	clients = make(map[*websocket.Conn]bool)
)

// NotificationsHandler upgrades the connection and keeps it registered until
// the peer goes away. The feed is write-only; inbound frames are drained and
// ignored.
func NotificationsHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	mu.Lock()
	clients[conn] = true
	mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			mu.Lock()
			delete(clients, conn)
			mu.Unlock()
			break
		}
	}
}

// Broadcast fans the event out to every connected client. Clients that fail
// a write are dropped.
func Broadcast(event map[string]any) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	for conn := range clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(clients, conn)
		}
	}
}
