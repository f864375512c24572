// Package web provides the live event feed over WebSocket.
package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PancyStudios/StaffBotGo/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveEvent is one message pushed to connected dashboard clients.
type LiveEvent struct {
	Type      string      `json:"type"`
	GuildID   string      `json:"guildId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// LiveHub fans out moderation events to all connected WebSocket clients.
type LiveHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

var hub = &LiveHub{
	clients: make(map[*websocket.Conn]bool),
}

// Hub returns the global live hub.
func Hub() *LiveHub {
	return hub
}

// handleLive upgrades the connection and keeps it registered until it closes.
func handleLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Error aceptando conexión WebSocket: "+err.Error(), "LiveFeed")
		return
	}

	hub.mu.Lock()
	hub.clients[conn] = true
	total := len(hub.clients)
	hub.mu.Unlock()

	logger.Info(fmt.Sprintf("Cliente conectado al feed en vivo (%d activos)", total), "LiveFeed")

	// Drain incoming messages until the client disconnects.
	go func() {
		defer hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *LiveHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Broadcast sends an event to every connected client. Dead connections are
// dropped on write failure.
func (h *LiveHub) Broadcast(eventType, guildID string, data interface{}) {
	event := LiveEvent{
		Type:      eventType,
		GuildID:   guildID,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(event); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount returns the number of connected live feed clients.
func (h *LiveHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// PublishLive broadcasts a moderation event on the global hub.
func PublishLive(eventType, guildID string, data interface{}) {
	hub.Broadcast(eventType, guildID, data)
}
