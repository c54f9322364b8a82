// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ws broadcasts generation progress events to connected browsers
// over WebSocket. Clients are write-only from the server's point of view;
// inbound messages are drained and discarded.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait is the deadline for a single broadcast write per client.
const writeWait = 5 * time.Second

// ProgressEvent is one progress update pushed to all connected clients.
type ProgressEvent struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Progress int    `json:"progress"` // percent, 0-100
}

// Progress builds a generation_progress event.
func Progress(message string, progress int) ProgressEvent {
	return ProgressEvent{Type: "generation_progress", Message: message, Progress: progress}
}

// Hub tracks connected WebSocket clients and fans broadcast events out to
// all of them. Safe for concurrent use.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The UI is served from the same origin; cross-origin pages
			// only receive progress percentages, nothing sensitive.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request to a WebSocket connection and registers
// the client until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	slog.Debug("websocket client connected", "remote", r.RemoteAddr)

	// Drain inbound frames so control messages are processed; the read
	// error is how we learn the client went away.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends an event to every connected client. Clients that fail
// the write are dropped.
func (h *Hub) Broadcast(event ProgressEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("websocket event encode error", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns how many clients are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}
