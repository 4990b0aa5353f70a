package http

import (
	"log"
	"net/http"
	"sync"
	"time"

	"trivia-game/internal/event"
	"github.com/gorilla/websocket"
)

// Hub broadcasts published game events to websocket spectators. It implements
// the bus observer contract; the engine publishes inline while connections
// come and go on server goroutines, so registration is mutex-guarded.
type Hub struct {
	upgrader  websocket.Upgrader
	writeWait time.Duration

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		writeWait: 5 * time.Second,
		conns:     make(map[*websocket.Conn]struct{}),
	}
}

// ServeWS upgrades the request and registers the spectator connection.
// Spectators only receive; inbound frames are drained until the peer closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// HandleEvent sends the event as a JSON frame to every connected spectator.
// Each write carries a deadline, so a spectator that stopped reading errors
// out and is dropped instead of blocking the publish path.
func (h *Hub) HandleEvent(e event.GameEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := conn.WriteJSON(e); err != nil {
			log.Printf("ws write error: %v", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
	return nil
}

// SpectatorCount reports how many spectators are connected.
func (h *Hub) SpectatorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[conn]; ok {
		conn.Close()
		delete(h.conns, conn)
	}
}
