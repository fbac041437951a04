package ws

import (
	"encoding/json"
	"sync"

	"creativestyle/internal/logger"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans admin feed messages out to every connected dashboard
type Hub struct {
	conns map[*Connection]struct{}

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once

	log *logger.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	Username string
	Send     chan []byte
	Hub      *Hub
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub(log *logger.Logger) *Hub {
	h := &Hub{
		conns:      make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		log:        log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = struct{}{}
			h.mu.Unlock()
			h.log.Info("admin feed connected", "username", conn.Username)

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.conns[conn]; ok {
				delete(h.conns, conn)
				close(conn.Send)
				h.log.Info("admin feed disconnected", "username", conn.Username)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for conn := range h.conns {
				close(conn.Send)
				delete(h.conns, conn)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// ConnCount is the number of live admin connections
func (h *Hub) ConnCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close stops the hub loop and closes every connection
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// BroadcastToAdmins queues a message for every dashboard (implements service.Broadcaster).
// It never blocks the caller; messages are dropped when the queue is full.
func (h *Hub) BroadcastToAdmins(msgType string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.log.Warn("admin feed payload not encodable", "type", msgType, "error", err)
		return
	}
	data, _ := json.Marshal(&Message{Type: MessageType(msgType), Payload: body})

	select {
	case h.broadcast <- data:
	default:
		h.log.Warn("admin feed queue full, dropping message", "type", msgType)
	}
}
