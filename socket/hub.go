package socket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client wraps a connection with a write lock. gorilla/websocket supports at
// most one concurrent writer per connection, and Notify is called from
// whichever goroutine resolves a request.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(payload interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(payload)
}

// Hub tracks per-user websocket connections so request resolutions can be
// fanned out to the sender while they are online.
type Hub struct {
	mu      sync.RWMutex
	clients map[string][]*client
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[string][]*client)}
}

// ServeWS upgrades the request and registers the connection under its user ID
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ Websocket upgrade failed for %s: %v", userID, err)
		return
	}

	c := &client{conn: conn}
	h.register(userID, c)
	log.Printf("✅ Socket connected for user %s", userID)

	go h.readLoop(userID, c)
}

// Notify sends a JSON payload to every open connection of a user. Users with
// no open connection are skipped silently; notifications are best effort.
func (h *Hub) Notify(userID string, payload interface{}) {
	h.mu.RLock()
	clients := append([]*client(nil), h.clients[userID]...)
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(payload); err != nil {
			log.Printf("❌ Failed to notify user %s: %v", userID, err)
		}
	}
}

// ConnectionCount returns the number of open connections for a user.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) register(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = append(h.clients[userID], c)
}

func (h *Hub) unregister(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.clients[userID]
	for i, existing := range clients {
		if existing == c {
			h.clients[userID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// readLoop drains client frames until the peer goes away, then cleans up.
func (h *Hub) readLoop(userID string, c *client) {
	defer func() {
		h.unregister(userID, c)
		c.conn.Close()
		log.Printf("❌ Socket disconnected for user %s", userID)
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
