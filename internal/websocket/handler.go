package websocket

import (
	"net/http"
	"sync"
	"time"

	"DBDashboard/internal/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 5 * time.Second

	// sendBuffer is how many messages may queue for a client before it is dropped
	sendBuffer = 16
)

// Greeting builds the first message of a new client. It runs under the
// handler lock, so no broadcast can land between it and registration.
type Greeting func() ([]byte, error)

// Handler manages WebSocket connections that receive dashboard snapshots
type Handler struct {
	clients  map[*Client]bool
	mu       sync.Mutex
	upgrader websocket.Upgrader

	// onChange is told the number of clients after each connect or disconnect
	onChange func(n int)
}

// Client represents a WebSocket client connection. Messages for it are
// queued on send and written by its own writer goroutine.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHandler creates a new WebSocket handler. checkOrigin may be nil to allow all origins.
func NewHandler(checkOrigin func(r *http.Request) bool) *Handler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &Handler{
		clients: make(map[*Client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// OnClientCountChange registers a callback for client count changes
func (h *Handler) OnClientCountChange(f func(n int)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = f
}

// ServeHTTP upgrades the connection, queues the greeting (if any) and keeps
// the client registered until it disconnects
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request, greeting Greeting) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to WebSocket connection", logger.Err(err))
		return
	}

	client := &Client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if greeting != nil {
		if msg, err := greeting(); err != nil {
			logger.Warn("Failed to build initial snapshot", logger.Err(err))
		} else {
			client.send <- msg
		}
	}
	h.clients[client] = true
	h.notifyLocked()
	h.mu.Unlock()

	go h.writePump(client)
	defer h.remove(client)

	// Inbound messages are discarded; reading only detects the disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump writes queued messages until the queue is closed or a write fails
func (h *Handler) writePump(client *Client) {
	defer client.conn.Close()

	for msg := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debug("WebSocket write failed", logger.Err(err))
			return
		}
	}

	client.conn.SetWriteDeadline(time.Now().Add(writeWait))
	client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Broadcast queues a message for all clients without waiting for any of them.
// A client whose queue is full is disconnected.
func (h *Handler) Broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			logger.Warn("Dropping slow WebSocket client",
				logger.String("remote_addr", client.conn.RemoteAddr().String()))
			h.dropLocked(client)
			// Unblocks a writer stuck on the full connection
			client.conn.Close()
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Handler) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// CloseAll disconnects every client
func (h *Handler) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.dropLocked(client)
	}
}

func (h *Handler) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(client)
}

// dropLocked unregisters client and closes its queue. The queue is only
// closed here, while the client is still in the map, so it is closed once.
func (h *Handler) dropLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.notifyLocked()
}

func (h *Handler) notifyLocked() {
	if h.onChange != nil {
		h.onChange(len(h.clients))
	}
}
