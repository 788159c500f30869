package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Notification is pushed to every live connection of one user
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification types
const (
	TypeSuccess = "success"
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeError   = "error"
)

// Hub maintains the set of connected clients, grouped by user, and fans
// notifications out to them
type Hub struct {
	// Registered clients organized by user ID
	clients map[string]map[*Client]bool

	// Outbound notifications
	broadcast chan *Notification

	register   chan *Client
	unregister chan *Client

	// Guards clients for readers outside the Run goroutine
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Notification, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled, then closes every
// client connection
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case n := <-h.broadcast:
			h.deliver(n)

		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Notification client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.userID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.userID)
	}

	h.logger.Info().
		Str("userID", client.userID).
		Msg("Notification client unregistered")
}

// deliver writes n to every client of its user. Clients whose buffer is full are
// dropped.
func (h *Hub) deliver(n *Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		h.logger.Error().Err(err).Str("userID", n.UserID).Msg("Failed to marshal notification")
		return
	}

	h.mu.RLock()
	var slow []*Client
	for client := range h.clients[n.UserID] {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn().Str("userID", n.UserID).Msg("Dropping slow notification client")
		h.unregisterClient(client)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, clients := range h.clients {
		for client := range clients {
			close(client.send)
		}
		delete(h.clients, userID)
	}
}

// Notify queues a notification for userID. It never blocks; when the queue is full
// the notification is dropped and logged.
func (h *Hub) Notify(userID, title, message, notificationType string) {
	n := &Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		CreatedAt: time.Now(),
	}

	select {
	case h.broadcast <- n:
	default:
		h.logger.Warn().Str("userID", userID).Str("title", title).Msg("Notification queue full, dropping notification")
	}
}

// ClientsCount returns the number of live connections for userID
func (h *Hub) ClientsCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
