package sse

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aaronzipp/douze-points/internal/game"
	"github.com/aaronzipp/douze-points/internal/logging"
)

// Message is one event pushed to live clients.
type Message struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// Client is a subscribed live connection.
type Client struct {
	ID string
	C  chan Message
}

// Hub fans game events out to every connected SSE and websocket client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	timeout time.Duration
}

// NewHub creates a hub with the default per-client send timeout.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		timeout: time.Duration(game.SSETimeoutSeconds) * time.Second,
	}
}

func logger() *logrus.Entry {
	return logging.For("sse")
}

// Subscribe registers a new client and returns it.
func (h *Hub) Subscribe() *Client {
	client := &Client{
		ID: uuid.New().String(),
		C:  make(chan Message, game.SSEBufferSize),
	}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	logger().WithField("client", client.ID).WithField("clients", count).Debug("client subscribed")
	return client
}

// Unsubscribe removes client from the hub.
func (h *Hub) Unsubscribe(client *Client) {
	h.mu.Lock()
	delete(h.clients, client)
	count := len(h.clients)
	h.mu.Unlock()

	logger().WithField("client", client.ID).WithField("clients", count).Debug("client removed")
}

// ClientCount returns the number of subscribed clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to all subscribed clients and returns how many
// received it. Slow clients are skipped after the send timeout.
func (h *Hub) Broadcast(event, data string) int {
	h.mu.RLock()
	// Collect all clients while holding the lock
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	// Send messages WITHOUT holding the lock
	msg := Message{Event: event, Data: data}
	sent := 0
	for _, client := range clients {
		select {
		case client.C <- msg:
			sent++
		case <-time.After(h.timeout):
			logger().WithField("client", client.ID).WithField("event", event).Warn("timeout sending to client")
		}
	}
	logger().WithField("event", event).Debugf("sent to %d/%d clients", sent, len(clients))
	return sent
}
