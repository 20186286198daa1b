package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Hub maintains the set of active clients per topic and fans published
// messages out to them. A single goroutine (Run) owns the client sets.
type Hub struct {
	// Registered clients organized by topic
	clients map[string]map[*Client]bool

	// Last message published per topic, replayed to new subscribers
	latest map[string][]byte

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Mutex for read access from outside the hub goroutine
	mu sync.RWMutex

	listenersMu sync.RWMutex
	listeners   []chan *Message

	logger zerolog.Logger
}

// Message represents a message sent over WebSocket
type Message struct {
	// Type of message, e.g. "chart.update"
	Type string `json:"type"`

	// Topic the message was published on
	Topic string `json:"topic"`

	// JSON payload
	Payload json.RawMessage `json:"payload"`

	// Timestamp when the message was published
	Timestamp time.Time `json:"timestamp"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		latest:     make(map[string][]byte),
		broadcast:  make(chan *Message, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Publish marshals payload and queues it for every subscriber of topic.
// It returns false when the hub has stopped or ctx ends first.
func (h *Hub) Publish(ctx context.Context, topic, msgType string, payload interface{}) (bool, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return false, err
	}
	msg := &Message{
		Type:      msgType,
		Topic:     topic,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}
	select {
	case h.broadcast <- msg:
		return true, nil
	case <-h.done:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.topic]; !ok {
		h.clients[client.topic] = make(map[*Client]bool)
	}
	h.clients[client.topic][client] = true
	latest := h.latest[client.topic]
	h.mu.Unlock()

	if latest != nil {
		select {
		case client.send <- latest:
		default:
		}
	}

	h.logger.Info().
		Str("topic", client.topic).
		Int64("userID", client.userID).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(client)
}

// dropLocked removes client and closes its send channel. h.mu must be held.
func (h *Hub) dropLocked(client *Client) {
	clients, ok := h.clients[client.topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.topic)
	}
	h.logger.Info().
		Str("topic", client.topic).
		Int64("userID", client.userID).
		Msg("Client unregistered")
}

func (h *Hub) broadcastMessage(message *Message) {
	h.notifyListeners(message)

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().Err(err).Str("topic", message.Topic).Msg("Failed to marshal message for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest[message.Topic] = data
	clients := h.clients[message.Topic]
	for client := range clients {
		select {
		case client.send <- data:
		default:
			// Slow consumer
			h.dropLocked(client)
		}
	}

	h.logger.Debug().
		Str("topic", message.Topic).
		Int("clientCount", len(clients)).
		Msg("Message broadcasted to topic")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.dropLocked(client)
		}
	}
}

func (h *Hub) notifyListeners(message *Message) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, listener := range h.listeners {
		select {
		case listener <- message:
		default:
			h.logger.Warn().Str("topic", message.Topic).Msg("Skipped slow message listener")
		}
	}
}

// ClientsCount returns the number of connected clients for a topic
func (h *Hub) ClientsCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

// AddListener registers a channel that receives every published message
func (h *Hub) AddListener(listener chan *Message) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, listener)
}

// RemoveListener removes a listener from the hub
func (h *Hub) RemoveListener(listener chan *Message) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	for i, l := range h.listeners {
		if l == listener {
			h.listeners[i] = h.listeners[len(h.listeners)-1]
			h.listeners = h.listeners[:len(h.listeners)-1]
			return
		}
	}
}
