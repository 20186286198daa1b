package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContextUserIDKey is the gin context key the auth middleware stores the user id under
const ContextUserIDKey = "userID"

// Handler upgrades HTTP requests into topic subscriptions
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// Subscribe returns a gin handler that streams every message published on topic.
// The latest message on the topic, if any, is sent right after the upgrade.
func (h *Handler) Subscribe(topic string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID int64
		if v, ok := c.Get(ContextUserIDKey); ok {
			userID, _ = v.(int64)
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Error().Err(err).Str("topic", topic).Int64("userID", userID).Msg("Failed to upgrade connection to WebSocket")
			return
		}

		client := &Client{
			hub:    h.hub,
			conn:   conn,
			send:   make(chan []byte, 16),
			userID: userID,
			topic:  topic,
			logger: h.logger,
		}

		select {
		case h.hub.register <- client:
		case <-h.hub.done:
			conn.Close()
			return
		}

		go client.writePump()
		go client.readPump()

		h.logger.Info().
			Str("topic", topic).
			Int64("userID", userID).
			Str("remoteAddr", conn.RemoteAddr().String()).
			Msg("WebSocket connection established")
	}
}
