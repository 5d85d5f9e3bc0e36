package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"chatmock/backend/internal/models"
	"chatmock/backend/internal/push"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Test server: accept connections from any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeRoomStream upgrades GET /api/chat/ws/:domainId/:roomName and then
// pushes one freshly generated message per tick, sender fixed to Austin
// with a random seed each time, until the peer disconnects.
func (h *Handler) ServeRoomStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the handshake error response.
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.log.Info("websocket client connected",
		zap.String("domain_id", c.Param("domainId")),
		zap.String("room_name", c.Param("roomName")),
	)

	session := push.NewSession(conn, h.cfg.PushInterval, h.nextPushMessage, h.log)

	h.tracker.Add(session)
	defer h.tracker.Remove(session)

	session.Run()
}

func (h *Handler) nextPushMessage() models.ChatMessage {
	return h.gen.BuildMessage(h.seed(), "Austin", "")
}
