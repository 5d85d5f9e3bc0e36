package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the mock routes onto a gin engine. Anything outside the
// table responds 404 with an empty body.
func NewRouter(logger *zap.Logger, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())

	chat := r.Group("/api/chat")
	chat.GET("/messages/:domainId/:roomName", h.GetMessages)
	chat.POST("/messages/search", h.SearchMessages)
	chat.GET("/ws/:domainId/:roomName", h.ServeRoomStream)

	// Some edge-view builds address search under a separate service path.
	r.POST("/api/chatsearch/messages/search", h.SearchMessages)

	r.POST("/api/chatserver/message", h.SendMessage)
	r.GET("/api/auth/key", h.GetAPIKey)

	realm := r.Group("/auth/realms/fmv")
	realm.GET("", h.GetRealm)
	realm.POST("/protocol/openid-connect/token", h.IssueToken)

	r.NoRoute(func(c *gin.Context) {
		logger.Info("unroutable request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.Status(http.StatusNotFound)
	})

	return r
}

// requestLogger records every request, including the optional api-key
// header, which is logged and never enforced.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		if apiKey := c.GetHeader("api-key"); apiKey != "" {
			logger.Info("api-key header present", zap.String("api_key", apiKey))
		}

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
