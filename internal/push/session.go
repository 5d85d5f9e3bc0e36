// Package push owns the WebSocket side of the mock server: a per-connection
// loop that delivers one freshly built fixture message per tick, and a
// tracker that knows every live loop so shutdown can end them.
package push

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"chatmock/backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
)

// MessageSource builds the next message to push. Called once per tick.
type MessageSource func() models.ChatMessage

// Session is one upgraded WebSocket connection with its push loop. There
// is no queue and no backpressure: a failed write means the peer is gone
// and ends the session.
type Session struct {
	conn     *websocket.Conn
	interval time.Duration
	next     MessageSource
	log      *zap.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// NewSession wraps an upgraded connection. Run must be called to start
// pushing.
func NewSession(conn *websocket.Conn, interval time.Duration, next MessageSource, log *zap.Logger) *Session {
	return &Session{
		conn:     conn,
		interval: interval,
		next:     next,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Run pushes one message per tick until the peer disconnects or Close is
// called. It blocks until the session ends.
func (s *Session) Run() {
	go s.readLoop()

	ticker := time.NewTicker(s.interval)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			payload, err := json.Marshal(s.next())
			if err != nil {
				s.log.Error("encode push message", zap.Error(err))
				return
			}

			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				// Peer closed or went away. Informational only.
				s.log.Info("push session ended", zap.Error(err))
				return
			}
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// Close ends the push loop. Safe to call from any goroutine, any number
// of times.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// readLoop drains inbound frames so close and other control messages are
// processed promptly. Payloads are discarded; this server only pushes.
func (s *Session) readLoop() {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}
