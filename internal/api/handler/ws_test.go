package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatmock/backend/internal/models"
)

// dialRoomStream upgrades against an httptest server and returns the live
// connection.
func dialRoomStream(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(server.URL, "http://", "ws://", 1) + "/api/chat/ws/somedomain/Test_Room"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestRoomStream_PushesChatMessageFrames(t *testing.T) {
	router := newTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	conn := dialRoomStream(t, server)

	for i := 0; i < 3; i++ {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		frameType, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, frameType)

		var msg models.ChatMessage
		require.NoError(t, json.Unmarshal(payload, &msg), "each frame is one ChatMessage")
		assert.Equal(t, "Austin", msg.Sender)
		assert.Equal(t, models.Unclassified, msg.Classification)
		assert.Equal(t, models.TestDomainID, msg.DomainID)
		assert.NotEmpty(t, msg.ID)
	}
}

func TestRoomStream_Cadence(t *testing.T) {
	// The test router pushes every 20ms.
	router := newTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	conn := dialRoomStream(t, server)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	require.NoError(t, err)

	start := time.Now()
	const frames = 5
	for i := 0; i < frames; i++ {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, _, err := conn.ReadMessage()
		require.NoError(t, err)
	}
	elapsed := time.Since(start)

	// Five ticks at 20ms each; allow generous scheduler jitter upward.
	assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond,
		"frames arrive one per tick, not in a burst")
	assert.Less(t, elapsed, time.Second)
}

func TestRoomStream_PeerDisconnectEndsLoop(t *testing.T) {
	router := newTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	conn := dialRoomStream(t, server)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	require.NoError(t, err)

	// Abrupt close; the server's next write fails and its loop exits.
	// Nothing to assert beyond the server staying healthy afterwards.
	require.NoError(t, conn.Close())
	time.Sleep(100 * time.Millisecond)

	rec := doJSON(router, http.MethodGet, "/api/chat/messages/somedomain/Test_Room", "")
	assert.Equal(t, http.StatusOK, rec.Code, "listener survives peer disconnects")
}
