package push_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"chatmock/backend/internal/push"
)

func TestTracker_RegisterUnregister(t *testing.T) {
	tracker := push.NewTracker(zap.NewNop())
	go tracker.Run()

	s := push.NewSession(nil, time.Second, nil, zap.NewNop())

	tracker.Add(s)
	tracker.Remove(s)
	tracker.Shutdown()
}

func TestTracker_AddAfterShutdownDoesNotBlock(t *testing.T) {
	tracker := push.NewTracker(zap.NewNop())
	go tracker.Run()
	tracker.Shutdown()

	s := push.NewSession(nil, time.Second, nil, zap.NewNop())

	done := make(chan struct{})
	go func() {
		tracker.Add(s)
		tracker.Remove(s)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Add/Remove blocked after Shutdown")
	}
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	s := push.NewSession(nil, time.Second, nil, zap.NewNop())

	assert.NotPanics(t, func() {
		s.Close()
		s.Close()
	})
}
