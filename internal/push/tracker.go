package push

import (
	"go.uber.org/zap"
)

// Tracker keeps the set of live push sessions. All state changes flow
// through its channels and are applied by the Run goroutine, so no lock
// is needed.
type Tracker struct {
	RegisterCh   chan *Session
	UnregisterCh chan *Session

	sessions map[*Session]struct{}
	shutdown chan struct{}
	stopped  chan struct{}
	log      *zap.Logger
}

// NewTracker builds a Tracker. Start it with go Run().
func NewTracker(log *zap.Logger) *Tracker {
	return &Tracker{
		RegisterCh:   make(chan *Session),
		UnregisterCh: make(chan *Session),
		sessions:     make(map[*Session]struct{}),
		shutdown:     make(chan struct{}),
		stopped:      make(chan struct{}),
		log:          log,
	}
}

// Run is the tracker's dispatch loop. It owns the session set until
// Shutdown is called.
func (t *Tracker) Run() {
	defer close(t.stopped)

	for {
		select {
		case s := <-t.RegisterCh:
			t.sessions[s] = struct{}{}
			t.log.Info("push session registered", zap.Int("active", len(t.sessions)))
		case s := <-t.UnregisterCh:
			if _, ok := t.sessions[s]; ok {
				delete(t.sessions, s)
			}
			t.log.Info("push session unregistered", zap.Int("active", len(t.sessions)))
		case <-t.shutdown:
			for s := range t.sessions {
				s.Close()
				delete(t.sessions, s)
			}
			return
		}
	}
}

// Add registers a session, unless the tracker has already stopped.
func (t *Tracker) Add(s *Session) {
	select {
	case t.RegisterCh <- s:
	case <-t.stopped:
	}
}

// Remove unregisters a session. Safe to call after Shutdown.
func (t *Tracker) Remove(s *Session) {
	select {
	case t.UnregisterCh <- s:
	case <-t.stopped:
	}
}

// Shutdown closes every live session and stops the dispatch loop. It
// blocks until the loop has drained.
func (t *Tracker) Shutdown() {
	close(t.shutdown)
	<-t.stopped
}
