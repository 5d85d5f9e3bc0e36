// Package handler maps the mock ChatSurfer routes onto canned responses.
// Handlers are stateless between requests; the only long-lived piece is
// the WebSocket push loop, which regenerates a fresh message every tick.
package handler

import (
	"math/rand"

	"go.uber.org/zap"

	"chatmock/backend/internal/config"
	"chatmock/backend/internal/fixtures"
	"chatmock/backend/internal/push"
)

// SeedSource draws the random seed for each WebSocket push tick.
type SeedSource func() int

// Handler bundles the dependencies the route handlers share.
type Handler struct {
	log     *zap.Logger
	cfg     *config.Config
	gen     *fixtures.Generator
	tracker *push.Tracker
	seed    SeedSource
}

// New builds a Handler. A nil seed source falls back to math/rand.
func New(log *zap.Logger, cfg *config.Config, gen *fixtures.Generator, tracker *push.Tracker, seed SeedSource) *Handler {
	if seed == nil {
		seed = func() int { return rand.Intn(100000) }
	}
	return &Handler{
		log:     log,
		cfg:     cfg,
		gen:     gen,
		tracker: tracker,
		seed:    seed,
	}
}
