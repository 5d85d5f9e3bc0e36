package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatmock/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServeIP)
	assert.Equal(t, 8080, cfg.ServePort)
	assert.Equal(t, time.Second, cfg.PushInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLIENT_SERVE_IP", "127.0.0.1")
	t.Setenv("CLIENT_PORT", "3030")
	t.Setenv("WS_PUSH_INTERVAL", "250ms")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3030", cfg.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.PushInterval)
}
