package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the full environment surface of the mock server. The bind
// address and port are the only parameters external clients care about;
// the rest tune the WebSocket push loop and the mock token endpoint.
type Config struct {
	ServeIP      string        `env:"CLIENT_SERVE_IP" envDefault:"0.0.0.0"`
	ServePort    int           `env:"CLIENT_PORT" envDefault:"8080"`
	PushInterval time.Duration `env:"WS_PUSH_INTERVAL" envDefault:"1s"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"edge-view-test-secret"`
	JWTTTL       time.Duration `env:"JWT_TTL" envDefault:"1h"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr returns the host:port string to bind the listener to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServeIP, c.ServePort)
}
