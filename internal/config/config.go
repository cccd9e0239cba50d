package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from the environment
// with an optional .env file on top.
type Config struct {
	Addr      string `env:"ADDR" envDefault:":3001"`
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:3001"`

	// SessionTTL is how long an untouched session survives before the
	// sweeper removes it; EndedGrace is the window an ended session
	// stays readable.
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	EndedGrace    time.Duration `env:"ENDED_GRACE" envDefault:"1h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`

	Debug bool `env:"DEBUG"`
}

// Load reads the .env file if present and parses the environment
func Load() (Config, error) {
	// Missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
