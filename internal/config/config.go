package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, loaded from environment variables.
type Config struct {
	Port         int    `env:"PORT" envDefault:"3000"`
	AllowOrigins string `env:"ALLOW_ORIGINS" envDefault:"http://localhost:5173"`

	// How long a roll with no legal move stays on screen before the turn
	// passes automatically.
	ForcedPassDelay time.Duration `env:"FORCED_PASS_DELAY" envDefault:"1s"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
