package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/leaguebuddies/backend/core"
)

const minSecretLen = 32

// Config holds the process-wide settings, read once at startup and never
// mutated. Rotating LB_SECRET between restarts invalidates every token
// issued under the old value.
type Config struct {
	// Secret is the symmetric HMAC signing key for bearer tokens
	Secret string `env:"LB_SECRET,required"`

	// DatabaseURL is a pgx connection string. Empty selects the in-memory
	// store, which only makes sense for local development.
	DatabaseURL string `env:"LB_DATABASE_URL"`

	Addr string `env:"LB_ADDR" envDefault:":8080"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Secret == "" {
		return nil, core.ErrSigningKeyRequired
	}
	if len(cfg.Secret) < minSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", core.ErrSigningKeyTooShort, minSecretLen)
	}

	return cfg, nil
}
