package main

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all server settings, populated from the environment
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	DataFile       string   `env:"DATA_FILE"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3001"`

	// ReferenceDateMode decides what "today" means for relative periods:
	// "dataset" anchors on the latest date in the loaded data (useful for
	// historical exports), "now" uses the wall clock.
	ReferenceDateMode string `env:"REFERENCE_DATE_MODE" envDefault:"dataset"`

	CompliancePolicy  string `env:"COMPLIANCE_POLICY" envDefault:"standard"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"240"`
}

// loadConfig reads .env when present, then parses the environment
func loadConfig() (Config, error) {
	// A missing .env file is fine; the environment may be set directly
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to parse environment variables: %w", err)
	}

	if cfg.ReferenceDateMode != "dataset" && cfg.ReferenceDateMode != "now" {
		return Config{}, fmt.Errorf("invalid REFERENCE_DATE_MODE %q (want dataset or now)", cfg.ReferenceDateMode)
	}
	if cfg.CompliancePolicy != PolicyStandard && cfg.CompliancePolicy != PolicyFlat35 {
		return Config{}, fmt.Errorf("invalid COMPLIANCE_POLICY %q (want %s or %s)", cfg.CompliancePolicy, PolicyStandard, PolicyFlat35)
	}

	return cfg, nil
}
