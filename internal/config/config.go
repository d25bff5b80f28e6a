// Package config loads tool configuration from environment variables.
// Flags take precedence over env, env over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/lmendes/go-atp-h2h/internal/tennisdata"
)

// Config holds the environment-overridable settings.
type Config struct {
	DBPath    string `env:"ATPH2H_DB"`
	SourceURL string `env:"ATPH2H_SOURCE_URL"`
	FromYear  int    `env:"ATPH2H_FROM"`
	ToYear    int    `env:"ATPH2H_TO"`
}

// Load returns the configuration with defaults applied and environment
// overrides parsed on top.
func Load() (Config, error) {
	cfg := Config{
		DBPath:    filepath.Join(userHome(), ".atph2h", "matches.db"),
		SourceURL: tennisdata.DefaultBaseURL,
		FromYear:  2000,
		ToYear:    2022,
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FromYear > cfg.ToYear {
		return cfg, fmt.Errorf("season range %d-%d is inverted", cfg.FromYear, cfg.ToYear)
	}
	return cfg, nil
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
