package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are settings taken from the environment. They win over
// stored preferences for the current run and are written back so the
// settings dialog shows them.
type EnvOverrides struct {
	AssetsDir   string `env:"HUB_ASSETS_DIR"`
	Language    string `env:"HUB_LANGUAGE"`
	GridColumns int    `env:"HUB_GRID_COLUMNS"`
	LogLevel    string `env:"HUB_LOG_LEVEL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv reads EnvOverrides and stores the non-empty ones in s
func (s *Settings) ApplyEnv() error {
	var overrides EnvOverrides
	if err := ParseEnv(&overrides); err != nil {
		return err
	}

	if overrides.AssetsDir != "" {
		s.SetAssetsDirectory(overrides.AssetsDir)
	}
	if overrides.Language != "" {
		s.SetLanguage(overrides.Language)
	}
	if overrides.GridColumns != 0 {
		if err := s.SetGridColumns(overrides.GridColumns); err != nil {
			return fmt.Errorf("HUB_GRID_COLUMNS: %w", err)
		}
	}
	if overrides.LogLevel != "" {
		s.SetLogLevel(overrides.LogLevel)
	}

	slog.Debug("environment overrides applied", "assets_dir", overrides.AssetsDir, "language", overrides.Language)
	return nil
}
