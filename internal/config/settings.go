package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/interior-hub/internal/model"
	"github.com/ytget/interior-hub/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAssetsDir    = "assets_directory"
	KeyGridColumns  = "grid_columns"
	KeyLanguage     = "app_language"
	KeyCompactTheme = "compact_theme"
	KeyLogLevel     = "log_level"
)

// Default values
const (
	DefaultGridColumns  = 4
	DefaultLanguage     = "system"
	DefaultCompactTheme = true
	DefaultLogLevel     = "info"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAssetsDirectory returns the configured assets directory
func (s *Settings) GetAssetsDirectory() string {
	dir := s.app.Preferences().String(KeyAssetsDir)
	if dir == "" {
		return platform.DefaultAssetsDir()
	}
	return dir
}

// SetAssetsDirectory sets the assets directory
func (s *Settings) SetAssetsDirectory(dir string) {
	s.app.Preferences().SetString(KeyAssetsDir, dir)
}

// GetGridColumns returns how many columns hub sections use
func (s *Settings) GetGridColumns() int {
	value := s.app.Preferences().IntWithFallback(KeyGridColumns, DefaultGridColumns)
	if !IsValidGridColumns(value) {
		return DefaultGridColumns
	}
	return value
}

// SetGridColumns sets the hub column count. Counts that do not divide the
// top items limit evenly are rejected.
func (s *Settings) SetGridColumns(columns int) error {
	if !IsValidGridColumns(columns) {
		return fmt.Errorf("grid columns %d: must be one of %v", columns, GridColumnOptions())
	}
	s.app.Preferences().SetInt(KeyGridColumns, columns)
	return nil
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCompactTheme returns whether the compact theme is enabled
func (s *Settings) GetCompactTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactTheme, DefaultCompactTheme)
}

// SetCompactTheme toggles the compact theme
func (s *Settings) SetCompactTheme(compact bool) {
	s.app.Preferences().SetBool(KeyCompactTheme, compact)
}

// GetLogLevel returns the configured slog level
func (s *Settings) GetLogLevel() slog.Level {
	return ParseLogLevel(s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel))
}

// SetLogLevel sets the log level name (debug, info, warn, error)
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, strings.ToLower(level))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GridColumnOptions returns the column counts that fill every row when a
// section shows model.TopItemsLimit items
func GridColumnOptions() []int {
	var options []int
	for n := 1; n <= model.TopItemsLimit/2; n++ {
		if model.TopItemsLimit%n == 0 {
			options = append(options, n)
		}
	}
	return options
}

// IsValidGridColumns reports whether columns is one of GridColumnOptions
func IsValidGridColumns(columns int) bool {
	return slices.Contains(GridColumnOptions(), columns)
}

// ParseLogLevel maps a level name to slog.Level, defaulting to Info
func ParseLogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}
