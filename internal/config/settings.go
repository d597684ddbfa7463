package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"log/slog"
)

// Settings holds process-level engine configuration.
type Settings struct {
	// RulesDir optionally overlays the embedded catalog with external
	// language files and policy.
	RulesDir string

	// TuningFile optionally points at a .lang-engine.hcl tuning file.
	TuningFile string

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // Optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration
func DefaultSettings() *Settings {
	return &Settings{
		RulesDir:   "",
		TuningFile: "",
		LogLevel:   slog.LevelError,
		LogFormat:  "text",
		LogFile:    "", // Empty = stderr
	}
}

// LoadSettings creates settings from defaults and applies environment
// variable overrides (LANG_ENGINE_*).
func LoadSettings() *Settings {
	settings := DefaultSettings()

	if rulesDir := os.Getenv("LANG_ENGINE_RULES_DIR"); rulesDir != "" {
		settings.RulesDir = rulesDir
	}

	if tuningFile := os.Getenv("LANG_ENGINE_TUNING"); tuningFile != "" {
		settings.TuningFile = tuningFile
	}

	if logLevel := os.Getenv("LANG_ENGINE_LOG_LEVEL"); logLevel != "" {
		if level, err := parseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("LANG_ENGINE_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("LANG_ENGINE_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	return settings
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// ConfigureLogger sets up a logger based on settings
func (s *Settings) ConfigureLogger() *slog.Logger {
	var handler slog.Handler

	var output io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Cannot open log file %s: %v\n", s.LogFile, err)
			output = os.Stderr
		} else {
			output = file
		}
	}

	opts := &slog.HandlerOptions{
		Level: s.LogLevel,
	}

	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
