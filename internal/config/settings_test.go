package config

import (
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Empty(t, settings.RulesDir)
	assert.Empty(t, settings.TuningFile)
	assert.Equal(t, slog.LevelError, settings.LogLevel)
	assert.Equal(t, "text", settings.LogFormat)
	assert.Empty(t, settings.LogFile)
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("LANG_ENGINE_RULES_DIR", "/etc/lang-engine/rules")
	t.Setenv("LANG_ENGINE_TUNING", "/etc/lang-engine/tuning.hcl")
	t.Setenv("LANG_ENGINE_LOG_LEVEL", "debug")
	t.Setenv("LANG_ENGINE_LOG_FORMAT", "json")

	settings := LoadSettings()

	assert.Equal(t, "/etc/lang-engine/rules", settings.RulesDir)
	assert.Equal(t, "/etc/lang-engine/tuning.hcl", settings.TuningFile)
	assert.Equal(t, slog.LevelDebug, settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
}

func TestLoadSettingsInvalidLogLevelKeepsDefault(t *testing.T) {
	t.Setenv("LANG_ENGINE_LOG_LEVEL", "verbose")

	settings := LoadSettings()
	assert.Equal(t, slog.LevelError, settings.LogLevel)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"Error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		level, err := parseLogLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, level, tt.input)
	}
}

func TestConfigureLogger(t *testing.T) {
	settings := DefaultSettings()
	assert.NotNil(t, settings.ConfigureLogger())

	settings.LogFormat = "json"
	assert.NotNil(t, settings.ConfigureLogger())
}
