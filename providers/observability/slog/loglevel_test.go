package slog

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	t.Run("formpipe variable wins", func(t *testing.T) {
		t.Setenv("FORMPIPE_LOG_LEVEL", "debug")
		t.Setenv("LOG_LEVEL", "error")
		if got := GetLogLevelFromEnv(); got != slog.LevelDebug {
			t.Errorf("GetLogLevelFromEnv() = %v, want debug", got)
		}
	})

	t.Run("generic variable as fallback", func(t *testing.T) {
		t.Setenv("FORMPIPE_LOG_LEVEL", "")
		t.Setenv("LOG_LEVEL", "warning")
		if got := GetLogLevelFromEnv(); got != slog.LevelWarn {
			t.Errorf("GetLogLevelFromEnv() = %v, want warn", got)
		}
	})

	t.Run("unset defaults to info", func(t *testing.T) {
		t.Setenv("FORMPIPE_LOG_LEVEL", "")
		t.Setenv("LOG_LEVEL", "")
		if got := GetLogLevelFromEnv(); got != slog.LevelInfo {
			t.Errorf("GetLogLevelFromEnv() = %v, want info", got)
		}
	})
}
