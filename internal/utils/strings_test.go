package utils

import (
	"strings"
	"testing"
)

func TestJSONToString(t *testing.T) {
	object := map[string]any{"form_id": "f", "valid": true}

	compact := JSONToString(object)
	if !strings.Contains(compact, `"form_id":"f"`) {
		t.Errorf("JSONToString() = %s", compact)
	}

	pretty := JSONToString(object, true)
	if !strings.Contains(pretty, "\n  \"form_id\": \"f\"") {
		t.Errorf("JSONToString(indent) = %s", pretty)
	}

	// Unmarshalable input degrades to an error document instead of panicking.
	broken := JSONToString(map[string]any{"ch": make(chan int)})
	if !strings.Contains(broken, `"error"`) {
		t.Errorf("JSONToString(chan) = %s", broken)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exactly at limit", "abcde", 5, "abcde"},
		{"truncated", "abcdefgh", 4, "abcd... (truncated, total: 8 chars)"},
		{"zero limit falls back to default", "abc", 0, "abc"},
		{"empty string", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.s, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateString_LongInputDefaultLimit(t *testing.T) {
	long := strings.Repeat("x", DefaultMaxStringLength+100)

	got := TruncateString(long, 0)
	if len(got) >= len(long) {
		t.Errorf("TruncateString() did not shorten a %d-char string", len(long))
	}
	if !strings.Contains(got, "total: 600 chars") {
		t.Errorf("TruncateString() = ...%s", got[len(got)-40:])
	}
}
