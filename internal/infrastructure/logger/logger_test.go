package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	log := New(Config{Level: "error", Format: "json"})

	if log.GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("expected error level, got %v", log.GetLevel())
	}
}

func TestNewTagsServiceField(t *testing.T) {
	var buf bytes.Buffer

	log := New(Config{Level: "info", Format: "json"}).Output(&buf)
	log.Info().Msg("ping")

	if !strings.Contains(buf.String(), `"service":"pocketledger"`) {
		t.Fatalf("expected service field in output, got %s", buf.String())
	}
}
