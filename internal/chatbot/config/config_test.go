package config

import (
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected base URL: %s", cfg.BaseURL)
	}
	if cfg.UserID != "user123" {
		t.Errorf("unexpected user id: %s", cfg.UserID)
	}
	if cfg.RequestTimeout != 30 {
		t.Errorf("unexpected request timeout: %d", cfg.RequestTimeout)
	}
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{name: "configured", seconds: 10, want: 10 * time.Second},
		{name: "zero falls back", seconds: 0, want: 30 * time.Second},
		{name: "negative falls back", seconds: -1, want: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{RequestTimeout: tt.seconds}
			if got := cfg.Timeout(); got != tt.want {
				t.Errorf("Timeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("CHATCTL_TEST_USER", "alice")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain value", input: "user123", want: "user123"},
		{name: "dollar syntax", input: "$CHATCTL_TEST_USER", want: "alice"},
		{name: "braced syntax", input: "${CHATCTL_TEST_USER}", want: "alice"},
		{name: "unset variable", input: "$CHATCTL_TEST_UNSET", want: ""},
		{name: "empty value", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandEnvVar(tt.input); got != tt.want {
				t.Errorf("expandEnvVar(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
