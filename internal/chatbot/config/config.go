// Package config loads the chatctl configuration from the TOML config
// file and environment variables via viper.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/taskchat/chatctl/internal/chatbot"
)

// Config holds the configuration for the chat backend client.
type Config struct {
	BaseURL        string `toml:"base_url" mapstructure:"base_url"`
	UserID         string `toml:"user_id" mapstructure:"user_id"` // literal value or $VAR reference
	RequestTimeout int    `toml:"request_timeout" mapstructure:"request_timeout"` // seconds
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		BaseURL:        chatbot.DefaultBaseURL,
		UserID:         chatbot.DefaultUserID,
		RequestTimeout: int(chatbot.DefaultTimeout / time.Second),
	}
}

// LoadConfig loads configuration from viper.
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	// The user id may reference an environment variable so that shared
	// config files don't need to hard-code a per-person identity.
	config.UserID = expandEnvVar(config.UserID)

	return config, nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return chatbot.DefaultTimeout
	}
	return time.Duration(c.RequestTimeout) * time.Second
}

// expandEnvVar expands an environment variable reference in the given
// value. Supports both $VAR and ${VAR} syntax. A reference to an unset
// variable expands to the empty string; a plain value is returned as-is.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "$") {
		return value
	}

	var envVarName string
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVarName = value[2 : len(value)-1]
	} else {
		envVarName = strings.TrimPrefix(value, "$")
	}

	return os.Getenv(envVarName)
}
