package cmd

import (
	"fmt"

	"github.com/taskchat/chatctl/internal/chatbot"
	"github.com/taskchat/chatctl/internal/chatbot/config"
)

// newClient loads the configuration and creates a backend client,
// applying the --user override when set.
func newClient() (*chatbot.Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if userFlag != "" {
		cfg.UserID = userFlag
	}

	return chatbot.New(cfg.BaseURL, cfg.UserID, cfg.Timeout()), nil
}
