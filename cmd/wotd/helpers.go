package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/wotd/internal/config"
	"github.com/at-ishikawa/wotd/internal/oed"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newOEDClient(cfg *config.Config) *oed.Client {
	return oed.NewClient(
		cfg.OED.BaseURL,
		time.Duration(cfg.OED.TimeoutSeconds)*time.Second,
		cfg.OED.RetryAttempts,
	)
}
