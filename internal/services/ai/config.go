// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

type Config struct {
	// Upstream credential and optional OpenAI-compatible host
	APIKey  string
	BaseURL string

	// Upper bound for a single completion call
	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return NewConfigError("OPENAI_API_KEY is required")
	}
	if c.Timeout <= 0 {
		return NewConfigError(fmt.Sprintf("timeout must be positive, got %s", c.Timeout))
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
