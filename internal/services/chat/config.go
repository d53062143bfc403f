// File: internal/services/chat/config.go
package chat

import "fmt"

type Config struct {
	// Model Configuration
	Model       string  // Completion model for chat and the connection test
	MaxTokens   int     // Maximum response tokens for chat replies
	Temperature float32 // Sampling temperature for chat replies

	// Connection test parameters
	TestPrompt      string
	TestMaxTokens   int
	TestTemperature float32

	// Reported by Health
	Environment      string
	Version          string
	APIKeyConfigured bool

	// Upper bound on in-flight upstream calls, 0 disables the bound
	MaxConcurrent int64
}

func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.TestMaxTokens <= 0 {
		return fmt.Errorf("test_max_tokens must be positive")
	}
	if c.TestPrompt == "" {
		return fmt.Errorf("test_prompt is required")
	}
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("max_concurrent cannot be negative")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Model:           "gpt-3.5-turbo",
		MaxTokens:       500,
		Temperature:     0.7,
		TestPrompt:      "Say hello and confirm you're working",
		TestMaxTokens:   50,
		TestTemperature: 0.5,
		Environment:     "development",
		Version:         "1.0.0",
		MaxConcurrent:   32,
	}
}
