// File: internal/services/ai/interface.go
package ai

import "context"

// CompletionRequest is a single-turn chat completion: an optional system
// prompt followed by one user message.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserMessage  string
	MaxTokens    int
	Temperature  float32
}

// CompletionProvider handles chat completions
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
