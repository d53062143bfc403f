// File: internal/services/chat/gateway.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/iyunix/go-mindmesh/internal/domain"
	"github.com/iyunix/go-mindmesh/internal/services/ai"
)

const statusHealthy = "healthy"

var errNotConfigured = errors.New("OpenAI not available or not configured")

// Gateway maps a domain to its system prompt and forwards one message
// upstream. Its configuration and provider are fixed at construction.
type Gateway struct {
	config   Config
	provider ai.CompletionProvider
	slots    *semaphore.Weighted
	logger   Logger
	now      func() time.Time
}

// NewGateway builds a gateway. A nil provider puts every chat into fallback
// mode.
func NewGateway(cfg *Config, provider ai.CompletionProvider, logger Logger) (*Gateway, error) {
	if cfg == nil {
		return nil, fmt.Errorf("chat: config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chat: invalid config: %w", err)
	}
	if logger == nil {
		return nil, fmt.Errorf("chat: logger must not be nil")
	}

	g := &Gateway{
		config:   *cfg,
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
	if cfg.MaxConcurrent > 0 {
		g.slots = semaphore.NewWeighted(cfg.MaxConcurrent)
	}
	return g, nil
}

// AIAvailable reports whether an upstream provider was configured.
func (g *Gateway) AIAvailable() bool {
	return g.provider != nil
}

// HandleChat never returns an error: every failure is folded into the
// result as fallback text plus a Failure.
func (g *Gateway) HandleChat(ctx context.Context, req domain.ChatRequest) (result ChatResult) {
	result = ChatResult{Domain: req.Domain, Timestamp: g.now()}

	defer func() {
		if rec := recover(); rec != nil {
			g.logger.Error("panic while handling chat", "domain", req.Domain, "panic", rec)
			result.Text = SystemUnavailableReply(req.Domain)
			result.AIPowered = false
			result.Failure = &Failure{Reason: ReasonInternal, Message: fmt.Sprint(rec)}
		}
	}()

	if g.provider == nil {
		result.Text = unavailableReply(req.Domain)
		return result
	}

	start := time.Now()
	text, err := g.complete(ctx, ai.CompletionRequest{
		Model:        g.config.Model,
		SystemPrompt: DomainPrompt(req.Domain),
		UserMessage:  req.Message,
		MaxTokens:    g.config.MaxTokens,
		Temperature:  g.config.Temperature,
	})
	if err != nil {
		var failure *Failure
		if !errors.As(err, &failure) {
			failure = newFailure(reasonFor(err), err)
		}
		g.logger.Error("upstream chat completion failed",
			"domain", req.Domain,
			"user_id", req.UserID,
			"reason", failure.Reason,
			"error", err.Error(),
		)
		result.Text = technicalDifficultiesReply(req.Domain)
		result.Failure = failure
		return result
	}

	g.logger.Debug("chat completion served",
		"domain", req.Domain,
		"user_id", req.UserID,
		"duration", time.Since(start).String(),
	)
	result.Text = strings.TrimSpace(text)
	result.AIPowered = true
	return result
}

// Health is a pure read of configuration; it never calls upstream.
func (g *Gateway) Health() HealthStatus {
	return HealthStatus{
		Status:           statusHealthy,
		Timestamp:        g.now(),
		AIAvailable:      g.AIAvailable(),
		APIKeyConfigured: g.config.APIKeyConfigured,
		Environment:      g.config.Environment,
		Version:          g.config.Version,
	}
}

// TestConnection issues one diagnostic completion to prove the upstream is
// reachable with the configured credential.
func (g *Gateway) TestConnection(ctx context.Context) TestResult {
	result := TestResult{
		AIAvailable:      g.AIAvailable(),
		APIKeyConfigured: g.config.APIKeyConfigured,
	}

	if g.provider == nil {
		result.Error = errNotConfigured.Error()
		result.Timestamp = g.now()
		return result
	}

	text, err := g.complete(ctx, ai.CompletionRequest{
		Model:       g.config.Model,
		UserMessage: g.config.TestPrompt,
		MaxTokens:   g.config.TestMaxTokens,
		Temperature: g.config.TestTemperature,
	})
	result.Timestamp = g.now()
	if err != nil {
		g.logger.Warn("upstream connection test failed", "error", err.Error())
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Response = text
	result.Model = g.config.Model
	return result
}

// complete waits for an upstream slot under ctx, then calls the provider.
func (g *Gateway) complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	if g.slots != nil {
		if err := g.slots.Acquire(ctx, 1); err != nil {
			return "", &Failure{
				Reason:  ReasonCapacity,
				Message: "no upstream capacity before request ended",
				Cause:   err,
			}
		}
		defer g.slots.Release(1)
	}
	return g.provider.Complete(ctx, req)
}
