// File: internal/services/chat/interface.go
package chat

import (
	"context"

	"github.com/iyunix/go-mindmesh/internal/domain"
)

// Service is what the HTTP layer needs from the gateway.
type Service interface {
	HandleChat(ctx context.Context, req domain.ChatRequest) ChatResult
	Health() HealthStatus
	TestConnection(ctx context.Context) TestResult
}

var _ Service = (*Gateway)(nil)
