// File: internal/services/chat/errors.go
package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/iyunix/go-mindmesh/internal/services/ai"
)

// FailureReason classifies why a chat fell back instead of reaching the model.
type FailureReason string

const (
	ReasonUpstreamUnavailable FailureReason = "upstream_unavailable"
	ReasonUpstreamRateLimited FailureReason = "upstream_rate_limited"
	ReasonUpstreamAuth        FailureReason = "upstream_auth"
	ReasonUpstreamBadResponse FailureReason = "upstream_bad_response"
	ReasonUpstreamTimeout     FailureReason = "upstream_timeout"
	ReasonClientCanceled      FailureReason = "client_canceled"
	ReasonCapacity            FailureReason = "capacity"
	ReasonInternal            FailureReason = "internal"
)

// Failure is the structured reason attached to a degraded ChatResult.
type Failure struct {
	Reason  FailureReason
	Message string
	Cause   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("chat %s: %s", f.Reason, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

func newFailure(reason FailureReason, cause error) *Failure {
	return &Failure{Reason: reason, Message: cause.Error(), Cause: cause}
}

// reasonFor maps provider errors onto the gateway's failure reasons.
func reasonFor(err error) FailureReason {
	if errors.Is(err, context.Canceled) {
		return ReasonClientCanceled
	}
	var aiErr *ai.AIError
	if !errors.As(err, &aiErr) {
		return ReasonUpstreamUnavailable
	}
	switch aiErr.Type {
	case ai.ErrTypeAuth, ai.ErrTypeConfig:
		return ReasonUpstreamAuth
	case ai.ErrTypeRateLimit, ai.ErrTypeQuota:
		return ReasonUpstreamRateLimited
	case ai.ErrTypeTimeout:
		return ReasonUpstreamTimeout
	case ai.ErrTypeCanceled:
		return ReasonClientCanceled
	case ai.ErrTypeValidation:
		return ReasonUpstreamBadResponse
	case ai.ErrTypeProvider:
		if aiErr.Code >= 500 {
			return ReasonUpstreamUnavailable
		}
		return ReasonUpstreamBadResponse
	default:
		return ReasonUpstreamUnavailable
	}
}
