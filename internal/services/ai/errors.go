// File: internal/services/ai/errors.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeRateLimit  ErrorType = "RATE_LIMIT"
	ErrTypeQuota      ErrorType = "QUOTA"
	ErrTypeAuth       ErrorType = "AUTH"
	ErrTypeTimeout    ErrorType = "TIMEOUT"
	ErrTypeCanceled   ErrorType = "CANCELED"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type AIError struct {
	Type      ErrorType
	Code      int
	Message   string
	Model     string
	Operation string
	Cause     error
}

func (e *AIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("AI %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AIError) Unwrap() error {
	return e.Cause
}

func NewConfigError(msg string) *AIError {
	return &AIError{Type: ErrTypeConfig, Message: msg, Operation: "config"}
}

// classify turns an error returned by the go-openai client into an AIError
// whose Type reflects the upstream failure mode.
func classify(operation, model string, err error) *AIError {
	aiErr := &AIError{Operation: operation, Model: model, Cause: err}

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		aiErr.Type = ErrTypeTimeout
		aiErr.Message = "upstream call timed out"
	case errors.Is(err, context.Canceled):
		aiErr.Type = ErrTypeCanceled
		aiErr.Message = "upstream call canceled"
	case errors.As(err, &apiErr):
		aiErr.Code = apiErr.HTTPStatusCode
		aiErr.Type = typeForStatus(apiErr.HTTPStatusCode)
		if fmt.Sprint(apiErr.Code) == "insufficient_quota" {
			aiErr.Type = ErrTypeQuota
		}
		aiErr.Message = apiErr.Message
	case errors.As(err, &reqErr):
		aiErr.Code = reqErr.HTTPStatusCode
		aiErr.Type = typeForStatus(reqErr.HTTPStatusCode)
		aiErr.Message = "upstream request failed"
	default:
		aiErr.Type = ErrTypeNetwork
		aiErr.Message = "upstream unreachable"
	}
	return aiErr
}

func typeForStatus(status int) ErrorType {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrTypeAuth
	case status == http.StatusTooManyRequests:
		return ErrTypeRateLimit
	case status == http.StatusBadRequest || status == http.StatusNotFound || status == http.StatusUnprocessableEntity:
		return ErrTypeValidation
	default:
		return ErrTypeProvider
	}
}
