// File: internal/handlers/chat_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iyunix/go-mindmesh/internal/domain"
	"github.com/iyunix/go-mindmesh/internal/middleware"
	"github.com/iyunix/go-mindmesh/internal/services/chat"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	maxChatBodyBytes = 1 << 20
)

// ChatResponse is the /chat wire envelope.
type ChatResponse struct {
	Response  string `json:"response"`
	Domain    string `json:"domain"`
	Timestamp string `json:"timestamp"`
	AIPowered bool   `json:"ai_powered"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type ChatHandler struct {
	ChatService chat.Service
	Logger      Logger
	now         func() time.Time
}

func NewChatHandler(cs chat.Service, logger Logger) *ChatHandler {
	return &ChatHandler{
		ChatService: cs,
		Logger:      logger,
		now:         time.Now,
	}
}

// chatRequestBody distinguishes absent or null fields from empty strings.
type chatRequestBody struct {
	Message *string `json:"message"`
	Domain  *string `json:"domain"`
	UserID  *string `json:"user_id"`
}

// decodeChatRequest requires a single JSON object carrying all three string fields.
func decodeChatRequest(r io.Reader) (domain.ChatRequest, error) {
	var req domain.ChatRequest

	raw, err := io.ReadAll(r)
	if err != nil {
		return req, err
	}

	var body chatRequestBody
	err = json.Unmarshal(raw, &body)
	if body.Domain != nil {
		req.Domain = *body.Domain
	}
	if err != nil {
		return req, err
	}

	switch {
	case body.Message == nil:
		return req, fmt.Errorf("message is required")
	case body.Domain == nil:
		return req, fmt.Errorf("domain is required")
	case body.UserID == nil:
		return req, fmt.Errorf("user_id is required")
	}
	req.Message = *body.Message
	req.UserID = *body.UserID
	return req, nil
}

// HandleChat always answers 200; failures are reported inside the envelope.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	req, err := decodeChatRequest(http.MaxBytesReader(w, r.Body, maxChatBodyBytes))
	if err != nil {
		h.Logger.Warn("chat request rejected",
			"error", err.Error(),
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		writeJSON(w, http.StatusOK, h.failureEnvelope(req.Domain, fmt.Errorf("invalid request body: %w", err)))
		return
	}

	result, err := h.serve(r.Context(), req)
	if err != nil {
		h.Logger.Error("chat endpoint error",
			"domain", req.Domain,
			"error", err.Error(),
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		writeJSON(w, http.StatusOK, h.failureEnvelope(req.Domain, err))
		return
	}

	writeJSON(w, http.StatusOK, toChatResponse(result))
}

// serve shields the envelope from anything the service lets escape.
func (h *ChatHandler) serve(ctx context.Context, req domain.ChatRequest) (result chat.ChatResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	return h.ChatService.HandleChat(ctx, req), nil
}

func (h *ChatHandler) failureEnvelope(rawDomain string, err error) ChatResponse {
	return ChatResponse{
		Response:  chat.SystemUnavailableReply(rawDomain),
		Domain:    rawDomain,
		Timestamp: formatTimestamp(h.now()),
		AIPowered: false,
		Status:    statusError,
		Error:     err.Error(),
	}
}

func toChatResponse(res chat.ChatResult) ChatResponse {
	out := ChatResponse{
		Response:  res.Text,
		Domain:    res.Domain,
		Timestamp: formatTimestamp(res.Timestamp),
		AIPowered: res.AIPowered,
		Status:    statusSuccess,
	}
	if !res.OK() {
		out.Status = statusError
		out.Error = res.Failure.Message
	}
	return out
}
