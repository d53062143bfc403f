// File: internal/handlers/health_handler.go
package handlers

import (
	"net/http"

	"github.com/iyunix/go-mindmesh/internal/services/chat"
)

// HealthHandler serves the liveness snapshot and the upstream connection test.
type HealthHandler struct {
	ChatService chat.Service
}

func NewHealthHandler(cs chat.Service) *HealthHandler {
	return &HealthHandler{ChatService: cs}
}

// Health reports configuration flags only; it never calls upstream.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.ChatService.Health()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":             status.Status,
		"timestamp":          formatTimestamp(status.Timestamp),
		"ai_available":       status.AIAvailable,
		"api_key_configured": status.APIKeyConfigured,
		"environment":        status.Environment,
		"version":            status.Version,
	})
}

// TestAI exercises the upstream with one small completion.
func (h *HealthHandler) TestAI(w http.ResponseWriter, r *http.Request) {
	res := h.ChatService.TestConnection(r.Context())

	if res.Success {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":    statusSuccess,
			"response":  res.Response,
			"model":     res.Model,
			"timestamp": formatTimestamp(res.Timestamp),
		})
		return
	}

	body := map[string]interface{}{
		"status":    statusError,
		"error":     res.Error,
		"timestamp": formatTimestamp(res.Timestamp),
	}
	if !res.AIAvailable {
		body["ai_available"] = res.AIAvailable
		body["api_key_configured"] = res.APIKeyConfigured
	}
	writeJSON(w, http.StatusOK, body)
}
