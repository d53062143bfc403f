// File: internal/handlers/page_handlers.go
package handlers

import (
	"net/http"
	"time"

	"github.com/iyunix/go-mindmesh/internal/domain"
)

// PageHandler serves the discovery payloads.
type PageHandler struct {
	version string
	now     func() time.Time
}

func NewPageHandler(version string) *PageHandler {
	return &PageHandler{version: version, now: time.Now}
}

// ShowIndex lists the available endpoints.
func (h *PageHandler) ShowIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Mindmesh API is running",
		"version": h.version,
		"endpoints": map[string]string{
			"chat":    "/chat",
			"health":  "/health",
			"test_ai": "/test-ai",
			"domains": "/domains",
		},
		"timestamp": formatTimestamp(h.now()),
	})
}

// ShowDomains lists the supported domains for domain pickers.
func (h *PageHandler) ShowDomains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"domains": domain.AllDomainInfo(),
	})
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, "Not Found", http.StatusNotFound)
}

func (h *PageHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
