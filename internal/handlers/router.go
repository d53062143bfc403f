// File: internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iyunix/go-mindmesh/internal/middleware"
	"github.com/iyunix/go-mindmesh/internal/services/chat"
)

// NewRouter wires every route and wraps the router in the middleware chain:
// CORS, request id, request logging, panic recovery.
func NewRouter(cs chat.Service, logger Logger, allowedOrigins []string) http.Handler {
	chatHandler := NewChatHandler(cs, logger)
	healthHandler := NewHealthHandler(cs)
	pageHandler := NewPageHandler(cs.Health().Version)

	r := mux.NewRouter()
	r.HandleFunc("/", pageHandler.ShowIndex).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/chat", chatHandler.HandleChat).Methods(http.MethodPost)
	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/test-ai", healthHandler.TestAI).Methods(http.MethodGet)
	r.HandleFunc("/domains", pageHandler.ShowDomains).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(pageHandler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(pageHandler.MethodNotAllowed)

	var h http.Handler = r
	h = middleware.RecoverPanic(logger)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.CORS(allowedOrigins)(h)
	return h
}
