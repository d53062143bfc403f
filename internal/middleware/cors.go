// File: internal/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"
)

// DefaultAllowedOrigins is the fixed browser allow-list. A "*" may stand in
// for exactly one host label.
var DefaultAllowedOrigins = []string{
	"https://kimbleai.com",
	"https://www.kimbleai.com",
	"https://*.up.railway.app",
	"http://localhost:3000",
}

const corsAllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS, HEAD"

// CORS allows credentialed cross-origin requests from allowedOrigins. It has
// to wrap the router rather than be registered on it so that preflight
// requests are answered before route method matching.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	patterns := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			patterns = append(patterns, strings.ToLower(o))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				w.Header().Add("Vary", "Origin")
			}
			allowed := origin != "" && originAllowed(patterns, origin)

			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
					if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
						w.Header().Set("Access-Control-Allow-Headers", reqHeaders)
					}
					w.Header().Set("Access-Control-Max-Age", "86400")
				}
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(patterns []string, origin string) bool {
	origin = strings.ToLower(origin)
	for _, p := range patterns {
		if p == origin || wildcardMatch(p, origin) {
			return true
		}
	}
	return false
}

// wildcardMatch matches "scheme://*.rest" against origins with a single,
// non-empty host label in place of the "*".
func wildcardMatch(pattern, origin string) bool {
	prefix, suffix, ok := strings.Cut(pattern, "*")
	if !ok || !strings.HasPrefix(origin, prefix) || !strings.HasSuffix(origin, suffix) {
		return false
	}
	if len(origin) < len(prefix)+len(suffix) {
		return false
	}
	label := origin[len(prefix) : len(origin)-len(suffix)]
	return label != "" && !strings.ContainsAny(label, "./:")
}
