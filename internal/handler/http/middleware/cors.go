// Package middleware provides HTTP middleware for the companion daemon,
// currently the CORS policy that lets the browser extension's popup and
// content script talk to the loopback API.
package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// CORSConfig holds the CORS policy applied to cross-origin requests.
// The daemon listens on loopback, so the only expected cross-origin
// callers are extension pages (chrome-extension:// and moz-extension://
// origins). Everything else is rejected fail-closed.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins, typically
	// extension origins such as "chrome-extension://<extension-id>".
	AllowedOrigins []string

	// AllowExtensionOrigins permits any chrome-extension:// or
	// moz-extension:// origin regardless of the whitelist. Useful during
	// development when the unpacked extension ID changes between loads.
	AllowExtensionOrigins bool

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Logger receives CORS policy violations. Optional.
	Logger *slog.Logger
}

// IsAllowed reports whether the given origin may call the daemon.
func (c CORSConfig) IsAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if strings.EqualFold(origin, allowed) {
			return true
		}
	}
	if c.AllowExtensionOrigins {
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Scheme == "chrome-extension" || u.Scheme == "moz-extension"
	}
	return false
}

// CORS returns an HTTP middleware that validates the Origin header against
// the configured policy and sets CORS response headers for allowed origins.
//
// Behavior:
//   - If Origin header is empty, skip CORS processing (same-origin request)
//   - If Origin is not allowed, log a warning and continue without CORS headers
//   - If Origin is allowed and request is OPTIONS (preflight), answer with
//     204 No Content and the preflight headers without calling the next handler
//   - Otherwise set Access-Control-Allow-Origin and pass the request through
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
					)
				}
				// Browser blocks the response when the headers are absent.
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
