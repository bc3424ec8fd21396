package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"startupbridge/internal/config"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// ===============================
// CORS CONFIGURATION
// ===============================

// CORSConfig holds CORS configuration
type CORSConfig struct {
	// Origins
	AllowedOrigins        []string `json:"allowed_origins"`
	AllowedOriginPatterns []string `json:"allowed_origin_patterns"`
	AllowCredentials      bool     `json:"allow_credentials"`

	// Methods and Headers
	AllowedMethods []string `json:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers"`
	ExposedHeaders []string `json:"exposed_headers"`

	MaxAge            time.Duration `json:"max_age"`
	LogCORSViolations bool          `json:"log_cors_violations"`
}

// DefaultCORSConfig returns the CORS configuration used by the API
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins: []string{},
		AllowedMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept", "Accept-Language", "Content-Language", "Content-Type",
			"Authorization", "X-Request-ID", "X-Correlation-ID",
		},
		ExposedHeaders:    []string{"X-Request-ID", "X-Correlation-ID"},
		MaxAge:            12 * time.Hour,
		LogCORSViolations: true,
	}
}

// CORSConfigFromServer splits configured origins into exact origins and "*." patterns
func CORSConfigFromServer(server *config.ServerConfig) *CORSConfig {
	cfg := DefaultCORSConfig()
	if server == nil {
		return cfg
	}
	for _, origin := range server.AllowedOrigins {
		if strings.HasPrefix(origin, "*.") {
			cfg.AllowedOriginPatterns = append(cfg.AllowedOriginPatterns, origin)
			continue
		}
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
	}
	return cfg
}

// CORS creates the cross-origin middleware
func CORS(config *CORSConfig) func(http.Handler) http.Handler {
	if config == nil {
		config = DefaultCORSConfig()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !isOriginAllowed(origin, config) {
				if config.LogCORSViolations {
					GetRequestLogger(r.Context()).Warn("CORS violation: origin not allowed",
						zap.String("origin", origin),
					)
				}
				// No CORS headers; the browser rejects the response
				next.ServeHTTP(w, r)
				return
			}

			applyCORSHeaders(w, origin, config)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				handlePreflightRequest(w, r, config)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ===============================
// CORS HELPERS
// ===============================

func isOriginAllowed(origin string, config *CORSConfig) bool {
	if slices.Contains(config.AllowedOrigins, "*") || slices.Contains(config.AllowedOrigins, origin) {
		return true
	}
	for _, pattern := range config.AllowedOriginPatterns {
		if matchOriginPattern(origin, pattern) {
			return true
		}
	}
	return false
}

// matchOriginPattern matches "*.example.com" against any scheme and subdomain
func matchOriginPattern(origin, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if strings.HasPrefix(pattern, "*.") {
		domain := pattern[2:]
		host := origin
		if _, rest, ok := strings.Cut(origin, "://"); ok {
			host = rest
		}
		return strings.HasSuffix(host, "."+domain) || host == domain
	}
	return origin == pattern
}

func applyCORSHeaders(w http.ResponseWriter, origin string, config *CORSConfig) {
	// Credentials cannot be combined with a wildcard origin
	if slices.Contains(config.AllowedOrigins, "*") && !config.AllowCredentials {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	} else {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
	}

	if config.AllowCredentials {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	if len(config.ExposedHeaders) > 0 {
		w.Header().Set("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
	}
}

func handlePreflightRequest(w http.ResponseWriter, r *http.Request, config *CORSConfig) {
	requestMethod := r.Header.Get("Access-Control-Request-Method")
	requestHeaders := r.Header.Get("Access-Control-Request-Headers")
	logger := GetRequestLogger(r.Context())

	if !isMethodAllowed(requestMethod, config.AllowedMethods) {
		logger.Warn("CORS preflight: method not allowed", zap.String("method", requestMethod))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if requestHeaders != "" && !areHeadersAllowed(requestHeaders, config.AllowedHeaders) {
		logger.Warn("CORS preflight: headers not allowed", zap.String("headers", requestHeaders))
		w.WriteHeader(http.StatusForbidden)
		return
	}

	w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
	w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
	w.Header().Set("Access-Control-Max-Age", fmt.Sprintf("%.0f", config.MaxAge.Seconds()))
	w.WriteHeader(http.StatusNoContent)
}

func isMethodAllowed(method string, allowedMethods []string) bool {
	for _, allowed := range allowedMethods {
		if strings.EqualFold(method, allowed) {
			return true
		}
	}
	return false
}

func areHeadersAllowed(requestHeaders string, allowedHeaders []string) bool {
	for _, header := range strings.Split(requestHeaders, ",") {
		if !isHeaderAllowed(strings.TrimSpace(header), allowedHeaders) {
			return false
		}
	}
	return true
}

func isHeaderAllowed(header string, allowedHeaders []string) bool {
	for _, allowed := range allowedHeaders {
		if strings.EqualFold(header, allowed) {
			return true
		}
	}
	return false
}

// ===============================
// SECURITY HEADERS
// ===============================

// SecurityHeaders sets the static hardening headers on every response
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
