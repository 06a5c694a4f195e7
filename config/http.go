package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/stayhub/stayhub-web/internal/util"
)

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the public base URL (e.g., "https://stay.example.com"). Used to build the
	// OAuth callback URL when OAUTH_REDIRECT_URL is relative.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request host.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// CookieSecure marks session and state cookies Secure.
	CookieSecure bool `env:"APP_COOKIE_SECURE" envDefault:"false"`

	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"    envDefault:"15s"`

	// AuthRateLimit is the sustained requests per second each client may make to /auth/*.
	AuthRateLimit float64 `env:"HTTP_AUTH_RATE_LIMIT" envDefault:"2"`
	AuthRateBurst int     `env:"HTTP_AUTH_RATE_BURST" envDefault:"10"`

	// MetricsAddr serves /metrics on a separate listener when set; otherwise /metrics
	// is mounted on the main router.
	MetricsAddr string `env:"METRICS_ADDR" envDefault:""`
}

// Sanitize applies guardrails to HTTP configuration values and returns warnings for
// anything it changed.
func (h *HTTPConfig) Sanitize() []string {
	var warnings []string

	h.BaseURL = strings.TrimRight(strings.TrimSpace(h.BaseURL), "/")
	h.CookieDomain = strings.TrimSpace(h.CookieDomain)
	if h.CookieDomain != "" && util.IsPublicSuffix(h.CookieDomain) {
		warnings = append(warnings, fmt.Sprintf(
			"APP_COOKIE_DOMAIN %q is a public suffix; falling back to host-only cookies", h.CookieDomain))
		h.CookieDomain = ""
	}

	if h.ReadHeaderTimeout <= 0 {
		h.ReadHeaderTimeout = 10 * time.Second
	}
	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = 15 * time.Second
	}
	if h.AuthRateLimit <= 0 {
		h.AuthRateLimit = 2
	}
	if h.AuthRateBurst < 1 {
		h.AuthRateBurst = 1
	}
	return warnings
}
