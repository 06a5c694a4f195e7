package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: identity provider, role store, bypass secret, credential names
//   - database.go: Postgres and Redis
//   - http.go: HTTP server and cookies
//   - observability.go: metrics, tracing and operator alerts
type AppConfig struct {
	// IsDev relaxes a few production checks (mock auth allowed, verbose logging).
	// Set DEV=true or APP_ENV=development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Authentication and authorization configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Observability configuration
	Observability ObservabilityConfig

	warnings []string
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
// Anything it had to change is reported by Warnings.
func (c *AppConfig) Sanitize() {
	c.warnings = c.warnings[:0]
	c.warnings = append(c.warnings, c.Auth.Sanitize()...)
	c.warnings = append(c.warnings, c.HTTP.Sanitize()...)
	c.Postgres.Sanitize()
	c.Observability.Sanitize()

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.detectDevMode()
}

// Warnings returns the adjustments made by the last Sanitize call.
func (c *AppConfig) Warnings() []string {
	return c.warnings
}

// detectDevMode checks APP_ENV as a fallback for DEV.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}
