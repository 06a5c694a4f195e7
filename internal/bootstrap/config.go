package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/stayhub/stayhub-web/config"
)

var logLevel = new(slog.LevelVar) //nolint:gochecknoglobals // shared by the default logger

// InitLogger initializes the structured logger at info level. SetLogLevel adjusts it
// once configuration is loaded.
func InitLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// SetLogLevel applies a configured level name. Unknown names keep the current level.
func SetLogLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info", "":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		return false
	}
	return true
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// ApplyConfig sets the log level and reports every adjustment Sanitize made.
func ApplyConfig(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	if !SetLogLevel(cfg.LogLevel) {
		logger.WarnContext(ctx, "unknown LOG_LEVEL, keeping info", "level", cfg.LogLevel)
	}
	for _, w := range cfg.Warnings() {
		logger.WarnContext(ctx, "configuration adjusted", "detail", w)
	}
}

// ValidateConfig rejects combinations the server cannot start with.
func ValidateConfig(cfg *config.AppConfig) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	auth := cfg.Auth
	if auth.Mode == config.AuthModeMock && !cfg.IsDev {
		return errors.New("AUTH_MODE=mock is only allowed with DEV=true or APP_ENV=development")
	}
	if auth.Mode == config.AuthModeOAuth {
		if auth.OAuth.ClientID == "" || auth.OAuth.ClientSecret == "" || auth.OAuth.IssuerURL == "" {
			return errors.New("AUTH_MODE=oauth requires OAUTH_CLIENT_ID, OAUTH_CLIENT_SECRET and OAUTH_ISSUER_URL")
		}
		switch auth.Identity.Resolver {
		case config.IdentityResolverHosted:
			if auth.Identity.BaseURL == "" || auth.Identity.AnonKey == "" {
				return errors.New("IDENTITY_RESOLVER=hosted requires IDENTITY_BASE_URL and IDENTITY_ANON_KEY")
			}
		case config.IdentityResolverJWKS:
			if auth.Identity.JWKSURL == "" {
				return errors.New("IDENTITY_RESOLVER=jwks requires IDENTITY_JWKS_URL")
			}
		}
	}
	if auth.Roles.Kind == config.RoleStoreREST && (auth.Roles.RESTURL == "" || auth.Roles.ServiceKey == "") {
		return errors.New("ROLE_STORE=rest requires ROLE_STORE_REST_URL (or IDENTITY_BASE_URL) and ROLE_STORE_SERVICE_KEY")
	}
	return nil
}
