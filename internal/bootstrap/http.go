package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/stayhub/stayhub-web/config"
	httpx "github.com/stayhub/stayhub-web/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// BuildHTTPHandler assembles the router and middleware chain. The metrics endpoint is
// mounted on the main router only when no dedicated METRICS_ADDR is configured.
func BuildHTTPHandler(cfg *HTTPServerConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	svc := cfg.Services

	guard := httpx.NewGuard(svc.Gate, httpx.CredentialSource{
		Header: appCfg.Auth.Credentials.HeaderName,
		Cookie: appCfg.Auth.Credentials.CookieName,
	})

	rs := httpx.RouterServices{
		Guard:    guard,
		Policies: svc.Policies,
		Public: &httpx.PublicHandlers{
			Accommodations: svc.Accommodations,
			Reviews:        svc.Reviews,
			Notices:        svc.Notices,
			Influencers:    svc.Influencers,
			Logger:         logger,
		},
		Guest: &httpx.GuestHandlers{
			Reservations: svc.Reservations,
			Reviews:      svc.Reviews,
			Logger:       logger,
		},
		Host: &httpx.HostHandlers{
			Accommodations: svc.Accommodations,
			Reservations:   svc.Reservations,
			Logger:         logger,
		},
		Influencer: &httpx.InfluencerHandlers{
			Influencers: svc.Influencers,
			Logger:      logger,
		},
		Admin: &httpx.AdminHandlers{
			Notices:        svc.Notices,
			Accommodations: svc.Accommodations,
			Roles:          svc.RoleAdmin,
			Influencers:    svc.Influencers,
			Logger:         logger,
		},
		Summary: &httpx.SummaryHandler{Portal: svc.Portal, Logger: logger},
		AuthLimiter: httpx.NewRateLimiter(httpx.RateLimitConfig{
			Rate:  rate.Limit(appCfg.HTTP.AuthRateLimit),
			Burst: appCfg.HTTP.AuthRateBurst,
		}),
		HealthChecks: map[string]httpx.HealthChecker{"postgres": dbHealth{db: svc.DB}},
	}
	if cache, ok := svc.Repos.Cache.(httpx.HealthChecker); ok {
		rs.HealthChecks["redis"] = cache
	}

	if svc.Auth.Login != nil {
		rs.Auth = &httpx.AuthHandlers{
			Svc:    svc.Auth.Login,
			Guard:  guard,
			Policy: svc.Policies.Authenticated,
			Cookies: httpx.CookieSettings{
				Domain:  appCfg.HTTP.CookieDomain,
				Session: appCfg.Auth.Credentials.CookieName,
				State:   appCfg.Auth.Credentials.StateCookie,
				Secure:  appCfg.HTTP.CookieSecure,
			},
			CallbackURL: callbackURL(appCfg),
			Logger:      logger,
		}
	}

	metricsCfg := appCfg.Observability.Metrics
	if metricsCfg.Enabled && appCfg.HTTP.MetricsAddr == "" {
		rs.MetricsHandler = metricsHandler(svc)
		rs.MetricsPath = metricsCfg.Path
	}

	mw := httpx.MiddlewareConfig{
		Logger:      logger,
		ServiceName: appCfg.Observability.Tracing.ServiceName,
		Tracing:     appCfg.Observability.Tracing.IsEnabled(),
	}
	if metricsCfg.Enabled {
		mw.Recorder = svc.Observability.HTTPMetrics
	}
	return httpx.Handler(httpx.NewRouter(rs), mw)
}

func metricsHandler(svc *ServiceContainer) http.Handler {
	return promhttp.HandlerFor(svc.Observability.Registry, promhttp.HandlerOpts{})
}

// callbackURL resolves the OAuth redirect URL against the public base URL.
func callbackURL(cfg *config.AppConfig) string {
	redirect := strings.TrimSpace(cfg.Auth.OAuth.RedirectURL)
	switch {
	case redirect == "":
		return cfg.HTTP.BaseURL + "/auth/callback"
	case strings.HasPrefix(redirect, "/"):
		return cfg.HTTP.BaseURL + redirect
	default:
		return redirect
	}
}

func newServer(addr string, handler http.Handler, readHeaderTimeout time.Duration) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// serve runs srv until it is shut down. A graceful close is not an error.
func serve(logger *slog.Logger, name string, srv *http.Server) error {
	logger.Info("starting HTTP server", "server", name, "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// shutdown drains srv within timeout.
func shutdown(ctx context.Context, logger *slog.Logger, name string, srv *http.Server, timeout time.Duration) error {
	logger.Info("shutting down HTTP server", "server", name)
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("HTTP server stopped", "server", name)
	return nil
}
