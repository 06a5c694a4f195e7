package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/stayhub/stayhub-web/config"
	"github.com/stayhub/stayhub-web/internal/observability/tracing"
)

// SetupTracing installs the tracer provider described by cfg.
func SetupTracing(ctx context.Context, cfg config.TracingConfig, logger *slog.Logger) (tracing.ShutdownFunc, error) {
	shutdownFn, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.IsEnabled(),
		ServiceName:  cfg.ServiceName,
		Environment:  cfg.Environment,
		Endpoint:     cfg.Endpoint,
		Insecure:     cfg.Insecure,
		SamplingRate: cfg.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}
	if cfg.IsEnabled() {
		logger.Info("tracing enabled", "endpoint", cfg.Endpoint, "sampling_rate", cfg.SamplingRate)
	}
	return shutdownFn, nil
}

// Run serves the API, plus the metrics listener when METRICS_ADDR is set, until ctx is
// cancelled or SIGINT/SIGTERM arrives. Servers are then drained within the configured
// shutdown timeout and pending alerts are flushed.
func Run(ctx context.Context, cfg *HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpCfg := cfg.Config.HTTP

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	servers := map[string]*http.Server{
		"api": newServer(httpCfg.Addr, BuildHTTPHandler(cfg), httpCfg.ReadHeaderTimeout),
	}
	if metricsCfg := cfg.Config.Observability.Metrics; metricsCfg.Enabled && httpCfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("GET "+metricsCfg.Path, metricsHandler(cfg.Services))
		servers["metrics"] = newServer(httpCfg.MetricsAddr, mux, httpCfg.ReadHeaderTimeout)
	}

	g, gctx := errgroup.WithContext(ctx)
	for name, srv := range servers {
		g.Go(func() error {
			if err := serve(logger, name, srv); err != nil {
				return fmt.Errorf("%s server: %w", name, err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			return shutdown(ctx, logger, name, srv, httpCfg.ShutdownTimeout)
		})
	}

	err := g.Wait()
	if w := cfg.Services.Observability.Upstream; w != nil {
		w.Wait()
	}
	return err
}
