package notify

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	obserrors "github.com/stayhub/stayhub-web/internal/observability/errors"
	"golang.org/x/time/rate"
)

// UpstreamAlertKey is the dedup key for authorization upstream alerts.
const UpstreamAlertKey = "gate-upstream-failure"

// UpstreamWatchConfig tunes UpstreamWatch.
type UpstreamWatchConfig struct {
	// Threshold is the number of consecutive upstream denials that raises an alert.
	Threshold int
	// Cooldown is the minimum gap between alerts.
	Cooldown time.Duration
	// SendTimeout bounds one delivery.
	SendTimeout time.Duration
	Source      string
	Logger      *slog.Logger
}

// UpstreamWatch observes gate decisions and alerts when the identity provider or role
// store keeps failing. Any non-upstream decision resets the streak.
type UpstreamWatch struct {
	sink      Sink
	cfg       UpstreamWatchConfig
	logger    *slog.Logger
	sometimes *rate.Sometimes

	mu     sync.Mutex
	streak int
	wg     sync.WaitGroup
}

// NewUpstreamWatch builds a watcher. Defaults: threshold 20, cooldown 15m, timeout 10s.
func NewUpstreamWatch(sink Sink, cfg UpstreamWatchConfig) *UpstreamWatch {
	if cfg.Threshold <= 0 {
		cfg.Threshold = 20
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 15 * time.Minute
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UpstreamWatch{
		sink:      sink,
		cfg:       cfg,
		logger:    logger,
		sometimes: &rate.Sometimes{Interval: cfg.Cooldown},
	}
}

// ObserveDecision implements service.GateObserver. Delivery is asynchronous.
func (w *UpstreamWatch) ObserveDecision(policy string, d domainauth.Decision, _ time.Duration) {
	if d.Allowed || d.Reason != domainauth.ReasonUpstreamError {
		w.mu.Lock()
		w.streak = 0
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	w.streak++
	streak := w.streak
	w.mu.Unlock()
	if streak < w.cfg.Threshold {
		return
	}

	w.sometimes.Do(func() {
		alert := Alert{
			Key:      UpstreamAlertKey,
			Summary:  "Authorization dependencies are failing; requests are being denied",
			Severity: SeverityCritical,
			Source:   w.cfg.Source,
			Details: map[string]string{
				"policy":      policy,
				"streak":      strconv.Itoa(streak),
				"error_class": obserrors.Classify(d.Cause),
			},
			OccurredAt: time.Now(),
		}
		w.wg.Add(1)
		go w.deliver(alert)
	})
}

func (w *UpstreamWatch) deliver(a Alert) {
	defer w.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.SendTimeout)
	defer cancel()
	if err := w.sink.Send(ctx, a); err != nil {
		w.logger.WarnContext(ctx, "upstream alert delivery failed", "error", err)
	}
}

// Wait blocks until in-flight deliveries finish.
func (w *UpstreamWatch) Wait() { w.wg.Wait() }
