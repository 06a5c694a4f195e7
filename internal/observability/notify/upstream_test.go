package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	alerts []Alert
}

func (r *recordingSink) Send(_ context.Context, a Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, a)
	return nil
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.alerts)
}

var upstreamDenial = domainauth.DenyUpstream(domainauth.ReasonUnauthenticated, context.DeadlineExceeded)

func TestUpstreamWatch_AlertsAtThresholdOncePerCooldown(t *testing.T) {
	sink := &recordingSink{}
	w := NewUpstreamWatch(sink, UpstreamWatchConfig{Threshold: 3, Cooldown: time.Hour, Source: "test"})

	w.ObserveDecision("admin", upstreamDenial, 0)
	w.ObserveDecision("admin", upstreamDenial, 0)
	w.Wait()
	assert.Equal(t, 0, sink.count())

	for range 5 {
		w.ObserveDecision("admin", upstreamDenial, 0)
	}
	w.Wait()
	require.Equal(t, 1, sink.count())

	a := sink.alerts[0]
	assert.Equal(t, UpstreamAlertKey, a.Key)
	assert.Equal(t, "admin", a.Details["policy"])
	assert.Equal(t, "3", a.Details["streak"])
	assert.Equal(t, "timeout", a.Details["error_class"])
	assert.Equal(t, "test", a.Source)
}

func TestUpstreamWatch_OrdinaryDecisionsResetStreak(t *testing.T) {
	sink := &recordingSink{}
	w := NewUpstreamWatch(sink, UpstreamWatchConfig{Threshold: 2})

	w.ObserveDecision("host", upstreamDenial, 0)
	w.ObserveDecision("host", domainauth.Deny(domainauth.ReasonForbidden, nil), 0)
	w.ObserveDecision("host", upstreamDenial, 0)
	w.ObserveDecision("host", domainauth.Allow(domainauth.Principal{}), 0)
	w.Wait()
	assert.Equal(t, 0, sink.count())
}

func TestMulti_JoinsErrors(t *testing.T) {
	ok := &recordingSink{}
	failing := SinkFunc(func(context.Context, Alert) error { return errors.New("down") })
	err := Multi{ok, nil, failing}.Send(context.Background(), Alert{Summary: "x"})
	require.Error(t, err)
	assert.Equal(t, 1, ok.count())
}
