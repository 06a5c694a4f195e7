// Package notify delivers operational alerts to on-call channels.
package notify

import (
	"context"
	"errors"
	"time"
)

// Severity values understood by the sinks.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Alert is one operational alert. Key groups repeats of the same condition.
type Alert struct {
	Key        string
	Summary    string
	Severity   string
	Source     string
	Details    map[string]string
	OccurredAt time.Time
}

// Sink delivers alerts.
type Sink interface {
	Send(ctx context.Context, a Alert) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, a Alert) error

// Send implements Sink.
func (f SinkFunc) Send(ctx context.Context, a Alert) error {
	if f == nil {
		return nil
	}
	return f(ctx, a)
}

// Multi sends to every sink and joins their errors.
type Multi []Sink

// Send implements Sink.
func (m Multi) Send(ctx context.Context, a Alert) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Send(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
