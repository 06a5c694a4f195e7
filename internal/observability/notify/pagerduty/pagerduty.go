// Package pagerduty triggers incidents through the PagerDuty Events API v2.
package pagerduty

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stayhub/stayhub-web/internal/observability/notify"
)

// APIEndpoint is the Events API v2 ingest URL.
const APIEndpoint = "https://events.pagerduty.com/v2/enqueue"

// Config captures runtime configuration.
type Config struct {
	RoutingKey string
	Source     string
	Component  string
	Endpoint   string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

// Client triggers PagerDuty events.
type Client struct {
	poster     notify.Poster
	routingKey string
	source     string
	component  string
	endpoint   string
}

var _ notify.Sink = (*Client)(nil)

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.RoutingKey)
	if key == "" {
		return nil, errors.New("pagerduty routing key is required")
	}
	return &Client{
		poster:     notify.NewPoster("pagerduty", cfg.Client, cfg.Timeout, cfg.RetryLimit),
		routingKey: key,
		source:     orDefault(cfg.Source, "stayhub"),
		component:  orDefault(cfg.Component, "stayhub-web"),
		endpoint:   orDefault(cfg.Endpoint, APIEndpoint),
	}, nil
}

// Send triggers (or re-triggers, by dedup key) an incident for a.
func (c *Client) Send(ctx context.Context, a notify.Alert) error {
	return c.poster.PostJSON(ctx, c.endpoint, c.event(a))
}

func (c *Client) event(a notify.Alert) map[string]any {
	at := a.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}
	details := make(map[string]any, len(a.Details))
	for k, v := range a.Details {
		details[k] = v
	}
	return map[string]any{
		"routing_key":  c.routingKey,
		"event_action": "trigger",
		"dedup_key":    orDefault(a.Key, a.Summary),
		"payload": map[string]any{
			"summary":        a.Summary,
			"severity":       orDefault(strings.ToLower(a.Severity), notify.SeverityCritical),
			"source":         orDefault(a.Source, c.source),
			"component":      c.component,
			"timestamp":      at.UTC().Format(time.RFC3339),
			"custom_details": details,
		},
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}
