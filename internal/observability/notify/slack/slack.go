// Package slack posts alerts to a Slack incoming webhook.
package slack

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/stayhub/stayhub-web/internal/observability/notify"
)

// Config captures the webhook settings.
type Config struct {
	WebhookURL string
	Channel    string
	Username   string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

// Client delivers alerts to Slack.
type Client struct {
	poster     notify.Poster
	webhookURL string
	channel    string
	username   string
}

var _ notify.Sink = (*Client)(nil)

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	webhook := strings.TrimSpace(cfg.WebhookURL)
	if webhook == "" {
		return nil, errors.New("slack webhook url is required")
	}
	username := strings.TrimSpace(cfg.Username)
	if username == "" {
		username = "stayhub"
	}
	return &Client{
		poster:     notify.NewPoster("slack webhook", cfg.Client, cfg.Timeout, cfg.RetryLimit),
		webhookURL: webhook,
		channel:    strings.TrimSpace(cfg.Channel),
		username:   username,
	}, nil
}

// Send posts a formatted message.
func (c *Client) Send(ctx context.Context, a notify.Alert) error {
	msg := map[string]any{
		"text":     Format(a),
		"username": c.username,
	}
	if c.channel != "" {
		msg["channel"] = c.channel
	}
	return c.poster.PostJSON(ctx, c.webhookURL, msg)
}

// Format renders the alert as Slack mrkdwn with details sorted by key.
func Format(a notify.Alert) string {
	var b strings.Builder
	severity := a.Severity
	if severity == "" {
		severity = notify.SeverityCritical
	}
	b.WriteString("*[" + strings.ToUpper(severity) + "]* " + escape(a.Summary) + "\n")
	if a.Source != "" {
		b.WriteString("• Source: " + escape(a.Source) + "\n")
	}
	keys := make([]string, 0, len(a.Details))
	for k := range a.Details {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if v := strings.TrimSpace(a.Details[k]); v != "" {
			b.WriteString("• " + escape(k) + ": " + escape(v) + "\n")
		}
	}
	at := a.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}
	b.WriteString("• Time: " + at.UTC().Format(time.RFC3339))
	return b.String()
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
