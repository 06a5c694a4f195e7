package config

import (
	"strings"
	"time"
)

const defaultObservabilityName = "stayhub"

// ObservabilityConfig groups configuration that controls metrics, tracing, and alert fan-out.
type ObservabilityConfig struct {
	Metrics       ObservabilityMetricsConfig
	Tracing       TracingConfig
	Notifications ObservabilityNotificationsConfig
}

// Sanitize applies guardrails to observability sub-configs.
func (c *ObservabilityConfig) Sanitize() {
	c.Metrics.Sanitize()
	c.Tracing.Sanitize()
	c.Notifications.Sanitize()
}

// ObservabilityMetricsConfig controls the Prometheus registry and /metrics endpoint.
type ObservabilityMetricsConfig struct {
	Enabled bool   `env:"OBSERVABILITY_METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"OBSERVABILITY_METRICS_PATH"    envDefault:"/metrics"`
}

// Sanitize normalises the metrics path.
func (c *ObservabilityMetricsConfig) Sanitize() {
	c.Path = strings.TrimSpace(c.Path)
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if !strings.HasPrefix(c.Path, "/") {
		c.Path = "/" + c.Path
	}
}

// TracingConfig controls the OTLP trace exporter. Tracing is on only when an endpoint is set.
type TracingConfig struct {
	Endpoint     string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure     bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	ServiceName  string  `env:"OTEL_SERVICE_NAME"           envDefault:"stayhub"`
	Environment  string  `env:"OTEL_ENVIRONMENT"            envDefault:"development"`
	SamplingRate float64 `env:"OTEL_SAMPLING_RATE"          envDefault:"1"`
}

// Sanitize trims the endpoint (dropping any scheme) and clamps the sampling rate.
func (c *TracingConfig) Sanitize() {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	c.Endpoint = strings.TrimPrefix(c.Endpoint, "https://")
	if strings.HasPrefix(c.Endpoint, "http://") {
		c.Endpoint = strings.TrimPrefix(c.Endpoint, "http://")
		c.Insecure = true
	}
	if c.ServiceName = strings.TrimSpace(c.ServiceName); c.ServiceName == "" {
		c.ServiceName = defaultObservabilityName
	}
	if c.SamplingRate < 0 {
		c.SamplingRate = 0
	}
	if c.SamplingRate > 1 {
		c.SamplingRate = 1
	}
}

// IsEnabled reports whether spans are exported.
func (c *TracingConfig) IsEnabled() bool {
	return c.Endpoint != ""
}

// ObservabilityNotificationsConfig controls operator alerts raised when the identity
// provider or role store keeps failing.
type ObservabilityNotificationsConfig struct {
	Enabled    bool                        `env:"OBSERVABILITY_NOTIFICATIONS_ENABLED"     envDefault:"false"`
	Timeout    time.Duration               `env:"OBSERVABILITY_NOTIFICATIONS_TIMEOUT"     envDefault:"5s"`
	RetryLimit int                         `env:"OBSERVABILITY_NOTIFICATIONS_RETRY_LIMIT" envDefault:"3"`
	Upstream   UpstreamAlertConfig         `                                                                 envPrefix:"OBSERVABILITY_NOTIFICATIONS_UPSTREAM_"`
	Slack      SlackNotificationConfig     `                                                                 envPrefix:"OBSERVABILITY_NOTIFICATIONS_SLACK_"`
	PagerDuty  PagerDutyNotificationConfig `                                                                 envPrefix:"OBSERVABILITY_NOTIFICATIONS_PAGERDUTY_"`
}

// Sanitize normalises notification configuration values.
func (c *ObservabilityNotificationsConfig) Sanitize() {
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.RetryLimit < 0 {
		c.RetryLimit = 0
	}

	c.Upstream.sanitize()
	c.Slack.sanitize()
	c.PagerDuty.sanitize()

	if !c.Enabled {
		c.Slack.Enabled = false
		c.PagerDuty.Enabled = false
		return
	}

	if c.Slack.Enabled && c.Slack.WebhookURL == "" {
		c.Slack.Enabled = false
	}

	if c.PagerDuty.Enabled && c.PagerDuty.RoutingKey == "" {
		c.PagerDuty.Enabled = false
	}
}

// HasSinks reports whether at least one delivery channel survived sanitisation.
func (c *ObservabilityNotificationsConfig) HasSinks() bool {
	return c.Enabled && (c.Slack.Enabled || c.PagerDuty.Enabled)
}

// UpstreamAlertConfig tunes when sustained upstream failures page someone.
type UpstreamAlertConfig struct {
	Threshold int           `env:"THRESHOLD" envDefault:"20"`
	Cooldown  time.Duration `env:"COOLDOWN"  envDefault:"15m"`
}

func (c *UpstreamAlertConfig) sanitize() {
	if c.Threshold < 1 {
		c.Threshold = 1
	}
	if c.Cooldown < time.Minute {
		c.Cooldown = time.Minute
	}
}

// SlackNotificationConfig controls Slack webhook fan-out.
type SlackNotificationConfig struct {
	Enabled    bool   `env:"ENABLED"     envDefault:"false"`
	WebhookURL string `env:"WEBHOOK_URL"`
	Channel    string `env:"CHANNEL"`
	Username   string `env:"USERNAME"    envDefault:"stayhub"`
}

func (c *SlackNotificationConfig) sanitize() {
	c.WebhookURL = strings.TrimSpace(c.WebhookURL)
	c.Channel = strings.TrimSpace(c.Channel)
	if c.Username = strings.TrimSpace(c.Username); c.Username == "" {
		c.Username = defaultObservabilityName
	}
}

// PagerDutyNotificationConfig controls PagerDuty Events API v2 fan-out.
type PagerDutyNotificationConfig struct {
	Enabled    bool   `env:"ENABLED"     envDefault:"false"`
	RoutingKey string `env:"ROUTING_KEY"`
	Source     string `env:"SOURCE"      envDefault:"stayhub"`
	Component  string `env:"COMPONENT"   envDefault:"authorization-gate"`
}

func (c *PagerDutyNotificationConfig) sanitize() {
	c.RoutingKey = strings.TrimSpace(c.RoutingKey)
	if c.Source = strings.TrimSpace(c.Source); c.Source == "" {
		c.Source = defaultObservabilityName
	}
	if c.Component = strings.TrimSpace(c.Component); c.Component == "" {
		c.Component = defaultObservabilityName
	}
}
