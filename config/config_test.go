package config

import (
	"reflect"
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Auth.Mode != AuthModeOAuth {
		t.Fatalf("expected oauth mode by default, got %q", cfg.Auth.Mode)
	}
	if cfg.Auth.Identity.Resolver != IdentityResolverHosted {
		t.Fatalf("expected hosted resolver by default, got %q", cfg.Auth.Identity.Resolver)
	}
	if cfg.Auth.Roles.Kind != RoleStorePostgres {
		t.Fatalf("expected postgres role store by default, got %q", cfg.Auth.Roles.Kind)
	}
	if cfg.Auth.Bypass.Enabled {
		t.Fatal("expected admin bypass to be disabled by default")
	}
	if cfg.Auth.Credentials.HeaderName != "X-Stayhub-Token" {
		t.Fatalf("unexpected header name %q", cfg.Auth.Credentials.HeaderName)
	}
	if cfg.Auth.Credentials.CookieName != "stayhub_session" {
		t.Fatalf("unexpected cookie name %q", cfg.Auth.Credentials.CookieName)
	}
	if !cfg.Postgres.RunMigrationsOnStart {
		t.Fatal("expected migrations on start by default")
	}
	if cfg.Observability.Tracing.IsEnabled() {
		t.Fatal("expected tracing off without an endpoint")
	}
	if len(cfg.Warnings()) != 0 {
		t.Fatalf("expected no warnings, got %v", cfg.Warnings())
	}
}

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("AUTH_MODE", "oauth")
	t.Setenv("OAUTH_CLIENT_ID", "app-client")
	t.Setenv("OAUTH_CLIENT_SECRET", "super-secret")
	t.Setenv("OAUTH_REDIRECT_URL", "https://stay.example.com/auth/callback")
	t.Setenv("OAUTH_ISSUER_URL", "https://login.example.com")
	t.Setenv("OAUTH_SCOPE", "openid profile email")
	t.Setenv("IDENTITY_RESOLVER", "JWKS")
	t.Setenv("IDENTITY_BASE_URL", "https://project.example.co/")
	t.Setenv("IDENTITY_ANON_KEY", "anon")
	t.Setenv("IDENTITY_JWKS_URL", "https://project.example.co/auth/v1/.well-known/jwks.json")
	t.Setenv("IDENTITY_ID_PATH", "user.id")
	t.Setenv("IDENTITY_EMAIL_PATH", "user.email")
	t.Setenv("ROLE_STORE", "rest")
	t.Setenv("ROLE_STORE_SERVICE_KEY", "service")
	t.Setenv("AUTH_TOKEN_HEADER", "X-Custom-Token")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	expectedOAuth := OAuthConfig{
		ClientID:     "app-client",
		ClientSecret: "super-secret",
		RedirectURL:  "https://stay.example.com/auth/callback",
		Scope:        "openid profile email",
		IssuerURL:    "https://login.example.com",
	}
	if !reflect.DeepEqual(cfg.Auth.OAuth, expectedOAuth) {
		t.Fatalf("unexpected oauth configuration:\nexpected: %#v\ngot:      %#v", expectedOAuth, cfg.Auth.OAuth)
	}

	expectedIdentity := IdentityConfig{
		Resolver:  IdentityResolverJWKS,
		BaseURL:   "https://project.example.co",
		AnonKey:   "anon",
		JWKSURL:   "https://project.example.co/auth/v1/.well-known/jwks.json",
		IDPath:    "user.id",
		EmailPath: "user.email",
		Timeout:   5 * time.Second,
	}
	if !reflect.DeepEqual(cfg.Auth.Identity, expectedIdentity) {
		t.Fatalf("unexpected identity configuration:\nexpected: %#v\ngot:      %#v", expectedIdentity, cfg.Auth.Identity)
	}

	if cfg.Auth.Roles.Kind != RoleStoreREST {
		t.Fatalf("expected rest role store, got %q", cfg.Auth.Roles.Kind)
	}
	if cfg.Auth.Roles.RESTURL != "https://project.example.co" {
		t.Fatalf("expected REST URL to fall back to identity base URL, got %q", cfg.Auth.Roles.RESTURL)
	}
	if cfg.Auth.Credentials.HeaderName != "X-Custom-Token" {
		t.Fatalf("expected custom header, got %q", cfg.Auth.Credentials.HeaderName)
	}
}

func TestAppConfig_InvalidEnums(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "auth mode", key: "AUTH_MODE", value: "saml"},
		{name: "identity resolver", key: "IDENTITY_RESOLVER", value: "ldap"},
		{name: "role store", key: "ROLE_STORE", value: "mysql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			var cfg AppConfig
			err := env.Parse(&cfg)
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.value) {
				t.Fatalf("expected error to name the bad value, got %v", err)
			}
		})
	}
}

func TestAuthConfig_SanitizeBypass(t *testing.T) {
	tests := []struct {
		name        string
		in          BypassConfig
		wantEnabled bool
		wantWarning bool
	}{
		{
			name:        "disabled stays disabled and drops secret",
			in:          BypassConfig{Enabled: false, Secret: strings.Repeat("s", 40)},
			wantEnabled: false,
		},
		{
			name:        "short secret disables bypass",
			in:          BypassConfig{Enabled: true, Secret: "too-short"},
			wantEnabled: false,
			wantWarning: true,
		},
		{
			name:        "long secret keeps bypass",
			in:          BypassConfig{Enabled: true, Secret: strings.Repeat("s", MinBypassSecretLen)},
			wantEnabled: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{Bypass: tt.in}
			warnings := cfg.Sanitize()

			if cfg.Bypass.Enabled != tt.wantEnabled {
				t.Fatalf("enabled = %v, want %v", cfg.Bypass.Enabled, tt.wantEnabled)
			}
			if !cfg.Bypass.Enabled && cfg.Bypass.Secret != "" {
				t.Fatal("expected secret to be cleared when bypass is disabled")
			}
			if (len(warnings) > 0) != tt.wantWarning {
				t.Fatalf("warnings = %v, want warning %v", warnings, tt.wantWarning)
			}
		})
	}
}

func TestHTTPConfig_SanitizeCookieDomain(t *testing.T) {
	tests := []struct {
		domain      string
		want        string
		wantWarning bool
	}{
		{domain: "", want: ""},
		{domain: "stay.example.com", want: "stay.example.com"},
		{domain: " example.co.kr ", want: "example.co.kr"},
		{domain: "com", want: "", wantWarning: true},
		{domain: "co.kr", want: "", wantWarning: true},
		{domain: ".co.kr", want: "", wantWarning: true},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			cfg := HTTPConfig{CookieDomain: tt.domain}
			warnings := cfg.Sanitize()
			if cfg.CookieDomain != tt.want {
				t.Fatalf("cookie domain = %q, want %q", cfg.CookieDomain, tt.want)
			}
			if (len(warnings) > 0) != tt.wantWarning {
				t.Fatalf("warnings = %v, want warning %v", warnings, tt.wantWarning)
			}
		})
	}
}

func TestAppConfig_SanitizeCollectsWarnings(t *testing.T) {
	cfg := AppConfig{
		Auth: AuthConfig{Bypass: BypassConfig{Enabled: true, Secret: "short"}},
		HTTP: HTTPConfig{CookieDomain: "com"},
	}
	cfg.Sanitize()
	if len(cfg.Warnings()) != 2 {
		t.Fatalf("expected two warnings, got %v", cfg.Warnings())
	}

	// A second pass over clean values reports nothing.
	cfg.Sanitize()
	if len(cfg.Warnings()) != 0 {
		t.Fatalf("expected warnings to reset, got %v", cfg.Warnings())
	}
}

func TestDBConfig_Sanitize(t *testing.T) {
	cfg := DBConfig{MaxOpenConns: 0, MaxIdleConns: 10}
	cfg.Sanitize()
	if cfg.MaxOpenConns != 1 {
		t.Fatalf("expected max open conns clamped to 1, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 1 {
		t.Fatalf("expected idle conns capped by open conns, got %d", cfg.MaxIdleConns)
	}
}

func TestTracingConfig_Sanitize(t *testing.T) {
	cfg := TracingConfig{Endpoint: " http://collector:4317 ", SamplingRate: 3}
	cfg.Sanitize()

	if cfg.Endpoint != "collector:4317" {
		t.Fatalf("expected scheme stripped, got %q", cfg.Endpoint)
	}
	if !cfg.Insecure {
		t.Fatal("expected http:// endpoint to imply insecure")
	}
	if cfg.SamplingRate != 1 {
		t.Fatalf("expected sampling rate clamped to 1, got %v", cfg.SamplingRate)
	}
	if cfg.ServiceName != "stayhub" {
		t.Fatalf("expected default service name, got %q", cfg.ServiceName)
	}
	if !cfg.IsEnabled() {
		t.Fatal("expected tracing enabled with an endpoint")
	}
}

func TestObservabilityNotificationsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityNotificationsConfig{
		Enabled:    true,
		Timeout:    0,
		RetryLimit: -1,
		Upstream:   UpstreamAlertConfig{Threshold: 0, Cooldown: time.Second},
		Slack: SlackNotificationConfig{
			Enabled:    true,
			WebhookURL: " ",
			Channel:    "  ",
			Username:   "",
		},
		PagerDuty: PagerDutyNotificationConfig{
			Enabled:    true,
			RoutingKey: " ",
			Source:     "",
			Component:  "",
		},
	}

	cfg.Sanitize()

	if cfg.Timeout <= 0 {
		t.Fatalf("expected timeout to fall back to default, got %v", cfg.Timeout)
	}
	if cfg.RetryLimit < 0 {
		t.Fatalf("expected retry limit to be clamped to >= 0, got %d", cfg.RetryLimit)
	}
	if cfg.Upstream.Threshold != 1 || cfg.Upstream.Cooldown != time.Minute {
		t.Fatalf("expected upstream alert floors, got %+v", cfg.Upstream)
	}
	if cfg.Slack.Enabled {
		t.Fatal("expected slack to be disabled without a webhook url")
	}
	if cfg.PagerDuty.Enabled {
		t.Fatal("expected pagerduty to be disabled without a routing key")
	}
	if cfg.PagerDuty.Source != "stayhub" {
		t.Fatalf("expected pagerduty source default, got %q", cfg.PagerDuty.Source)
	}
	if cfg.HasSinks() {
		t.Fatal("expected no sinks")
	}

	// Disabled top-level should disable child sinks.
	cfg = ObservabilityNotificationsConfig{
		Enabled: false,
		Slack: SlackNotificationConfig{
			Enabled:    true,
			WebhookURL: "https://hooks.slack.com/services/test",
		},
		PagerDuty: PagerDutyNotificationConfig{
			Enabled:    true,
			RoutingKey: "abc",
		},
	}
	cfg.Sanitize()

	if cfg.Slack.Enabled {
		t.Fatal("expected slack to be disabled when top-level notifications disabled")
	}
	if cfg.PagerDuty.Enabled {
		t.Fatal("expected pagerduty to be disabled when top-level notifications disabled")
	}
}
