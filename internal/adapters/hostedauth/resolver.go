// Package hostedauth resolves bearer credentials by asking a hosted identity
// provider's "current user" endpoint.
package hostedauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

const (
	userPath         = "/auth/v1/user"
	maxResponseBytes = 1 << 20
)

var tracer = otel.Tracer("github.com/stayhub/stayhub-web/internal/adapters/hostedauth") //nolint:gochecknoglobals // otel convention

var _ ports.IdentityResolver = (*Resolver)(nil)

// Config configures the hosted identity resolver.
type Config struct {
	BaseURL string
	AnonKey string
	// IDPath and EmailPath are JMESPath expressions over the user payload.
	IDPath    string // default "id"
	EmailPath string // default "email"
	// ExpiresPath optionally extracts a unix-seconds expiry.
	ExpiresPath string

	HTTPClient *http.Client
	Timeout    time.Duration // default 5s when HTTPClient is nil
	Breaker    BreakerConfig
	Logger     *slog.Logger
}

// BreakerConfig tunes the circuit breaker guarding provider calls.
type BreakerConfig struct {
	// ConsecutiveFailures trips the breaker; default 5.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open; default 30s.
	OpenTimeout time.Duration
}

// Resolver implements ports.IdentityResolver against a hosted auth API.
// Rejections (401/403) map to ports.ErrInvalidCredential; everything else,
// including an open breaker, is an upstream error.
type Resolver struct {
	endpoint  string
	anonKey   string
	idPath    string
	emailPath string
	expPath   string
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker
	logger    *slog.Logger
}

// NewResolver validates cfg and returns a Resolver.
func NewResolver(cfg Config) (*Resolver, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("hostedauth: BaseURL is required")
	}
	if cfg.AnonKey == "" {
		return nil, errors.New("hostedauth: AnonKey is required")
	}
	r := &Resolver{
		endpoint:  base + userPath,
		anonKey:   cfg.AnonKey,
		idPath:    firstNonEmpty(cfg.IDPath, "id"),
		emailPath: firstNonEmpty(cfg.EmailPath, "email"),
		expPath:   cfg.ExpiresPath,
		client:    cfg.HTTPClient,
		logger:    cfg.Logger,
	}
	for _, expr := range []string{r.idPath, r.emailPath, r.expPath} {
		if expr == "" {
			continue
		}
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, fmt.Errorf("hostedauth: invalid path %q: %w", expr, err)
		}
	}
	if r.client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		r.client = &http.Client{Timeout: timeout}
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.breaker = newBreaker("hostedauth", cfg.Breaker, r.logger)
	return r, nil
}

func newBreaker(name string, cfg BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	failures := cfg.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}
	open := cfg.OpenTimeout
	if open <= 0 {
		open = 30 * time.Second
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: open,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		},
		// A rejected credential is a healthy provider answering.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ports.ErrInvalidCredential) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// Resolve asks the provider who owns credential.
func (r *Resolver) Resolve(ctx context.Context, credential string) (domainauth.Identity, error) {
	ctx, span := tracer.Start(ctx, "hostedauth.resolve", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	out, err := r.breaker.Execute(func() (any, error) {
		return r.fetchUser(ctx, credential)
	})
	if err != nil {
		if !errors.Is(err, ports.ErrInvalidCredential) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "identity lookup failed")
		}
		return domainauth.Identity{}, err
	}
	return r.mapIdentity(out)
}

func (r *Resolver) fetchUser(ctx context.Context, credential string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", r.anonKey)
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	defer resp.Body.Close()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, ports.ErrInvalidCredential
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload any
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode user payload: %w", err)
	}
	return payload, nil
}

func (r *Resolver) mapIdentity(payload any) (domainauth.Identity, error) {
	id, err := searchString(r.idPath, payload)
	if err != nil {
		return domainauth.Identity{}, err
	}
	if id == "" {
		return domainauth.Identity{}, fmt.Errorf("%w: user payload has no id", ports.ErrInvalidCredential)
	}
	email, err := searchString(r.emailPath, payload)
	if err != nil {
		return domainauth.Identity{}, err
	}
	ident := domainauth.Identity{UserID: id, Email: email}
	if r.expPath != "" {
		if v, searchErr := jmespath.Search(r.expPath, payload); searchErr == nil {
			if f, ok := v.(float64); ok && f > 0 {
				ident.ExpiresAt = time.Unix(int64(f), 0)
			}
		}
	}
	return ident, nil
}

func searchString(expr string, payload any) (string, error) {
	v, err := jmespath.Search(expr, payload)
	if err != nil {
		return "", fmt.Errorf("evaluate %q: %w", expr, err)
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return fmt.Sprintf("%.0f", t), nil
	default:
		return "", fmt.Errorf("path %q yielded %T, want string", expr, v)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
