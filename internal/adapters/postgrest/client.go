// Package postgrest reads role assignments and role-scoped ids through a hosted
// database's REST interface using a privileged service key.
package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

const maxResponseBytes = 1 << 20

var tracer = otel.Tracer("github.com/stayhub/stayhub-web/internal/adapters/postgrest") //nolint:gochecknoglobals // otel convention

var (
	_ ports.RoleStore        = (*RoleStore)(nil)
	_ ports.ScopedIDResolver = (*ScopedIDs)(nil)
)

// Config configures the REST client.
type Config struct {
	BaseURL    string // e.g. https://project.example.co; requests go to {BaseURL}/rest/v1/{table}
	ServiceKey string
	HTTPClient *http.Client
	Timeout    time.Duration // default 5s when HTTPClient is nil
}

// Client issues single-row lookups. It holds no per-request state.
type Client struct {
	base       string
	serviceKey string
	http       *http.Client
}

// NewClient validates cfg and returns a Client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("postgrest: BaseURL is required")
	}
	if cfg.ServiceKey == "" {
		return nil, errors.New("postgrest: ServiceKey is required")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{base: base + "/rest/v1", serviceKey: cfg.ServiceKey, http: hc}, nil
}

// lookup selects column from the first row of table where user_id equals userID.
// An empty result set is ports.ErrNotFound.
func (c *Client) lookup(ctx context.Context, table, column, userID string) (string, error) {
	ctx, span := tracer.Start(ctx, "postgrest.lookup",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.sql.table", table)),
	)
	defer span.End()

	q := url.Values{}
	q.Set("select", column)
	q.Set("user_id", "eq."+userID)
	q.Set("limit", "1")
	endpoint := c.base + "/" + table + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return "", fmt.Errorf("%s lookup: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		span.SetStatus(codes.Error, "unexpected status")
		return "", fmt.Errorf("%s lookup returned %d: %s", table, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows any
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&rows); err != nil {
		return "", fmt.Errorf("decode %s rows: %w", table, err)
	}
	v, err := jmespath.Search("[0]."+column, rows)
	if err != nil {
		return "", fmt.Errorf("extract %s.%s: %w", table, column, err)
	}
	switch t := v.(type) {
	case nil:
		return "", ports.ErrNotFound
	case string:
		if t == "" {
			return "", ports.ErrNotFound
		}
		return t, nil
	default:
		return "", fmt.Errorf("%s.%s is %T, want string", table, column, v)
	}
}

// RoleStore implements ports.RoleStore over the user_roles table.
type RoleStore struct{ c *Client }

// NewRoleStore returns a RoleStore backed by c.
func NewRoleStore(c *Client) *RoleStore { return &RoleStore{c: c} }

// GetRole returns the user's role. An unknown role value is an upstream error.
func (s *RoleStore) GetRole(ctx context.Context, userID string) (domainauth.Role, error) {
	raw, err := s.c.lookup(ctx, "user_roles", "role", userID)
	if err != nil {
		return "", err
	}
	r, err := domainauth.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("user_roles: %w", err)
	}
	return r, nil
}

// ScopedIDs implements ports.ScopedIDResolver over one of the hosts or influencers tables.
type ScopedIDs struct {
	c     *Client
	table string
}

// NewHostIDs resolves host ids.
func NewHostIDs(c *Client) *ScopedIDs { return &ScopedIDs{c: c, table: "hosts"} }

// NewInfluencerIDs resolves influencer ids.
func NewInfluencerIDs(c *Client) *ScopedIDs { return &ScopedIDs{c: c, table: "influencers"} }

func (s *ScopedIDs) ResolveScopedID(ctx context.Context, userID string) (string, error) {
	return s.c.lookup(ctx, s.table, "id", userID)
}
