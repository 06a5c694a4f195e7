// Package jwksauth verifies provider-issued JWTs locally against the provider's JWKS.
package jwksauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

var _ ports.IdentityResolver = (*Resolver)(nil)

// Config configures JWKS verification.
type Config struct {
	JWKSURL  string
	Issuer   string // optional
	Audience string // optional
	// RefreshInterval is the minimum time between key set refreshes; default 15m.
	RefreshInterval time.Duration
	// Skew tolerates clock drift when checking exp/nbf; default 30s.
	Skew       time.Duration
	HTTPClient *http.Client
}

// Resolver implements ports.IdentityResolver without a network round trip per request.
// Keys come from a jwk.Cache that refreshes in the background.
type Resolver struct {
	url      string
	cache    *jwk.Cache
	issuer   string
	audience string
	skew     time.Duration
}

// NewResolver registers the key set and performs the first fetch. The cache's background
// refresh stops when ctx is cancelled.
func NewResolver(ctx context.Context, cfg Config) (*Resolver, error) {
	url := strings.TrimSpace(cfg.JWKSURL)
	if url == "" {
		return nil, errors.New("jwksauth: JWKSURL is required")
	}
	refresh := cfg.RefreshInterval
	if refresh <= 0 {
		refresh = 15 * time.Minute
	}
	skew := cfg.Skew
	if skew <= 0 {
		skew = 30 * time.Second
	}

	cache := jwk.NewCache(ctx)
	opts := []jwk.RegisterOption{jwk.WithMinRefreshInterval(refresh)}
	if cfg.HTTPClient != nil {
		opts = append(opts, jwk.WithHTTPClient(cfg.HTTPClient))
	}
	if err := cache.Register(url, opts...); err != nil {
		return nil, fmt.Errorf("jwksauth: register %s: %w", url, err)
	}
	if _, err := cache.Refresh(ctx, url); err != nil {
		return nil, fmt.Errorf("jwksauth: initial fetch: %w", err)
	}
	return &Resolver{url: url, cache: cache, issuer: cfg.Issuer, audience: cfg.Audience, skew: skew}, nil
}

// Resolve verifies credential. Key set retrieval failures are upstream errors; any
// verification or validation failure is ports.ErrInvalidCredential.
func (r *Resolver) Resolve(ctx context.Context, credential string) (domainauth.Identity, error) {
	set, err := r.cache.Get(ctx, r.url)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("load key set: %w", err)
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(r.skew),
	}
	if r.issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.issuer))
	}
	if r.audience != "" {
		opts = append(opts, jwt.WithAudience(r.audience))
	}
	tok, err := jwt.Parse([]byte(credential), opts...)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("%w: %w", ports.ErrInvalidCredential, err)
	}
	return IdentityFromToken(tok), nil
}

// IdentityFromToken maps standard claims (sub, email, exp) into an Identity.
func IdentityFromToken(tok jwt.Token) domainauth.Identity {
	id := domainauth.Identity{UserID: tok.Subject(), ExpiresAt: tok.Expiration()}
	if v, ok := tok.Get("email"); ok {
		if s, isStr := v.(string); isStr {
			id.Email = s
		}
	}
	return id
}
