package devauth

// Package devauth provides a config-driven login flow and token verifier for local development.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

const (
	defaultIssuer   = "stayhub-dev"
	defaultTokenTTL = 8 * time.Hour
	minSecretLen    = 32
)

var (
	_ ports.AuthProvider     = (*Provider)(nil)
	_ ports.IdentityResolver = (*Provider)(nil)
)

// Config controls the dev provider. UserID and Email name the identity every login yields.
type Config struct {
	UserID string
	Email  string
	// Secret signs HS256 tokens. When empty a random secret is generated, which
	// invalidates tokens across restarts.
	Secret   string
	TokenTTL time.Duration // default 8h when zero
}

// Provider short-circuits the OAuth flow by redirecting straight back to our callback,
// and mints HS256 tokens that its Resolve method verifies.
type Provider struct {
	identity domainauth.Identity
	key      []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewProvider constructs a dev provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID == "" {
		return nil, errors.New("dev auth: UserID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	key := []byte(cfg.Secret)
	switch {
	case len(key) == 0:
		generated, err := randomString(minSecretLen * 2)
		if err != nil {
			return nil, fmt.Errorf("dev auth: generate secret: %w", err)
		}
		key = []byte(generated)
	case len(key) < minSecretLen:
		return nil, fmt.Errorf("dev auth: Secret must be at least %d bytes", minSecretLen)
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Provider{
		identity: domainauth.Identity{UserID: cfg.UserID, Email: cfg.Email},
		key:      key,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Begin returns a local callback URL and random state and nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	return "/auth/callback?code=dev&state=" + state, state, nonce, nil
}

// Exchange ignores the code (state is checked by the login service) and issues a token
// for the configured identity.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (ports.TokenSet, error) {
	return p.Issue(p.identity.UserID, p.identity.Email)
}

// Issue mints a token for any user id; used by the admin CLI to script local requests.
func (p *Provider) Issue(userID, email string) (ports.TokenSet, error) {
	if userID == "" {
		return ports.TokenSet{}, errors.New("user id is required")
	}
	now := p.now()
	exp := now.Add(p.ttl).Truncate(time.Second)
	b := jwt.NewBuilder().
		Issuer(defaultIssuer).
		Subject(userID).
		IssuedAt(now).
		Expiration(exp)
	if email != "" {
		b = b.Claim("email", email)
	}
	tok, err := b.Build()
	if err != nil {
		return ports.TokenSet{}, fmt.Errorf("build token: %w", err)
	}
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, p.key))
	if err != nil {
		return ports.TokenSet{}, fmt.Errorf("sign token: %w", err)
	}
	return ports.TokenSet{
		AccessToken: string(signed),
		ExpiresAt:   exp,
		Identity:    domainauth.Identity{UserID: userID, Email: email, ExpiresAt: exp},
	}, nil
}

// Resolve verifies a token minted by this provider.
func (p *Provider) Resolve(_ context.Context, credential string) (domainauth.Identity, error) {
	tok, err := jwt.Parse([]byte(credential),
		jwt.WithKey(jwa.HS256, p.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(defaultIssuer),
		jwt.WithClock(jwt.ClockFunc(p.now)),
	)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("%w: %w", ports.ErrInvalidCredential, err)
	}
	id := domainauth.Identity{UserID: tok.Subject(), ExpiresAt: tok.Expiration()}
	if v, ok := tok.Get("email"); ok {
		id.Email, _ = v.(string)
	}
	return id, nil
}

func randomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b)[:n], nil
}
