package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stayhub/stayhub-web/internal/ports"
)

// DefaultLoginStateTTL bounds how long an in-flight login may take.
const DefaultLoginStateTTL = 10 * time.Minute

// ErrLoginStateInvalid is returned when a callback carries an unknown, reused or expired state.
var ErrLoginStateInvalid = errors.New("login state invalid or expired")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	States   ports.LoginStateStore
	StateTTL time.Duration
}

// AuthService orchestrates the browser login flow. It never holds sessions: the credential
// issued by the provider is handed to the browser and validated per request by the Gate.
type AuthService struct {
	provider ports.AuthProvider
	states   ports.LoginStateStore
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Provider == nil {
		panic("NewAuthService: Provider is required")
	}
	if opts.States == nil {
		panic("NewAuthService: States is required")
	}
	ttl := opts.StateTTL
	if ttl <= 0 {
		ttl = DefaultLoginStateTTL
	}
	return &AuthService{
		provider: opts.Provider,
		states:   opts.States,
		ttl:      ttl,
		now:      time.Now,
	}
}

// BeginLoginInput groups parameters for starting a login.
type BeginLoginInput struct {
	// CallbackURL is the absolute URL the provider redirects back to.
	CallbackURL string
	// RedirectURI is the sanitised in-app path to land on after login.
	RedirectURI string
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL   string
	State     string
	ExpiresAt time.Time
}

// BeginLogin asks the provider for an auth URL and stores the nonce and landing path under the state.
func (s *AuthService) BeginLogin(ctx context.Context, in BeginLoginInput) (*BeginLoginResult, error) {
	if in.CallbackURL == "" {
		return nil, errors.New("callback URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: in.CallbackURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	redirect := in.RedirectURI
	if redirect == "" {
		redirect = "/"
	}
	expiresAt := s.now().Add(s.ttl)
	st := ports.LoginState{State: state, Nonce: nonce, RedirectURI: redirect, ExpiresAt: expiresAt}
	if err = s.states.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("save login state: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, ExpiresAt: expiresAt}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Code  string
	State string
}

// CompleteLoginResult carries the issued credential and where to send the browser.
type CompleteLoginResult struct {
	Token       ports.TokenSet
	RedirectURI string
}

// CompleteLogin consumes the stored state (single use) and exchanges the code for a credential.
func (s *AuthService) CompleteLogin(ctx context.Context, in CompleteLoginInput) (*CompleteLoginResult, error) {
	if in.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if in.State == "" {
		return nil, errors.New("state parameter is required")
	}

	st, err := s.states.Take(ctx, in.State)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrLoginStateInvalid
		}
		return nil, fmt.Errorf("take login state: %w", err)
	}
	if !st.ExpiresAt.IsZero() && s.now().After(st.ExpiresAt) {
		return nil, ErrLoginStateInvalid
	}

	tok, err := s.provider.Exchange(ctx, ports.ExchangeInput{Code: in.Code, State: in.State, Nonce: st.Nonce})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, errors.New("exchange authorization code: provider returned no credential")
	}
	if tok.ExpiresAt.IsZero() {
		tok.ExpiresAt = tok.Identity.ExpiresAt
	}

	return &CompleteLoginResult{Token: tok, RedirectURI: st.RedirectURI}, nil
}
