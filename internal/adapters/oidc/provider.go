package oidc

// Package oidc provides the OIDC login adapter used by the /auth endpoints.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

var _ ports.AuthProvider = (*Provider)(nil)

// Provider implements ports.AuthProvider using the authorization code flow. The access
// token returned by the identity provider becomes the session credential.
type Provider struct {
	config     *oauth2.Config
	httpClient *http.Client
	op         *gooidc.Provider
	verifier   *gooidc.IDTokenVerifier
}

// ProviderConfig holds configuration for the OIDC provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scope        string // default "openid email"
	// IssuerURL may also be given as the full discovery document URL.
	IssuerURL  string
	HTTPClient *http.Client // Optional, defaults to a 30s client
}

// NewProvider performs discovery and builds the provider.
func NewProvider(ctx context.Context, cfg ProviderConfig) (*Provider, error) {
	switch {
	case cfg.ClientID == "":
		return nil, errors.New("client ID is required")
	case cfg.ClientSecret == "":
		return nil, errors.New("client secret is required")
	case cfg.RedirectURL == "":
		return nil, errors.New("redirect URL is required")
	case cfg.IssuerURL == "":
		return nil, errors.New("issuer URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	issuer := strings.TrimSuffix(cfg.IssuerURL, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, "/")

	op, err := gooidc.NewProvider(gooidc.ClientContext(ctx, httpClient), issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	scope := cfg.Scope
	if strings.TrimSpace(scope) == "" {
		scope = "openid email"
	}
	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       strings.Fields(scope),
			Endpoint:     op.Endpoint(),
		},
		httpClient: httpClient,
		op:         op,
		verifier:   op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// Begin returns the provider authorization URL with a fresh state and nonce.
// The callback is always the configured RedirectURL.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := generateRandomString(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := generateRandomString(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	authURL := p.config.AuthCodeURL(state, gooidc.Nonce(nonce))
	return authURL, state, nonce, nil
}

// Exchange trades the code for tokens, verifies the id_token and its nonce, and
// returns the access token with the identity it belongs to.
func (p *Provider) Exchange(ctx context.Context, in ports.ExchangeInput) (ports.TokenSet, error) {
	switch {
	case in.Code == "":
		return ports.TokenSet{}, errors.New("authorization code is required")
	case in.Nonce == "":
		return ports.TokenSet{}, errors.New("nonce is required")
	}
	ctx = gooidc.ClientContext(ctx, p.httpClient)

	token, err := p.config.Exchange(ctx, in.Code)
	if err != nil {
		return ports.TokenSet{}, fmt.Errorf("exchange code for token: %w", err)
	}
	if token.AccessToken == "" {
		return ports.TokenSet{}, errors.New("token response has no access_token")
	}
	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return ports.TokenSet{}, errors.New("missing id_token in token response")
	}
	idTok, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return ports.TokenSet{}, fmt.Errorf("verify id_token: %w", err)
	}
	if idTok.Nonce != in.Nonce {
		return ports.TokenSet{}, errors.New("invalid nonce")
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err = idTok.Claims(&claims); err != nil {
		return ports.TokenSet{}, fmt.Errorf("parse id_token claims: %w", err)
	}
	if claims.Email == "" {
		claims.Email = p.userInfoEmail(ctx, token)
	}

	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = idTok.Expiry
	}
	return ports.TokenSet{
		AccessToken: token.AccessToken,
		ExpiresAt:   expiresAt,
		Identity: domainauth.Identity{
			UserID:    idTok.Subject,
			Email:     claims.Email,
			ExpiresAt: expiresAt,
		},
	}, nil
}

// userInfoEmail is best effort; the user id from the id_token is what matters.
func (p *Provider) userInfoEmail(ctx context.Context, token *oauth2.Token) string {
	ui, err := p.op.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		return ""
	}
	return ui.Email
}

// generateRandomString returns a URL-safe random string of exactly length characters.
func generateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b)[:length], nil
}
