package httpx

import (
	"context"
	"net/http"
	"strings"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/service"
)

// Default credential locations.
const (
	DefaultTokenHeader   = "X-Stayhub-Token"
	DefaultSessionCookie = "stayhub_session"
)

// Authorizer is the authorization gate as seen by the HTTP layer.
type Authorizer interface {
	Authorize(ctx context.Context, credential string, policy service.Policy) domainauth.Decision
}

// ProtectedHandler is a handler that only runs for allowed requests.
type ProtectedHandler func(w http.ResponseWriter, r *http.Request, p domainauth.Principal)

// CredentialSource names where credentials are read from.
type CredentialSource struct {
	Header string
	Cookie string
}

// Extract returns the request credential: the custom header first, then a Bearer
// Authorization header, then the session cookie. Empty when none is present.
func (c CredentialSource) Extract(r *http.Request) string {
	header := c.Header
	if header == "" {
		header = DefaultTokenHeader
	}
	if v := strings.TrimSpace(r.Header.Get(header)); v != "" {
		return v
	}

	if v := r.Header.Get("Authorization"); v != "" {
		scheme, token, ok := strings.Cut(strings.TrimSpace(v), " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			if token = strings.TrimSpace(token); token != "" {
				return token
			}
		}
	}

	cookie := c.Cookie
	if cookie == "" {
		cookie = DefaultSessionCookie
	}
	if ck, err := r.Cookie(cookie); err == nil {
		return strings.TrimSpace(ck.Value)
	}
	return ""
}

// Guard wraps handlers with the authorization gate.
type Guard struct {
	gate    Authorizer
	sources CredentialSource
}

// NewGuard builds a Guard. gate is required.
func NewGuard(gate Authorizer, sources CredentialSource) *Guard {
	if gate == nil {
		panic("NewGuard: gate is required")
	}
	return &Guard{gate: gate, sources: sources}
}

// Authorize runs the gate for r without rendering anything.
func (g *Guard) Authorize(r *http.Request, policy service.Policy) domainauth.Decision {
	return g.gate.Authorize(r.Context(), g.sources.Extract(r), policy)
}

// Protect returns a handler that runs h only when the gate allows the request. Denials
// are written as {"ok":false,"error":"<REASON>"} with 401 or 403 and h never runs.
func (g *Guard) Protect(policy service.Policy, h ProtectedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := g.Authorize(r, policy)
		if !d.Allowed {
			writeDenial(w, d)
			return
		}
		h(w, r, d.Principal)
	}
}

func writeDenial(w http.ResponseWriter, d domainauth.Decision) {
	status := d.HTTPStatus()
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="stayhub"`)
	}
	w.Header().Set("Cache-Control", "no-store")
	WriteJSON(w, status, errorBody{Error: string(d.Outcome)})
}
