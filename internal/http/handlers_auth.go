package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/stayhub/stayhub-web/internal/service"
	"github.com/stayhub/stayhub-web/internal/util"
)

// Default cookie names used by the login flow.
const (
	DefaultStateCookie = "stayhub_login_state"
	defaultStateMaxAge = 10 * time.Minute
)

// AuthFlow is the login flow as seen by the HTTP layer.
type AuthFlow interface {
	BeginLogin(ctx context.Context, in service.BeginLoginInput) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, in service.CompleteLoginInput) (*service.CompleteLoginResult, error)
}

// CookieSettings controls the attributes of cookies the server sets.
type CookieSettings struct {
	Domain  string
	Session string
	State   string
	// Secure forces the Secure attribute; otherwise it follows the request scheme.
	Secure bool
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc AuthFlow
	// Guard and Policy back /auth/status.
	Guard       *Guard
	Policy      service.Policy
	Cookies     CookieSettings
	CallbackURL string
	Logger      *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *AuthHandlers) sessionCookie() string {
	if h.Cookies.Session != "" {
		return h.Cookies.Session
	}
	return DefaultSessionCookie
}

func (h *AuthHandlers) stateCookie() string {
	if h.Cookies.State != "" {
		return h.Cookies.State
	}
	return DefaultStateCookie
}

// Login handles the login initiation endpoint.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	redirectURI := util.SafeRedirectPath(r.URL.Query().Get("redirect_uri"), "/")

	result, err := h.Svc.BeginLogin(r.Context(), service.BeginLoginInput{
		CallbackURL: h.CallbackURL,
		RedirectURI: redirectURI,
	})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "begin login failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusBadGateway,
			ErrCode: "login_failed",
			Err:     errors.New("could not start login"),
		})
		return
	}

	maxAge := time.Until(result.ExpiresAt)
	if maxAge <= 0 {
		maxAge = defaultStateMaxAge
	}
	h.setCookie(w, r, h.stateCookie(), result.State, maxAge)
	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback handles the OAuth callback endpoint.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if idpErr := q.Get("error"); idpErr != "" {
		h.clearCookie(w, r, h.stateCookie())
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "login_denied",
			Err:     errors.New("identity provider returned " + idpErr),
		})
		return
	}

	code := q.Get("code")
	state := q.Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	stateCookie, err := r.Cookie(h.stateCookie())
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	h.clearCookie(w, r, h.stateCookie())

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{Code: code, State: state})
	if err != nil {
		if errors.Is(err, service.ErrLoginStateInvalid) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_state", Err: err})
			return
		}
		h.logger().ErrorContext(r.Context(), "complete login failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusBadGateway,
			ErrCode: "login_completion_failed",
			Err:     errors.New("could not complete login"),
		})
		return
	}

	ttl := time.Until(result.Token.ExpiresAt)
	if result.Token.ExpiresAt.IsZero() || ttl <= 0 {
		ttl = time.Hour
	}
	h.setCookie(w, r, h.sessionCookie(), result.Token.AccessToken, ttl)
	http.Redirect(w, r, util.SafeRedirectPath(result.RedirectURI, "/"), http.StatusFound)
}

// Logout handles the logout endpoint. The credential is provider-issued, so logging out
// only drops the cookie.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, r, h.sessionCookie())

	redirectURI := r.URL.Query().Get("redirect_uri")
	if redirectURI == "" {
		redirectURI = r.PostFormValue("redirect_uri")
	}
	redirectURI = util.SafeRedirectPath(redirectURI, "/")

	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "redirect_to": redirectURI})
		return
	}
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

type statusUser struct {
	ID           string `json:"id"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role"`
	HostID       string `json:"host_id,omitempty"`
	InfluencerID string `json:"influencer_id,omitempty"`
}

// Status reports whether the request carries a credential the gate accepts.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	d := h.Guard.Authorize(r, h.Policy)
	if !d.Allowed {
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
			"reason":        d.Outcome,
		})
		return
	}

	p := d.Principal
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": statusUser{
			ID:           p.Identity.UserID,
			Email:        p.Identity.Email,
			Role:         string(p.Role),
			HostID:       p.Scoped.HostID,
			InfluencerID: p.Scoped.InfluencerID,
		},
	})
}

func (h *AuthHandlers) setCookie(w http.ResponseWriter, r *http.Request, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.Cookies.Domain,
		HttpOnly: true,
		Secure:   h.Cookies.Secure || isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl).UTC(),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.Cookies.Domain,
		HttpOnly: true,
		Secure:   h.Cookies.Secure || isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
