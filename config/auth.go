package config

import (
	"fmt"
	"strings"
	"time"
)

// MinBypassSecretLen is the shortest admin bypass secret that is accepted.
const MinBypassSecretLen = 32

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// IdentityResolverKind selects how credentials are validated.
type IdentityResolverKind string

const (
	// IdentityResolverHosted calls the hosted provider's user endpoint per request.
	IdentityResolverHosted IdentityResolverKind = "hosted"
	// IdentityResolverJWKS verifies tokens locally against the provider's key set.
	IdentityResolverJWKS IdentityResolverKind = "jwks"
)

// UnmarshalText implements encoding.TextUnmarshaler for IdentityResolverKind.
func (k *IdentityResolverKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "hosted", "jwks":
		*k = IdentityResolverKind(v)
		return nil
	default:
		return fmt.Errorf("invalid IdentityResolver: %q (valid options: hosted, jwks)", v)
	}
}

// RoleStoreKind selects where role assignments and scoped ids are read from.
type RoleStoreKind string

const (
	// RoleStorePostgres reads user_roles directly.
	RoleStorePostgres RoleStoreKind = "postgres"
	// RoleStoreREST reads through the hosted REST interface with the service key.
	RoleStoreREST RoleStoreKind = "rest"
)

// UnmarshalText implements encoding.TextUnmarshaler for RoleStoreKind.
func (k *RoleStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "postgres", "rest":
		*k = RoleStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid RoleStore: %q (valid options: postgres, rest)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid email"`
	IssuerURL    string `env:"ISSUER_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID   string        `env:"USER_ID"   envDefault:"dev-user"`
	Email    string        `env:"EMAIL"     envDefault:"dev@example.com"`
	Secret   string        `env:"SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"8h"`
}

// IdentityConfig describes the third-party identity provider.
type IdentityConfig struct {
	Resolver IdentityResolverKind `env:"RESOLVER" envDefault:"hosted"`
	BaseURL  string               `env:"BASE_URL"`
	AnonKey  string               `env:"ANON_KEY"`
	JWKSURL  string               `env:"JWKS_URL"`
	Issuer   string               `env:"ISSUER"`
	Audience string               `env:"AUDIENCE"`
	// IDPath and EmailPath are JMESPath expressions over the user payload.
	IDPath    string        `env:"ID_PATH"    envDefault:"id"`
	EmailPath string        `env:"EMAIL_PATH" envDefault:"email"`
	Timeout   time.Duration `env:"TIMEOUT"    envDefault:"5s"`
}

// RoleStoreConfig selects and configures the role store.
type RoleStoreConfig struct {
	Kind RoleStoreKind `env:"ROLE_STORE" envDefault:"postgres"`
	// RESTURL and ServiceKey are only read when Kind=rest. The service key is
	// privileged and is never sent to the identity provider.
	RESTURL    string `env:"ROLE_STORE_REST_URL"`
	ServiceKey string `env:"ROLE_STORE_SERVICE_KEY"`
}

// BypassConfig controls the static admin secret. Disabled unless explicitly enabled.
type BypassConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Secret  string `env:"SECRET"`
}

// CredentialConfig names where the gate looks for credentials.
type CredentialConfig struct {
	HeaderName    string        `env:"TOKEN_HEADER"    envDefault:"X-Stayhub-Token"`
	CookieName    string        `env:"SESSION_COOKIE"  envDefault:"stayhub_session"`
	StateCookie   string        `env:"STATE_COOKIE"    envDefault:"stayhub_login_state"`
	LoginStateTTL time.Duration `env:"LOGIN_STATE_TTL" envDefault:"10m"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which login provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	Identity    IdentityConfig   `envPrefix:"IDENTITY_"`
	Roles       RoleStoreConfig
	Bypass      BypassConfig     `envPrefix:"ADMIN_BYPASS_"`
	Credentials CredentialConfig `envPrefix:"AUTH_"`
}

// Sanitize trims values and disables a bypass secret that is too short. It returns
// human-readable warnings for anything it changed.
func (a *AuthConfig) Sanitize() []string {
	var warnings []string

	a.Identity.BaseURL = strings.TrimRight(strings.TrimSpace(a.Identity.BaseURL), "/")
	a.Identity.JWKSURL = strings.TrimSpace(a.Identity.JWKSURL)
	a.Roles.RESTURL = strings.TrimRight(strings.TrimSpace(a.Roles.RESTURL), "/")
	if a.Roles.RESTURL == "" {
		a.Roles.RESTURL = a.Identity.BaseURL
	}
	if strings.TrimSpace(a.Identity.IDPath) == "" {
		a.Identity.IDPath = "id"
	}
	if strings.TrimSpace(a.Identity.EmailPath) == "" {
		a.Identity.EmailPath = "email"
	}
	if a.Identity.Timeout <= 0 {
		a.Identity.Timeout = 5 * time.Second
	}

	if a.Credentials.HeaderName = strings.TrimSpace(a.Credentials.HeaderName); a.Credentials.HeaderName == "" {
		a.Credentials.HeaderName = "X-Stayhub-Token"
	}
	if a.Credentials.CookieName = strings.TrimSpace(a.Credentials.CookieName); a.Credentials.CookieName == "" {
		a.Credentials.CookieName = "stayhub_session"
	}
	if a.Credentials.StateCookie = strings.TrimSpace(a.Credentials.StateCookie); a.Credentials.StateCookie == "" {
		a.Credentials.StateCookie = "stayhub_login_state"
	}
	if a.Credentials.LoginStateTTL <= 0 {
		a.Credentials.LoginStateTTL = 10 * time.Minute
	}

	if a.Bypass.Enabled && len(a.Bypass.Secret) < MinBypassSecretLen {
		warnings = append(warnings, fmt.Sprintf(
			"ADMIN_BYPASS_SECRET shorter than %d characters; admin bypass disabled", MinBypassSecretLen))
		a.Bypass.Enabled = false
	}
	if !a.Bypass.Enabled {
		a.Bypass.Secret = ""
	}
	return warnings
}
