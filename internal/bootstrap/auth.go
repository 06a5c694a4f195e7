package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/stayhub/stayhub-web/config"
	"github.com/stayhub/stayhub-web/internal/adapters/devauth"
	"github.com/stayhub/stayhub-web/internal/adapters/hostedauth"
	"github.com/stayhub/stayhub-web/internal/adapters/jwksauth"
	"github.com/stayhub/stayhub-web/internal/adapters/oidc"
	"github.com/stayhub/stayhub-web/internal/adapters/postgrest"
	redisadapter "github.com/stayhub/stayhub-web/internal/adapters/redis"
	"github.com/stayhub/stayhub-web/internal/data"
	"github.com/stayhub/stayhub-web/internal/ports"
	"github.com/stayhub/stayhub-web/internal/service"
)

// AuthDeps contains what the auth wiring needs.
type AuthDeps struct {
	Auth        config.AuthConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	// HTTPClient is shared by outbound identity and role-store calls; nil uses per-adapter defaults.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// AuthComponents are the ports the gate and the login flow are built from.
type AuthComponents struct {
	// Login is nil when no Redis client is available to hold login state.
	Login       *service.AuthService
	Identities  ports.IdentityResolver
	Roles       ports.RoleStore
	Hosts       ports.ScopedIDResolver
	Influencers ports.ScopedIDResolver
}

// BuildAuth selects the login provider, identity resolver and role store from config.
func BuildAuth(ctx context.Context, deps AuthDeps) (*AuthComponents, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	out := &AuthComponents{}

	provider, resolver, err := buildLoginAndIdentity(ctx, deps, logger)
	if err != nil {
		return nil, err
	}
	out.Identities = resolver

	if err = buildRoleStore(deps, out); err != nil {
		return nil, err
	}

	if deps.RedisClient == nil {
		logger.Warn("login flow disabled: redis client not configured", "mode", deps.Auth.Mode)
		return out, nil
	}
	out.Login = service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		States:   redisadapter.NewLoginStateStore(deps.RedisClient),
		StateTTL: deps.Auth.Credentials.LoginStateTTL,
	})
	return out, nil
}

func buildLoginAndIdentity(
	ctx context.Context,
	deps AuthDeps,
	logger *slog.Logger,
) (ports.AuthProvider, ports.IdentityResolver, error) {
	switch deps.Auth.Mode {
	case config.AuthModeMock:
		// The dev provider mints the tokens it later verifies, so it is both ports.
		prov, err := devauth.NewProvider(devauth.Config{
			UserID:   deps.Auth.DevAuth.UserID,
			Email:    deps.Auth.DevAuth.Email,
			Secret:   deps.Auth.DevAuth.Secret,
			TokenTTL: deps.Auth.DevAuth.TokenTTL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("dev auth provider: %w", err)
		}
		logger.Warn("using mock authentication; never enable in production", "user_id", deps.Auth.DevAuth.UserID)
		return prov, prov, nil

	case config.AuthModeOAuth:
		oauth := deps.Auth.OAuth
		prov, err := oidc.NewProvider(ctx, oidc.ProviderConfig{
			ClientID:     oauth.ClientID,
			ClientSecret: oauth.ClientSecret,
			RedirectURL:  oauth.RedirectURL,
			Scope:        oauth.Scope,
			IssuerURL:    oauth.IssuerURL,
			HTTPClient:   deps.HTTPClient,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("oidc provider: %w", err)
		}
		resolver, err := buildIdentityResolver(ctx, deps, logger)
		if err != nil {
			return nil, nil, err
		}
		return prov, resolver, nil

	default:
		return nil, nil, fmt.Errorf("unsupported auth mode %q", deps.Auth.Mode)
	}
}

//nolint:ireturn // the resolver kind is chosen at runtime.
func buildIdentityResolver(
	ctx context.Context,
	deps AuthDeps,
	logger *slog.Logger,
) (ports.IdentityResolver, error) {
	id := deps.Auth.Identity
	switch id.Resolver {
	case config.IdentityResolverJWKS:
		r, err := jwksauth.NewResolver(ctx, jwksauth.Config{
			JWKSURL:    id.JWKSURL,
			Issuer:     id.Issuer,
			Audience:   id.Audience,
			HTTPClient: deps.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("jwks identity resolver: %w", err)
		}
		return r, nil

	case config.IdentityResolverHosted, "":
		r, err := hostedauth.NewResolver(hostedauth.Config{
			BaseURL:    id.BaseURL,
			AnonKey:    id.AnonKey,
			IDPath:     id.IDPath,
			EmailPath:  id.EmailPath,
			HTTPClient: deps.HTTPClient,
			Timeout:    id.Timeout,
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("hosted identity resolver: %w", err)
		}
		return r, nil

	default:
		return nil, fmt.Errorf("unsupported identity resolver %q", id.Resolver)
	}
}

func buildRoleStore(deps AuthDeps, out *AuthComponents) error {
	switch deps.Auth.Roles.Kind {
	case config.RoleStoreREST:
		c, err := postgrest.NewClient(postgrest.Config{
			BaseURL:    deps.Auth.Roles.RESTURL,
			ServiceKey: deps.Auth.Roles.ServiceKey,
			HTTPClient: deps.HTTPClient,
			Timeout:    deps.Auth.Identity.Timeout,
		})
		if err != nil {
			return fmt.Errorf("rest role store: %w", err)
		}
		out.Roles = postgrest.NewRoleStore(c)
		out.Hosts = postgrest.NewHostIDs(c)
		out.Influencers = postgrest.NewInfluencerIDs(c)
		return nil

	case config.RoleStorePostgres, "":
		if deps.DB == nil {
			return errors.New("postgres role store requires a database connection")
		}
		out.Roles = data.NewRoleRepo(deps.DB)
		out.Hosts = data.NewHostRepo(deps.DB)
		out.Influencers = data.NewInfluencerRepo(deps.DB)
		return nil

	default:
		return fmt.Errorf("unsupported role store %q", deps.Auth.Roles.Kind)
	}
}
