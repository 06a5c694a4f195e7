package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BypassUserID is the synthetic identity attached to requests admitted with the admin secret.
const BypassUserID = "static-admin"

var (
	errMissingCredential   = errors.New("credential missing")
	errMalformedCredential = errors.New("credential is not token-shaped")
	errBypassNotPermitted  = errors.New("admin secret presented to a policy that does not allow it")
	errEmptyIdentity       = errors.New("identity provider returned an empty user id")
	errRoleNotPermitted    = errors.New("role not permitted")
	errScopeMissing        = errors.New("role-scoped id missing")
)

var gateTracer = otel.Tracer("github.com/stayhub/stayhub-web/internal/service/gate") //nolint:gochecknoglobals // otel convention

// BypassConfig controls the static admin secret.
type BypassConfig struct {
	Enabled bool
	Secret  string
}

// GateObserver receives every decision; used for metrics.
type GateObserver interface {
	ObserveDecision(policy string, d domainauth.Decision, elapsed time.Duration)
}

// GateObservers fans a decision out to several observers.
type GateObservers []GateObserver

// ObserveDecision implements GateObserver.
func (o GateObservers) ObserveDecision(policy string, d domainauth.Decision, elapsed time.Duration) {
	for _, obs := range o {
		if obs != nil {
			obs.ObserveDecision(policy, d, elapsed)
		}
	}
}

// GateConfig groups optional gate settings.
type GateConfig struct {
	Bypass   BypassConfig
	Logger   *slog.Logger
	Observer GateObserver
}

// GateOptions groups dependencies for Gate.
type GateOptions struct {
	Identities ports.IdentityResolver
	Roles      ports.RoleStore
	Config     GateConfig
}

// Gate evaluates a credential against a Policy. It holds no per-request state and is
// safe for concurrent use.
type Gate struct {
	identities ports.IdentityResolver
	roles      ports.RoleStore
	bypass     BypassConfig
	logger     *slog.Logger
	observer   GateObserver
}

// NewGate constructs a Gate. Identities and Roles are required.
func NewGate(opts GateOptions) *Gate {
	if opts.Identities == nil {
		panic("NewGate: Identities is required")
	}
	if opts.Roles == nil {
		panic("NewGate: Roles is required")
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{
		identities: opts.Identities,
		roles:      opts.Roles,
		bypass:     opts.Config.Bypass,
		logger:     logger,
		observer:   opts.Config.Observer,
	}
}

// Authorize runs one authorization pass. It never panics and never returns an error:
// every failure is a denied Decision.
func (g *Gate) Authorize(ctx context.Context, credential string, policy Policy) (d domainauth.Decision) {
	start := time.Now()
	ctx, span := gateTracer.Start(ctx, "gate.authorize",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("gate.policy", policy.Name)),
	)
	defer func() {
		if rec := recover(); rec != nil {
			d = domainauth.DenyUpstream(domainauth.ReasonForbidden, fmt.Errorf("gate panic: %v", rec))
		}
		g.finish(ctx, span, policy, d, time.Since(start))
	}()

	return g.decide(ctx, credential, policy)
}

func (g *Gate) decide(ctx context.Context, credential string, policy Policy) domainauth.Decision {
	if credential == "" {
		return domainauth.Deny(domainauth.ReasonUnauthenticated, errMissingCredential)
	}

	if g.isBypassSecret(credential) {
		if !policy.bypassEligible() {
			return domainauth.Deny(domainauth.ReasonForbidden, errBypassNotPermitted)
		}
		return domainauth.Allow(domainauth.Principal{
			Identity: domainauth.Identity{UserID: BypassUserID},
			Role:     domainauth.RoleAdmin,
			Bypass:   true,
		})
	}

	if !domainauth.LooksLikeToken(credential) {
		return domainauth.Deny(domainauth.ReasonUnauthenticated, errMalformedCredential)
	}

	identity, err := g.identities.Resolve(ctx, credential)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidCredential) {
			return domainauth.Deny(domainauth.ReasonUnauthenticated, err)
		}
		return domainauth.DenyUpstream(domainauth.ReasonUnauthenticated, fmt.Errorf("resolve identity: %w", err))
	}
	if identity.UserID == "" {
		return domainauth.Deny(domainauth.ReasonUnauthenticated, errEmptyIdentity)
	}

	role, err := g.roles.GetRole(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return domainauth.Deny(domainauth.ReasonForbidden, fmt.Errorf("role lookup: %w", err))
		}
		return domainauth.DenyUpstream(domainauth.ReasonForbidden, fmt.Errorf("role lookup: %w", err))
	}
	if !policy.Permitted.Contains(role) {
		return domainauth.Deny(domainauth.ReasonForbidden, fmt.Errorf("%w: %s not in %s", errRoleNotPermitted, role, policy.Permitted))
	}

	principal := domainauth.Principal{Identity: identity, Role: role}
	if policy.Scope != nil {
		scoped, scopeErr := g.resolveScope(ctx, policy.Scope, identity.UserID)
		if scopeErr != nil {
			if errors.Is(scopeErr, ports.ErrNotFound) || errors.Is(scopeErr, errScopeMissing) {
				return domainauth.Deny(domainauth.ReasonForbidden, scopeErr)
			}
			return domainauth.DenyUpstream(domainauth.ReasonForbidden, scopeErr)
		}
		principal.Scoped = scoped
	}

	return domainauth.Allow(principal)
}

func (g *Gate) resolveScope(ctx context.Context, req *ScopeRequirement, userID string) (domainauth.ScopedIDs, error) {
	var out domainauth.ScopedIDs
	if req.Resolver == nil {
		return out, fmt.Errorf("%w: no resolver for %s", errScopeMissing, req.Kind)
	}
	id, err := req.Resolver.ResolveScopedID(ctx, userID)
	if err != nil {
		return out, fmt.Errorf("%s id lookup: %w", req.Kind, err)
	}
	if id == "" {
		return out, fmt.Errorf("%w: %s", errScopeMissing, req.Kind)
	}
	switch req.Kind {
	case ScopeHost:
		out.HostID = id
	case ScopeInfluencer:
		out.InfluencerID = id
	default:
		return out, fmt.Errorf("%w: unknown scope %q", errScopeMissing, req.Kind)
	}
	return out, nil
}

// isBypassSecret compares in constant time; a disabled or empty secret never matches.
func (g *Gate) isBypassSecret(credential string) bool {
	if !g.bypass.Enabled || g.bypass.Secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), []byte(g.bypass.Secret)) == 1
}

func (g *Gate) finish(
	ctx context.Context,
	span trace.Span,
	policy Policy,
	d domainauth.Decision,
	elapsed time.Duration,
) {
	defer span.End()

	if d.Allowed {
		span.SetAttributes(
			attribute.Bool("gate.allowed", true),
			attribute.String("gate.role", string(d.Principal.Role)),
		)
		if d.Principal.Bypass {
			g.logger.WarnContext(ctx, "admin bypass secret used", "policy", policy.Name)
		}
	} else {
		span.SetAttributes(
			attribute.Bool("gate.allowed", false),
			attribute.String("gate.reason", string(d.Reason)),
		)
		if d.Reason == domainauth.ReasonUpstreamError {
			span.SetStatus(codes.Error, "upstream error")
			g.logger.WarnContext(ctx, "authorization upstream failure",
				"policy", policy.Name, "outcome", d.Outcome, "error", d.Cause)
		} else {
			g.logger.DebugContext(ctx, "authorization denied",
				"policy", policy.Name, "reason", d.Reason, "error", d.Cause)
		}
	}

	if g.observer != nil {
		g.observer.ObserveDecision(policy.Name, d, elapsed)
	}
}
