package httpx

import (
	"log/slog"
	"net/http"

	"github.com/stayhub/stayhub-web/internal/service"
)

// DefaultMetricsPath is where the Prometheus handler is mounted when none is configured.
const DefaultMetricsPath = "/metrics"

// RouterServices holds the handler groups and gate wiring needed by the router.
type RouterServices struct {
	Guard    *Guard
	Policies service.Policies

	Auth       *AuthHandlers
	Public     *PublicHandlers
	Guest      *GuestHandlers
	Host       *HostHandlers
	Influencer *InfluencerHandlers
	Admin      *AdminHandlers
	Summary    *SummaryHandler

	// AuthLimiter throttles /auth/*; nil disables throttling.
	AuthLimiter *RateLimiter
	// HealthChecks are probed by /healthz.
	HealthChecks map[string]HealthChecker
	// MetricsHandler is mounted at MetricsPath when set.
	MetricsHandler http.Handler
	MetricsPath    string
}

// MiddlewareConfig configures the chain applied around the router.
type MiddlewareConfig struct {
	Logger      *slog.Logger
	Recorder    HTTPRecorder
	ServiceName string
	// Tracing enables the server span middleware.
	Tracing bool
}

// NewRouter registers every route on a fresh ServeMux. Each protected route is bound
// to exactly one policy.
func NewRouter(s RouterServices) *http.ServeMux {
	if s.Guard == nil {
		panic("NewRouter: Guard is required")
	}
	mux := http.NewServeMux()

	if s.Auth != nil {
		registerAuthRoutes(mux, s.Auth, s.AuthLimiter)
	}
	if s.Public != nil {
		registerPublicRoutes(mux, s.Public)
	}
	if s.Guest != nil {
		registerGuestRoutes(mux, s.Guard, s.Policies, s.Guest)
	}
	if s.Host != nil {
		registerHostRoutes(mux, s.Guard, s.Policies, s.Host)
	}
	if s.Influencer != nil {
		registerInfluencerRoutes(mux, s.Guard, s.Policies, s.Influencer)
	}
	if s.Admin != nil {
		registerAdminRoutes(mux, s.Guard, s.Policies, s.Admin)
	}
	if s.Summary != nil {
		mux.HandleFunc("GET /api/portal/summary", s.Guard.Protect(s.Policies.HostOrAdmin, s.Summary.Summary))
	}

	health := healthHandler(s.HealthChecks)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	if s.MetricsHandler != nil {
		path := s.MetricsPath
		if path == "" {
			path = DefaultMetricsPath
		}
		mux.Handle("GET "+path, s.MetricsHandler)
	}

	return mux
}

// Handler wraps the router with the standard middleware chain. Metrics sits directly
// on the mux so the matched pattern is visible to it.
func Handler(mux *http.ServeMux, cfg MiddlewareConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var h http.Handler = mux
	h = Metrics(cfg.Recorder)(h)
	h = Logging(logger)(h)
	if cfg.Tracing {
		name := cfg.ServiceName
		if name == "" {
			name = "stayhub"
		}
		h = Tracing(name)(h)
	}
	h = RequestID()(h)
	return Recover(logger)(h)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, limiter *RateLimiter) {
	wrap := func(f http.HandlerFunc) http.Handler {
		if limiter == nil {
			return f
		}
		return limiter.Middleware(f)
	}
	mux.Handle("GET /auth/login", wrap(h.Login))
	mux.Handle("GET /auth/callback", wrap(h.Callback))
	mux.Handle("POST /auth/logout", wrap(h.Logout))
	mux.Handle("GET /auth/status", wrap(h.Status))
}

func registerPublicRoutes(mux *http.ServeMux, h *PublicHandlers) {
	mux.HandleFunc("GET /api/accommodations", h.ListAccommodations)
	mux.HandleFunc("GET /api/accommodations/{id}", h.GetAccommodation)
	mux.HandleFunc("GET /api/accommodations/{id}/reviews", h.ListReviews)
	mux.HandleFunc("GET /api/notices", h.ListNotices)
	mux.HandleFunc("GET /r/{code}", h.Referral)
}

func registerGuestRoutes(mux *http.ServeMux, g *Guard, p service.Policies, h *GuestHandlers) {
	mux.HandleFunc("POST /api/reservations", g.Protect(p.Authenticated, h.CreateReservation))
	mux.HandleFunc("GET /api/me/reservations", g.Protect(p.Authenticated, h.MyReservations))
	mux.HandleFunc("POST /api/accommodations/{id}/reviews", g.Protect(p.Authenticated, h.CreateReview))
}

func registerHostRoutes(mux *http.ServeMux, g *Guard, p service.Policies, h *HostHandlers) {
	mux.HandleFunc("GET /api/host/accommodations", g.Protect(p.Host, h.ListAccommodations))
	mux.HandleFunc("POST /api/host/accommodations", g.Protect(p.Host, h.CreateAccommodation))
	mux.HandleFunc("PATCH /api/host/accommodations/{id}", g.Protect(p.Host, h.UpdateAccommodation))
	mux.HandleFunc("GET /api/host/reservations", g.Protect(p.Host, h.ListReservations))
	mux.HandleFunc("PATCH /api/host/reservations/{id}", g.Protect(p.Host, h.UpdateReservation))
}

func registerInfluencerRoutes(mux *http.ServeMux, g *Guard, p service.Policies, h *InfluencerHandlers) {
	mux.HandleFunc("GET /api/influencer/links", g.Protect(p.Influencer, h.ListLinks))
	mux.HandleFunc("POST /api/influencer/links", g.Protect(p.Influencer, h.CreateLink))
	mux.HandleFunc("GET /api/influencer/dashboard", g.Protect(p.Influencer, h.Dashboard))
}

func registerAdminRoutes(mux *http.ServeMux, g *Guard, p service.Policies, h *AdminHandlers) {
	admin := func(f ProtectedHandler) http.HandlerFunc { return g.Protect(p.Admin, f) }

	mux.HandleFunc("GET /api/admin/notices", admin(h.ListNotices))
	mux.HandleFunc("POST /api/admin/notices", admin(h.CreateNotice))
	mux.HandleFunc("PATCH /api/admin/notices/{id}", admin(h.UpdateNotice))
	mux.HandleFunc("DELETE /api/admin/notices/{id}", admin(h.DeleteNotice))

	mux.HandleFunc("GET /api/admin/accommodations", admin(h.ListAccommodations))
	mux.HandleFunc("PATCH /api/admin/accommodations/{id}/status", admin(h.SetAccommodationStatus))

	mux.HandleFunc("GET /api/admin/roles", admin(h.ListRoles))
	mux.HandleFunc("PUT /api/admin/roles/{userId}", admin(h.SetRole))
	mux.HandleFunc("DELETE /api/admin/roles/{userId}", admin(h.DeleteRole))

	mux.HandleFunc("GET /api/admin/analytics/influencers", admin(h.InfluencerAnalytics))
}
