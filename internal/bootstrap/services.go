package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/stayhub/stayhub-web/config"
	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/data"
	"github.com/stayhub/stayhub-web/internal/observability/metrics"
	"github.com/stayhub/stayhub-web/internal/observability/notify"
	"github.com/stayhub/stayhub-web/internal/observability/notify/pagerduty"
	"github.com/stayhub/stayhub-web/internal/observability/notify/slack"
	"github.com/stayhub/stayhub-web/internal/service"
)

// Repositories holds the Postgres-backed repositories and the optional Redis cache.
type Repositories struct {
	Accommodations *data.AccommodationRepo
	Reservations   *data.ReservationRepo
	Reviews        *data.ReviewRepo
	Notices        *data.NoticeRepo
	Referrals      *data.ReferralRepo
	Roles          *data.RoleRepo
	Hosts          *data.HostRepo
	Influencers    *data.InfluencerRepo
	// Cache is nil when Redis is not configured.
	Cache core.CacheRepository
}

// NewRepositories builds every repository over db. redisClient may be nil.
func NewRepositories(db *sql.DB, redisClient redis.UniversalClient) Repositories {
	repos := Repositories{
		Accommodations: data.NewAccommodationRepo(db),
		Reservations:   data.NewReservationRepo(db),
		Reviews:        data.NewReviewRepo(db),
		Notices:        data.NewNoticeRepo(db),
		Referrals:      data.NewReferralRepo(db),
		Roles:          data.NewRoleRepo(db),
		Hosts:          data.NewHostRepo(db),
		Influencers:    data.NewInfluencerRepo(db),
	}
	if redisClient != nil {
		repos.Cache = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// NewRoleAdminService wires the role administration service over db.
func NewRoleAdminService(repos Repositories, logger *slog.Logger) *service.RoleAdminService {
	return service.NewRoleAdminService(service.RoleAdminServiceOptions{
		Repos: service.RoleAdminRepos{
			Roles:       repos.Roles,
			Hosts:       repos.Hosts,
			Influencers: repos.Influencers,
		},
		Logger: logger,
	})
}

// Observability holds the metrics registry and the decision observers.
type Observability struct {
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	GateMetrics *metrics.GateMetrics
	// Upstream is nil unless at least one notification sink is configured.
	Upstream *notify.UpstreamWatch
}

// ServiceContainer holds every service the HTTP layer and the runtime need.
type ServiceContainer struct {
	DB       *sql.DB
	Repos    Repositories
	Auth     *AuthComponents
	Gate     *service.Gate
	Policies service.Policies

	Accommodations *service.AccommodationService
	Reservations   *service.ReservationService
	Reviews        *service.ReviewService
	Notices        *service.NoticeService
	Influencers    *service.InfluencerService
	Portal         *service.PortalService
	RoleAdmin      *service.RoleAdminService

	Observability Observability
}

// ServiceDeps contains the dependencies needed to build services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Auth        *AuthComponents
	Logger      *slog.Logger
}

// NewServices creates the marketplace services and the authorization gate.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return nil, errors.New("service dependencies and config are required")
	}
	if deps.DB == nil {
		return nil, errors.New("database connection is required")
	}
	if deps.Auth == nil || deps.Auth.Identities == nil || deps.Auth.Roles == nil {
		return nil, errors.New("auth components are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	obs, err := buildObservability(deps.Config, logger)
	if err != nil {
		return nil, err
	}

	repos := NewRepositories(deps.DB, deps.RedisClient)
	c := &ServiceContainer{
		DB:            deps.DB,
		Repos:         repos,
		Auth:          deps.Auth,
		Observability: obs,
		Policies: service.NewPolicies(service.PolicyOptions{
			Hosts:       deps.Auth.Hosts,
			Influencers: deps.Auth.Influencers,
		}),
	}
	c.Gate = buildGate(deps.Config.Auth, deps.Auth, obs, logger)

	c.Accommodations = service.NewAccommodationService(service.AccommodationServiceOptions{
		Repo: repos.Accommodations,
	})
	c.Reservations = service.NewReservationService(service.ReservationServiceOptions{
		Repos: service.ReservationRepos{
			Reservations:   repos.Reservations,
			Accommodations: repos.Accommodations,
			Referrals:      repos.Referrals,
		},
		Logger: logger,
	})
	c.Reviews = service.NewReviewService(service.ReviewServiceOptions{
		Reviews:      repos.Reviews,
		Reservations: repos.Reservations,
	})
	c.Notices = service.NewNoticeService(repos.Notices)
	c.Influencers = service.NewInfluencerService(service.InfluencerServiceOptions{
		Referrals: repos.Referrals,
		Cache:     repos.Cache,
		Logger:    logger,
	})
	c.Portal = service.NewPortalService(service.PortalServiceOptions{
		Accommodations: repos.Accommodations,
		Reservations:   repos.Reservations,
		Hosts:          repos.Hosts,
	})
	c.RoleAdmin = NewRoleAdminService(repos, logger)

	return c, nil
}

func buildGate(
	cfg config.AuthConfig,
	auth *AuthComponents,
	obs Observability,
	logger *slog.Logger,
) *service.Gate {
	observers := service.GateObservers{obs.GateMetrics}
	if obs.Upstream != nil {
		observers = append(observers, obs.Upstream)
	}
	if cfg.Bypass.Enabled {
		logger.Warn("admin bypass secret enabled")
	}
	return service.NewGate(service.GateOptions{
		Identities: auth.Identities,
		Roles:      auth.Roles,
		Config: service.GateConfig{
			Bypass: service.BypassConfig{
				Enabled: cfg.Bypass.Enabled,
				Secret:  cfg.Bypass.Secret,
			},
			Logger:   logger,
			Observer: observers,
		},
	})
}

func buildObservability(cfg *config.AppConfig, logger *slog.Logger) (Observability, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpMetrics, err := metrics.NewHTTPMetrics(reg)
	if err != nil {
		return Observability{}, fmt.Errorf("http metrics: %w", err)
	}
	gateMetrics, err := metrics.NewGateMetrics(reg)
	if err != nil {
		return Observability{}, fmt.Errorf("gate metrics: %w", err)
	}

	upstream, err := buildUpstreamWatch(cfg.Observability.Notifications, logger)
	if err != nil {
		return Observability{}, err
	}
	return Observability{
		Registry:    reg,
		HTTPMetrics: httpMetrics,
		GateMetrics: gateMetrics,
		Upstream:    upstream,
	}, nil
}

func buildUpstreamWatch(cfg config.ObservabilityNotificationsConfig, logger *slog.Logger) (*notify.UpstreamWatch, error) {
	if !cfg.HasSinks() {
		return nil, nil
	}

	var sinks notify.Multi
	if cfg.Slack.Enabled {
		s, err := slack.NewClient(slack.Config{
			WebhookURL: cfg.Slack.WebhookURL,
			Channel:    cfg.Slack.Channel,
			Username:   cfg.Slack.Username,
			Timeout:    cfg.Timeout,
			RetryLimit: cfg.RetryLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("slack sink: %w", err)
		}
		sinks = append(sinks, s)
	}
	if cfg.PagerDuty.Enabled {
		pd, err := pagerduty.NewClient(pagerduty.Config{
			RoutingKey: cfg.PagerDuty.RoutingKey,
			Source:     cfg.PagerDuty.Source,
			Component:  cfg.PagerDuty.Component,
			Timeout:    cfg.Timeout,
			RetryLimit: cfg.RetryLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("pagerduty sink: %w", err)
		}
		sinks = append(sinks, pd)
	}

	logger.Info("upstream failure alerts enabled",
		"sinks", len(sinks),
		"threshold", cfg.Upstream.Threshold,
		"cooldown", cfg.Upstream.Cooldown)
	return notify.NewUpstreamWatch(sinks, notify.UpstreamWatchConfig{
		Threshold:   cfg.Upstream.Threshold,
		Cooldown:    cfg.Upstream.Cooldown,
		SendTimeout: cfg.Timeout,
		Source:      "stayhub",
		Logger:      logger,
	}), nil
}

type dbHealth struct{ db *sql.DB }

func (h dbHealth) Health(ctx context.Context) error { return h.db.PingContext(ctx) }
