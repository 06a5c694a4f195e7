package httpx

import (
	"context"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	"github.com/stayhub/stayhub-web/internal/service"
	"github.com/stayhub/stayhub-web/internal/util"
)

// AccommodationService is the listing API used by guest, host and admin routes.
type AccommodationService interface {
	ListPublished(ctx context.Context, p util.Page, region string) (service.Paged[*model.Accommodation], error)
	GetPublished(ctx context.Context, id string) (*model.Accommodation, error)
	ListForHost(ctx context.Context, hostID string, p util.Page) (service.Paged[*model.Accommodation], error)
	CreateForHost(ctx context.Context, hostID string, req model.CreateAccommodationRequest) (*model.Accommodation, error)
	UpdateForHost(
		ctx context.Context,
		hostID, id string,
		req model.UpdateAccommodationRequest,
	) (*model.Accommodation, error)
	ListAll(ctx context.Context, p util.Page, status string) (service.Paged[*model.Accommodation], error)
	SetStatus(ctx context.Context, id, status string) (*model.Accommodation, error)
}

// ReservationService books and manages stays.
type ReservationService interface {
	Create(ctx context.Context, userID string, req model.CreateReservationRequest) (*model.Reservation, error)
	ListForUser(ctx context.Context, userID string, p util.Page) (service.Paged[*model.Reservation], error)
	ListForHost(
		ctx context.Context,
		hostID string,
		p util.Page,
		status string,
	) (service.Paged[*model.Reservation], error)
	UpdateStatusForHost(
		ctx context.Context,
		hostID, id string,
		req model.UpdateReservationStatusRequest,
	) (*model.Reservation, error)
}

// ReviewService accepts and lists reviews.
type ReviewService interface {
	Create(ctx context.Context, userID string, req model.CreateReviewRequest) (*model.Review, error)
	ListForAccommodation(ctx context.Context, accommodationID string, p util.Page) (service.Paged[*model.Review], error)
}

// NoticeService manages announcements.
type NoticeService interface {
	List(ctx context.Context, p util.Page, publishedOnly bool) (service.Paged[*model.Notice], error)
	Create(ctx context.Context, createdBy string, req model.CreateNoticeRequest) (*model.Notice, error)
	Update(ctx context.Context, id string, req model.UpdateNoticeRequest) (*model.Notice, error)
	Delete(ctx context.Context, id string) error
}

// InfluencerService manages referral links and marketing analytics.
type InfluencerService interface {
	ListLinks(ctx context.Context, influencerID string) ([]model.ReferralLinkStats, error)
	CreateLink(ctx context.Context, influencerID string, req model.CreateReferralLinkRequest) (*model.ReferralLink, error)
	Dashboard(ctx context.Context, influencerID string) (*model.InfluencerDashboard, error)
	RecordClick(ctx context.Context, in service.ClickInput) (string, error)
	Analytics(ctx context.Context, p util.Page) ([]model.InfluencerAnalytics, error)
}

// PortalService builds the host/admin landing summary.
type PortalService interface {
	Summary(ctx context.Context, p domainauth.Principal) (*model.PortalSummary, error)
}

// RoleAdminService assigns and revokes roles.
type RoleAdminService interface {
	List(ctx context.Context, p util.Page, role string) ([]*model.RoleAssignment, error)
	Assign(ctx context.Context, actor domainauth.Principal, req model.SetRoleRequest) (*model.RoleAssignment, error)
	Revoke(ctx context.Context, actor domainauth.Principal, userID string) error
}

// Compile-time conformance of the concrete services.
var (
	_ AccommodationService = (*service.AccommodationService)(nil)
	_ ReservationService   = (*service.ReservationService)(nil)
	_ ReviewService        = (*service.ReviewService)(nil)
	_ NoticeService        = (*service.NoticeService)(nil)
	_ InfluencerService    = (*service.InfluencerService)(nil)
	_ PortalService        = (*service.PortalService)(nil)
	_ RoleAdminService     = (*service.RoleAdminService)(nil)
	_ AuthFlow             = (*service.AuthService)(nil)
	_ Authorizer           = (*service.Gate)(nil)
)
