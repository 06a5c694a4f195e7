package core

import (
	"context"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// Service implementations depend on these interfaces; internal/data provides them.

// AccommodationRepository persists listings.
type AccommodationRepository interface {
	Create(ctx context.Context, req *model.CreateAccommodationRequest) (*model.Accommodation, error)
	GetByID(ctx context.Context, id string) (*model.Accommodation, error)
	// List returns a page of listings and the total matching count.
	List(ctx context.Context, opts model.AccommodationListOptions) ([]*model.Accommodation, int, error)
	// UpdateForHost updates a listing only when it is owned by hostID; not found otherwise.
	UpdateForHost(ctx context.Context, params UpdateAccommodationParams) (*model.Accommodation, error)
	SetStatus(ctx context.Context, id string, status model.AccommodationStatus) (*model.Accommodation, error)
	CountByHost(ctx context.Context, hostID string) (int, error)
}

// UpdateAccommodationParams groups UpdateForHost parameters to keep param count ≤3.
type UpdateAccommodationParams struct {
	ID     string
	HostID string
	Req    model.UpdateAccommodationRequest
}

// ReservationRepository persists bookings.
type ReservationRepository interface {
	Create(ctx context.Context, r model.NewReservation) (*model.Reservation, error)
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	// GetForHost returns a reservation only when its accommodation is owned by hostID.
	GetForHost(ctx context.Context, id, hostID string) (*model.Reservation, error)
	List(ctx context.Context, opts model.ReservationListOptions) ([]*model.Reservation, int, error)
	// UpdateStatusForHost transitions a reservation whose accommodation is owned by hostID.
	UpdateStatusForHost(ctx context.Context, params UpdateReservationStatusParams) (*model.Reservation, error)
	// HasOverlap reports whether a non-cancelled reservation overlaps [checkIn, checkOut).
	HasOverlap(ctx context.Context, params OverlapParams) (bool, error)
	CountPendingByHost(ctx context.Context, hostID string) (int, error)
	CountPending(ctx context.Context) (int, error)
}

// UpdateReservationStatusParams groups UpdateStatusForHost parameters. The update only
// applies while the row is still in From.
type UpdateReservationStatusParams struct {
	ID     string
	HostID string
	From   model.ReservationStatus
	To     model.ReservationStatus
}

// OverlapParams groups HasOverlap parameters.
type OverlapParams struct {
	AccommodationID string
	CheckIn         string
	CheckOut        string
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r model.NewReview) (*model.Review, error)
	ListByAccommodation(ctx context.Context, accommodationID string, limit, offset int) ([]*model.Review, int, error)
	ExistsForReservation(ctx context.Context, reservationID string) (bool, error)
}

// NoticeRepository persists notices.
type NoticeRepository interface {
	Create(ctx context.Context, req *model.CreateNoticeRequest) (*model.Notice, error)
	GetByID(ctx context.Context, id string) (*model.Notice, error)
	List(ctx context.Context, opts model.NoticeListOptions) ([]*model.Notice, int, error)
	Update(ctx context.Context, id string, req model.UpdateNoticeRequest) (*model.Notice, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RoleRepository reads and writes user_roles.
type RoleRepository interface {
	GetRole(ctx context.Context, userID string) (domainauth.Role, error)
	Upsert(ctx context.Context, req model.SetRoleRequest) (*model.RoleAssignment, error)
	Delete(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context, opts model.RoleListOptions) ([]*model.RoleAssignment, error)
}

// HostRepository manages host records.
type HostRepository interface {
	ResolveScopedID(ctx context.Context, userID string) (string, error)
	Ensure(ctx context.Context, userID, displayName string) (*model.Host, error)
}

// InfluencerRepository manages influencer records.
type InfluencerRepository interface {
	ResolveScopedID(ctx context.Context, userID string) (string, error)
	Ensure(ctx context.Context, userID, handle string) (*model.Influencer, error)
}

// ReferralRepository persists referral links, clicks and attribution stats.
type ReferralRepository interface {
	CreateLink(ctx context.Context, req *model.CreateReferralLinkRequest) (*model.ReferralLink, error)
	GetLinkByCode(ctx context.Context, code string) (*model.ReferralLink, error)
	ListLinkStats(ctx context.Context, influencerID string) ([]model.ReferralLinkStats, error)
	RecordClick(ctx context.Context, click model.ReferralClick) error
	Totals(ctx context.Context, influencerID string) (model.ReferralTotals, error)
	Analytics(ctx context.Context, limit, offset int) ([]model.InfluencerAnalytics, error)
}
