package service

import (
	"context"

	"github.com/stayhub/stayhub-web/internal/core"
	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
)

// PortalServiceOptions groups dependencies for PortalService.
type PortalServiceOptions struct {
	Accommodations core.AccommodationRepository
	Reservations   core.ReservationRepository
	Hosts          core.HostRepository
}

// PortalService builds the landing summary shared by hosts and admins.
type PortalService struct {
	accommodations core.AccommodationRepository
	reservations   core.ReservationRepository
	hosts          core.HostRepository
}

// NewPortalService constructs a new PortalService.
func NewPortalService(opts PortalServiceOptions) *PortalService {
	if opts.Accommodations == nil || opts.Reservations == nil || opts.Hosts == nil {
		panic("NewPortalService: all repositories are required")
	}
	return &PortalService{
		accommodations: opts.Accommodations,
		reservations:   opts.Reservations,
		hosts:          opts.Hosts,
	}
}

// Summary returns host-scoped counts for hosts and marketplace-wide counts for admins.
func (s *PortalService) Summary(ctx context.Context, p domainauth.Principal) (*model.PortalSummary, error) {
	out := &model.PortalSummary{Role: string(p.Role)}

	if p.Role == domainauth.RoleHost {
		hostID, err := s.hosts.ResolveScopedID(ctx, p.Identity.UserID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return out, nil
			}
			return nil, err
		}
		if out.Accommodations, err = s.accommodations.CountByHost(ctx, hostID); err != nil {
			return nil, err
		}
		if out.PendingReservations, err = s.reservations.CountPendingByHost(ctx, hostID); err != nil {
			return nil, err
		}
		return out, nil
	}

	_, total, err := s.accommodations.List(ctx, model.AccommodationListOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	out.Accommodations = total
	if out.PendingReservations, err = s.reservations.CountPending(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
