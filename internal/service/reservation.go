package service

import (
	"context"
	"log/slog"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/util"
)

// MaxStayNights caps a single reservation.
const MaxStayNights = 30

// ReservationServiceOptions groups dependencies for ReservationService.
type ReservationServiceOptions struct {
	Repos  ReservationRepos
	Clock  core.Clock
	Logger *slog.Logger
}

// ReservationRepos groups the repositories ReservationService reads.
type ReservationRepos struct {
	Reservations   core.ReservationRepository
	Accommodations core.AccommodationRepository
	Referrals      core.ReferralRepository
}

// ReservationService books stays. Dates are KST calendar days.
type ReservationService struct {
	reservations   core.ReservationRepository
	accommodations core.AccommodationRepository
	referrals      core.ReferralRepository
	clock          core.Clock
	logger         *slog.Logger
}

// NewReservationService constructs a new ReservationService.
func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Repos.Reservations == nil || opts.Repos.Accommodations == nil {
		panic("NewReservationService: Reservations and Accommodations repos are required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.RealClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReservationService{
		reservations:   opts.Repos.Reservations,
		accommodations: opts.Repos.Accommodations,
		referrals:      opts.Repos.Referrals,
		clock:          clock,
		logger:         logger,
	}
}

// Create books a stay for userID.
func (s *ReservationService) Create(
	ctx context.Context,
	userID string,
	req model.CreateReservationRequest,
) (*model.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	checkIn, err := util.ParseDateKST(req.CheckIn)
	if err != nil {
		return nil, apperrors.ValidationField("check_in", err.Error())
	}
	checkOut, err := util.ParseDateKST(req.CheckOut)
	if err != nil {
		return nil, apperrors.ValidationField("check_out", err.Error())
	}
	if checkIn.Before(util.TodayKST(s.clock.Now())) {
		return nil, apperrors.ValidationField("check_in", "check_in cannot be in the past")
	}
	nights, err := util.NightsBetween(checkIn, checkOut)
	if err != nil {
		return nil, apperrors.ValidationField("check_out", err.Error())
	}
	if nights > MaxStayNights {
		return nil, apperrors.Validationf("stay must be between 1 and %d nights", MaxStayNights)
	}

	acc, err := s.accommodations.GetByID(ctx, req.AccommodationID)
	if err != nil {
		return nil, err
	}
	if acc.Status != model.AccommodationPublished {
		return nil, apperrors.NotFound("accommodation not found")
	}
	if req.Guests > acc.MaxGuests {
		return nil, apperrors.Validationf("guests must be between 1 and %d", acc.MaxGuests)
	}

	overlap, err := s.reservations.HasOverlap(ctx, core.OverlapParams{
		AccommodationID: acc.ID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
	})
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, apperrors.Conflict("The requested dates are no longer available.")
	}

	return s.reservations.Create(ctx, model.NewReservation{
		AccommodationID: acc.ID,
		UserID:          userID,
		CheckIn:         util.FormatDateKST(checkIn),
		CheckOut:        util.FormatDateKST(checkOut),
		Nights:          nights,
		Guests:          req.Guests,
		TotalPrice:      int64(nights) * acc.PricePerNight,
		ReferralCode:    s.attributedCode(ctx, req.ReferralCode),
	})
}

// attributedCode keeps the referral code only when it names a real link; attribution is best effort.
func (s *ReservationService) attributedCode(ctx context.Context, code *string) *string {
	if code == nil || s.referrals == nil || !model.ValidReferralCode(*code) {
		return nil
	}
	if _, err := s.referrals.GetLinkByCode(ctx, *code); err != nil {
		if !apperrors.IsNotFound(err) {
			s.logger.WarnContext(ctx, "referral lookup failed", "code", *code, "error", err)
		}
		return nil
	}
	return code
}

// ListForUser returns the caller's reservations.
func (s *ReservationService) ListForUser(
	ctx context.Context,
	userID string,
	p util.Page,
) (Paged[*model.Reservation], error) {
	items, total, err := s.reservations.List(ctx, model.ReservationListOptions{
		Limit: p.Limit(), Offset: p.Offset(), UserID: &userID,
	})
	if err != nil {
		return Paged[*model.Reservation]{}, err
	}
	return newPaged(items, total, p), nil
}

// ListForHost returns reservations on listings owned by hostID, optionally by status.
func (s *ReservationService) ListForHost(
	ctx context.Context,
	hostID string,
	p util.Page,
	status string,
) (Paged[*model.Reservation], error) {
	opts := model.ReservationListOptions{Limit: p.Limit(), Offset: p.Offset(), HostID: &hostID}
	if status != "" {
		st := model.ReservationStatus(status)
		if !st.Valid() {
			return Paged[*model.Reservation]{}, apperrors.Validation("status must be one of: pending, confirmed, cancelled")
		}
		opts.Status = &st
	}
	items, total, err := s.reservations.List(ctx, opts)
	if err != nil {
		return Paged[*model.Reservation]{}, err
	}
	return newPaged(items, total, p), nil
}

// UpdateStatusForHost confirms or cancels a reservation on one of the host's listings.
func (s *ReservationService) UpdateStatusForHost(
	ctx context.Context,
	hostID, id string,
	req model.UpdateReservationStatusRequest,
) (*model.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	current, err := s.reservations.GetForHost(ctx, id, hostID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.Conflict("reservation is " + string(current.Status) + " and cannot become " + string(req.Status))
	}
	return s.reservations.UpdateStatusForHost(ctx, core.UpdateReservationStatusParams{
		ID:     id,
		HostID: hostID,
		From:   current.Status,
		To:     req.Status,
	})
}
