package service

import (
	"context"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/util"
)

// ReviewServiceOptions groups dependencies for ReviewService.
type ReviewServiceOptions struct {
	Reviews      core.ReviewRepository
	Reservations core.ReservationRepository
	Clock        core.Clock
}

// ReviewService accepts reviews for completed stays.
type ReviewService struct {
	reviews      core.ReviewRepository
	reservations core.ReservationRepository
	clock        core.Clock
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(opts ReviewServiceOptions) *ReviewService {
	if opts.Reviews == nil || opts.Reservations == nil {
		panic("NewReviewService: Reviews and Reservations are required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.RealClock{}
	}
	return &ReviewService{reviews: opts.Reviews, reservations: opts.Reservations, clock: clock}
}

// Create stores a review. The reservation must belong to userID, be for the same
// accommodation, not be cancelled, and its check-out day (KST) must have passed.
func (s *ReviewService) Create(ctx context.Context, userID string, req model.CreateReviewRequest) (*model.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	res, err := s.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		return nil, err
	}
	if res.UserID != userID || res.AccommodationID != req.AccommodationID {
		return nil, apperrors.NotFound("reservation not found")
	}
	if res.Status == model.ReservationCancelled {
		return nil, apperrors.Forbidden("cancelled reservations cannot be reviewed")
	}
	checkOut, err := util.ParseDateKST(res.CheckOut)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "stored check_out is invalid")
	}
	if !util.HasDayPassedKST(checkOut, s.clock.Now()) {
		return nil, apperrors.Forbidden("reviews open after check-out")
	}

	exists, err := s.reviews.ExistsForReservation(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("this reservation has already been reviewed")
	}

	return s.reviews.Create(ctx, model.NewReview{
		ReservationID:   res.ID,
		AccommodationID: res.AccommodationID,
		UserID:          userID,
		Rating:          req.Rating,
		Comment:         req.Comment,
	})
}

// ListForAccommodation returns a page of reviews.
func (s *ReviewService) ListForAccommodation(
	ctx context.Context,
	accommodationID string,
	p util.Page,
) (Paged[*model.Review], error) {
	items, total, err := s.reviews.ListByAccommodation(ctx, accommodationID, p.Limit(), p.Offset())
	if err != nil {
		return Paged[*model.Review]{}, err
	}
	return newPaged(items, total, p), nil
}
