package data

import (
	"context"
	"database/sql"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/data/listquery"
	"github.com/stayhub/stayhub-web/internal/domain/model"
)

var _ core.ReviewRepository = (*ReviewRepo)(nil)

const reviewColumns = `id, reservation_id, accommodation_id, user_id, rating, comment, created_at`

// ReviewRepo provides database operations for reviews.
type ReviewRepo struct {
	DB *sql.DB
}

// NewReviewRepo creates a new ReviewRepo.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{DB: db}
}

// Create inserts a review. The unique reservation_id constraint rejects a second review.
func (r *ReviewRepo) Create(ctx context.Context, in model.NewReview) (*model.Review, error) {
	if !validID(in.ReservationID) || !validID(in.AccommodationID) {
		return nil, notFound("reservation")
	}
	out, err := queryOne[model.Review](ctx, r.DB, `
		INSERT INTO reviews (reservation_id, accommodation_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+reviewColumns,
		in.ReservationID, in.AccommodationID, in.UserID, in.Rating, in.Comment,
	)
	if err != nil {
		return nil, mapErr(err, "review")
	}
	return &out, nil
}

// ListByAccommodation pages reviews for a listing, newest first.
func (r *ReviewRepo) ListByAccommodation(
	ctx context.Context,
	accommodationID string,
	limit, offset int,
) ([]*model.Review, int, error) {
	if !validID(accommodationID) {
		return []*model.Review{}, 0, nil
	}
	q := listquery.New("reviews", reviewColumns).
		WhereEq("accommodation_id", accommodationID).
		OrderBy("created_at DESC").
		Page(limit, offset)

	countSQL, countArgs := q.Count()
	total, err := queryInt(ctx, r.DB, countSQL, countArgs...)
	if err != nil {
		return nil, 0, mapErr(err, "review")
	}
	listSQL, listArgs := q.Select()
	items, err := queryAll[model.Review](ctx, r.DB, listSQL, listArgs...)
	if err != nil {
		return nil, 0, mapErr(err, "review")
	}
	return items, total, nil
}

// ExistsForReservation reports whether reservationID already has a review.
func (r *ReviewRepo) ExistsForReservation(ctx context.Context, reservationID string) (bool, error) {
	if !validID(reservationID) {
		return false, nil
	}
	n, err := queryInt(ctx, r.DB, `SELECT count(*) FROM reviews WHERE reservation_id = $1`, reservationID)
	if err != nil {
		return false, mapErr(err, "review")
	}
	return n > 0, nil
}
