package data

import (
	"context"
	"database/sql"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/data/listquery"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
)

var _ core.ReservationRepository = (*ReservationRepo)(nil)

// Dates are stored as DATE and read back as KST calendar-day strings.
const reservationColumns = `id, accommodation_id, user_id,
	to_char(check_in, 'YYYY-MM-DD') AS check_in, to_char(check_out, 'YYYY-MM-DD') AS check_out,
	nights, guests, total_price, status, referral_code, created_at, updated_at`

const hostOwnsAccommodation = `accommodation_id IN (SELECT id FROM accommodations WHERE host_id = ?)`

// ReservationRepo provides database operations for reservations.
type ReservationRepo struct {
	DB *sql.DB
}

// NewReservationRepo creates a new ReservationRepo.
func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{DB: db}
}

// Create inserts a pending reservation. The no-overlap exclusion constraint turns a lost
// race into a Conflict.
func (r *ReservationRepo) Create(ctx context.Context, in model.NewReservation) (*model.Reservation, error) {
	if !validID(in.AccommodationID) {
		return nil, notFound("accommodation")
	}
	out, err := queryOne[model.Reservation](ctx, r.DB, `
		INSERT INTO reservations
			(accommodation_id, user_id, check_in, check_out, nights, guests, total_price, referral_code)
		VALUES ($1, $2, $3::date, $4::date, $5, $6, $7, $8)
		RETURNING `+reservationColumns,
		in.AccommodationID, in.UserID, in.CheckIn, in.CheckOut,
		in.Nights, in.Guests, in.TotalPrice, in.ReferralCode,
	)
	if err != nil {
		return nil, mapErr(err, "reservation")
	}
	return &out, nil
}

// GetByID returns a reservation by id.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	if !validID(id) {
		return nil, notFound("reservation")
	}
	out, err := queryOne[model.Reservation](ctx, r.DB,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	if err != nil {
		return nil, mapErr(err, "reservation")
	}
	return &out, nil
}

// GetForHost returns a reservation only when hostID owns its accommodation.
func (r *ReservationRepo) GetForHost(ctx context.Context, id, hostID string) (*model.Reservation, error) {
	if !validID(id) || !validID(hostID) {
		return nil, notFound("reservation")
	}
	out, err := queryOne[model.Reservation](ctx, r.DB, `
		SELECT `+reservationColumns+` FROM reservations
		WHERE id = $1
		  AND accommodation_id IN (SELECT id FROM accommodations WHERE host_id = $2)`, id, hostID)
	if err != nil {
		return nil, mapErr(err, "reservation")
	}
	return &out, nil
}

// List returns a page of reservations, newest first, with the total count.
func (r *ReservationRepo) List(
	ctx context.Context,
	opts model.ReservationListOptions,
) ([]*model.Reservation, int, error) {
	q := listquery.New("reservations", reservationColumns).
		OrderBy("created_at DESC").
		OrderBy("id").
		Page(opts.Limit, opts.Offset)
	if opts.UserID != nil {
		q.WhereEq("user_id", *opts.UserID)
	}
	if opts.HostID != nil {
		if !validID(*opts.HostID) {
			return []*model.Reservation{}, 0, nil
		}
		q.Where(hostOwnsAccommodation, *opts.HostID)
	}
	if opts.Status != nil {
		q.WhereEq("status", *opts.Status)
	}

	countSQL, countArgs := q.Count()
	total, err := queryInt(ctx, r.DB, countSQL, countArgs...)
	if err != nil {
		return nil, 0, mapErr(err, "reservation")
	}
	listSQL, listArgs := q.Select()
	items, err := queryAll[model.Reservation](ctx, r.DB, listSQL, listArgs...)
	if err != nil {
		return nil, 0, mapErr(err, "reservation")
	}
	return items, total, nil
}

// UpdateStatusForHost moves a reservation from params.From to params.To. A row that is
// no longer in From yields a Conflict.
func (r *ReservationRepo) UpdateStatusForHost(
	ctx context.Context,
	params core.UpdateReservationStatusParams,
) (*model.Reservation, error) {
	if !validID(params.ID) || !validID(params.HostID) {
		return nil, notFound("reservation")
	}
	out, err := queryOne[model.Reservation](ctx, r.DB, `
		UPDATE reservations SET status = $1, updated_at = now()
		WHERE id = $2
		  AND status = $3
		  AND accommodation_id IN (SELECT id FROM accommodations WHERE host_id = $4)
		RETURNING `+reservationColumns,
		params.To, params.ID, params.From, params.HostID,
	)
	if err != nil {
		mapped := mapErr(err, "reservation")
		if apperrors.IsNotFound(mapped) {
			return nil, apperrors.Conflict("reservation was changed by another request; reload and try again")
		}
		return nil, mapped
	}
	return &out, nil
}

// HasOverlap reports whether a non-cancelled reservation intersects [CheckIn, CheckOut).
func (r *ReservationRepo) HasOverlap(ctx context.Context, params core.OverlapParams) (bool, error) {
	if !validID(params.AccommodationID) {
		return false, nil
	}
	n, err := queryInt(ctx, r.DB, `
		SELECT count(*) FROM reservations
		WHERE accommodation_id = $1
		  AND status <> 'cancelled'
		  AND daterange(check_in, check_out) && daterange($2::date, $3::date)`,
		params.AccommodationID, params.CheckIn, params.CheckOut)
	if err != nil {
		return false, mapErr(err, "reservation")
	}
	return n > 0, nil
}

// CountPendingByHost counts pending reservations on hostID's listings.
func (r *ReservationRepo) CountPendingByHost(ctx context.Context, hostID string) (int, error) {
	if !validID(hostID) {
		return 0, nil
	}
	n, err := queryInt(ctx, r.DB, `
		SELECT count(*) FROM reservations
		WHERE status = 'pending'
		  AND accommodation_id IN (SELECT id FROM accommodations WHERE host_id = $1)`, hostID)
	if err != nil {
		return 0, mapErr(err, "reservation")
	}
	return n, nil
}

// CountPending counts pending reservations across the marketplace.
func (r *ReservationRepo) CountPending(ctx context.Context) (int, error) {
	n, err := queryInt(ctx, r.DB, `SELECT count(*) FROM reservations WHERE status = 'pending'`)
	if err != nil {
		return 0, mapErr(err, "reservation")
	}
	return n, nil
}
