package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/data/listquery"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
)

var _ core.AccommodationRepository = (*AccommodationRepo)(nil)

const accommodationColumns = `id, host_id, name, description, region, address, price_per_night,
	max_guests, status, created_at, updated_at`

// AccommodationRepo provides database operations for accommodations.
type AccommodationRepo struct {
	DB *sql.DB
}

// NewAccommodationRepo creates a new AccommodationRepo.
func NewAccommodationRepo(db *sql.DB) *AccommodationRepo {
	return &AccommodationRepo{DB: db}
}

// Create inserts a draft listing.
func (r *AccommodationRepo) Create(
	ctx context.Context,
	req *model.CreateAccommodationRequest,
) (*model.Accommodation, error) {
	if req == nil {
		return nil, errors.New("create accommodation request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	out, err := queryOne[model.Accommodation](ctx, r.DB, `
		INSERT INTO accommodations (host_id, name, description, region, address, price_per_night, max_guests)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+accommodationColumns,
		req.HostID, req.Name, req.Description, req.Region, strings.TrimSpace(req.Address),
		req.PricePerNight, req.MaxGuests,
	)
	if err != nil {
		return nil, mapErr(err, "accommodation")
	}
	return &out, nil
}

// GetByID returns a listing regardless of status.
func (r *AccommodationRepo) GetByID(ctx context.Context, id string) (*model.Accommodation, error) {
	if !validID(id) {
		return nil, notFound("accommodation")
	}
	out, err := queryOne[model.Accommodation](ctx, r.DB,
		`SELECT `+accommodationColumns+` FROM accommodations WHERE id = $1`, id)
	if err != nil {
		return nil, mapErr(err, "accommodation")
	}
	return &out, nil
}

// List returns a page of listings, newest first, and the total matching count.
func (r *AccommodationRepo) List(
	ctx context.Context,
	opts model.AccommodationListOptions,
) ([]*model.Accommodation, int, error) {
	q := listquery.New("accommodations", accommodationColumns).
		OrderBy("created_at DESC").
		OrderBy("id").
		Page(opts.Limit, opts.Offset)
	if opts.Region != nil {
		q.WhereEq("region", *opts.Region)
	}
	if opts.Status != nil {
		q.WhereEq("status", *opts.Status)
	}
	if opts.HostID != nil {
		if !validID(*opts.HostID) {
			return []*model.Accommodation{}, 0, nil
		}
		q.WhereEq("host_id", *opts.HostID)
	}

	countSQL, countArgs := q.Count()
	total, err := queryInt(ctx, r.DB, countSQL, countArgs...)
	if err != nil {
		return nil, 0, mapErr(err, "accommodation")
	}
	listSQL, listArgs := q.Select()
	items, err := queryAll[model.Accommodation](ctx, r.DB, listSQL, listArgs...)
	if err != nil {
		return nil, 0, mapErr(err, "accommodation")
	}
	return items, total, nil
}

// UpdateForHost applies a partial update to a listing owned by params.HostID.
func (r *AccommodationRepo) UpdateForHost(
	ctx context.Context,
	params core.UpdateAccommodationParams,
) (*model.Accommodation, error) {
	if !validID(params.ID) || !validID(params.HostID) {
		return nil, notFound("accommodation")
	}
	req := params.Req
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var set setClause
	if req.Name != nil {
		set.add("name", *req.Name)
	}
	if req.Description != nil {
		set.add("description", *req.Description)
	}
	if req.Region != nil {
		set.add("region", strings.TrimSpace(*req.Region))
	}
	if req.Address != nil {
		set.add("address", strings.TrimSpace(*req.Address))
	}
	if req.PricePerNight != nil {
		set.add("price_per_night", *req.PricePerNight)
	}
	if req.MaxGuests != nil {
		set.add("max_guests", *req.MaxGuests)
	}
	if req.Status != nil {
		set.add("status", *req.Status)
	}

	query := "UPDATE accommodations SET " + set.String() + ", updated_at = now()" +
		" WHERE id = " + set.next(params.ID) +
		" AND host_id = " + set.next(params.HostID) +
		" AND status <> 'suspended'" +
		" RETURNING " + accommodationColumns
	out, err := queryOne[model.Accommodation](ctx, r.DB, query, set.args...)
	if err != nil {
		return nil, mapErr(err, "accommodation")
	}
	return &out, nil
}

// SetStatus is the admin status override.
func (r *AccommodationRepo) SetStatus(
	ctx context.Context,
	id string,
	status model.AccommodationStatus,
) (*model.Accommodation, error) {
	if !validID(id) {
		return nil, notFound("accommodation")
	}
	if !status.Valid() {
		return nil, apperrors.ValidationField("status", "status must be one of: draft, published, suspended")
	}
	out, err := queryOne[model.Accommodation](ctx, r.DB, `
		UPDATE accommodations SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+accommodationColumns, status, id)
	if err != nil {
		return nil, mapErr(err, "accommodation")
	}
	return &out, nil
}

// CountByHost counts listings in any status owned by hostID.
func (r *AccommodationRepo) CountByHost(ctx context.Context, hostID string) (int, error) {
	if !validID(hostID) {
		return 0, nil
	}
	n, err := queryInt(ctx, r.DB, `SELECT count(*) FROM accommodations WHERE host_id = $1`, hostID)
	if err != nil {
		return 0, mapErr(err, "accommodation")
	}
	return n, nil
}
