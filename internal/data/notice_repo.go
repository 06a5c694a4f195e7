package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/data/listquery"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
)

var _ core.NoticeRepository = (*NoticeRepo)(nil)

const noticeColumns = `id, title, body, published, pinned, created_by, created_at, updated_at`

// NoticeRepo provides database operations for notices.
type NoticeRepo struct {
	DB *sql.DB
}

// NewNoticeRepo creates a new NoticeRepo.
func NewNoticeRepo(db *sql.DB) *NoticeRepo {
	return &NoticeRepo{DB: db}
}

// Create inserts a notice.
func (r *NoticeRepo) Create(ctx context.Context, req *model.CreateNoticeRequest) (*model.Notice, error) {
	if req == nil {
		return nil, errors.New("create notice request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	out, err := queryOne[model.Notice](ctx, r.DB, `
		INSERT INTO notices (title, body, published, pinned, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+noticeColumns,
		req.Title, req.Body, req.Published, req.Pinned, req.CreatedBy,
	)
	if err != nil {
		return nil, mapErr(err, "notice")
	}
	return &out, nil
}

// GetByID returns a notice by id.
func (r *NoticeRepo) GetByID(ctx context.Context, id string) (*model.Notice, error) {
	if !validID(id) {
		return nil, notFound("notice")
	}
	out, err := queryOne[model.Notice](ctx, r.DB, `SELECT `+noticeColumns+` FROM notices WHERE id = $1`, id)
	if err != nil {
		return nil, mapErr(err, "notice")
	}
	return &out, nil
}

// List returns pinned notices first, then newest first.
func (r *NoticeRepo) List(ctx context.Context, opts model.NoticeListOptions) ([]*model.Notice, int, error) {
	q := listquery.New("notices", noticeColumns).
		OrderBy("pinned DESC").
		OrderBy("created_at DESC").
		Page(opts.Limit, opts.Offset)
	if opts.PublishedOnly {
		q.WhereEq("published", true)
	}

	countSQL, countArgs := q.Count()
	total, err := queryInt(ctx, r.DB, countSQL, countArgs...)
	if err != nil {
		return nil, 0, mapErr(err, "notice")
	}
	listSQL, listArgs := q.Select()
	items, err := queryAll[model.Notice](ctx, r.DB, listSQL, listArgs...)
	if err != nil {
		return nil, 0, mapErr(err, "notice")
	}
	return items, total, nil
}

// Update applies a partial update.
func (r *NoticeRepo) Update(ctx context.Context, id string, req model.UpdateNoticeRequest) (*model.Notice, error) {
	if !validID(id) {
		return nil, notFound("notice")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	var set setClause
	if req.Title != nil {
		set.add("title", *req.Title)
	}
	if req.Body != nil {
		set.add("body", *req.Body)
	}
	if req.Published != nil {
		set.add("published", *req.Published)
	}
	if req.Pinned != nil {
		set.add("pinned", *req.Pinned)
	}
	query := "UPDATE notices SET " + set.String() + ", updated_at = now()" +
		" WHERE id = " + set.next(id) +
		" RETURNING " + noticeColumns
	out, err := queryOne[model.Notice](ctx, r.DB, query, set.args...)
	if err != nil {
		return nil, mapErr(err, "notice")
	}
	return &out, nil
}

// Delete removes a notice and reports whether it existed.
func (r *NoticeRepo) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	n, err := exec(ctx, r.DB, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return false, mapErr(err, "notice")
	}
	return n > 0, nil
}
