package service

import (
	"context"
	"strings"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/util"
)

// AccommodationServiceOptions groups dependencies for AccommodationService.
type AccommodationServiceOptions struct {
	Repo core.AccommodationRepository
}

// AccommodationService serves listings to guests, hosts and admins.
type AccommodationService struct {
	repo core.AccommodationRepository
}

// NewAccommodationService constructs a new AccommodationService.
func NewAccommodationService(opts AccommodationServiceOptions) *AccommodationService {
	if opts.Repo == nil {
		panic("NewAccommodationService: Repo is required")
	}
	return &AccommodationService{repo: opts.Repo}
}

// Paged is a page of items plus paging metadata.
type Paged[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

func newPaged[T any](items []T, total int, p util.Page) Paged[T] {
	if items == nil {
		items = []T{}
	}
	pages := p.TotalPages(total)
	return Paged[T]{
		Items:      items,
		Total:      total,
		Page:       p.Number,
		PageSize:   p.Size,
		TotalPages: pages,
		HasNext:    p.Number < pages,
	}
}

// ListPublished returns published listings, optionally filtered by region.
func (s *AccommodationService) ListPublished(
	ctx context.Context,
	p util.Page,
	region string,
) (Paged[*model.Accommodation], error) {
	status := model.AccommodationPublished
	opts := model.AccommodationListOptions{Limit: p.Limit(), Offset: p.Offset(), Status: &status}
	if r := strings.TrimSpace(region); r != "" {
		opts.Region = &r
	}
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return Paged[*model.Accommodation]{}, err
	}
	return newPaged(items, total, p), nil
}

// GetPublished returns a listing only when it is published.
func (s *AccommodationService) GetPublished(ctx context.Context, id string) (*model.Accommodation, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != model.AccommodationPublished {
		return nil, apperrors.NotFound("accommodation not found")
	}
	return a, nil
}

// ListForHost returns every listing owned by hostID.
func (s *AccommodationService) ListForHost(
	ctx context.Context,
	hostID string,
	p util.Page,
) (Paged[*model.Accommodation], error) {
	items, total, err := s.repo.List(ctx, model.AccommodationListOptions{
		Limit: p.Limit(), Offset: p.Offset(), HostID: &hostID,
	})
	if err != nil {
		return Paged[*model.Accommodation]{}, err
	}
	return newPaged(items, total, p), nil
}

// CreateForHost creates a draft listing owned by hostID.
func (s *AccommodationService) CreateForHost(
	ctx context.Context,
	hostID string,
	req model.CreateAccommodationRequest,
) (*model.Accommodation, error) {
	req.HostID = hostID
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.repo.Create(ctx, &req)
}

// UpdateForHost applies a partial update to a listing owned by hostID.
func (s *AccommodationService) UpdateForHost(
	ctx context.Context,
	hostID, id string,
	req model.UpdateAccommodationRequest,
) (*model.Accommodation, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.repo.UpdateForHost(ctx, core.UpdateAccommodationParams{ID: id, HostID: hostID, Req: req})
}

// ListAll returns listings in any status for admins.
func (s *AccommodationService) ListAll(
	ctx context.Context,
	p util.Page,
	status string,
) (Paged[*model.Accommodation], error) {
	opts := model.AccommodationListOptions{Limit: p.Limit(), Offset: p.Offset()}
	if strings.TrimSpace(status) != "" {
		st, ok := model.ParseAccommodationStatus(status)
		if !ok {
			return Paged[*model.Accommodation]{}, apperrors.Validation("status must be one of: draft, published, suspended")
		}
		opts.Status = &st
	}
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return Paged[*model.Accommodation]{}, err
	}
	return newPaged(items, total, p), nil
}

// SetStatus is the admin moderation action.
func (s *AccommodationService) SetStatus(ctx context.Context, id, status string) (*model.Accommodation, error) {
	st, ok := model.ParseAccommodationStatus(status)
	if !ok {
		return nil, apperrors.Validation("status must be one of: draft, published, suspended")
	}
	return s.repo.SetStatus(ctx, id, st)
}
