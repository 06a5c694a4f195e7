package service

import (
	"context"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/util"
)

// NoticeService manages operator notices.
type NoticeService struct {
	repo core.NoticeRepository
}

// NewNoticeService constructs a new NoticeService.
func NewNoticeService(repo core.NoticeRepository) *NoticeService {
	if repo == nil {
		panic("NewNoticeService: repo is required")
	}
	return &NoticeService{repo: repo}
}

// List returns notices; publishedOnly hides drafts.
func (s *NoticeService) List(ctx context.Context, p util.Page, publishedOnly bool) (Paged[*model.Notice], error) {
	items, total, err := s.repo.List(ctx, model.NoticeListOptions{
		Limit: p.Limit(), Offset: p.Offset(), PublishedOnly: publishedOnly,
	})
	if err != nil {
		return Paged[*model.Notice]{}, err
	}
	return newPaged(items, total, p), nil
}

// Create creates a notice authored by createdBy.
func (s *NoticeService) Create(ctx context.Context, createdBy string, req model.CreateNoticeRequest) (*model.Notice, error) {
	req.CreatedBy = createdBy
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.repo.Create(ctx, &req)
}

// Update applies a partial update.
func (s *NoticeService) Update(ctx context.Context, id string, req model.UpdateNoticeRequest) (*model.Notice, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.repo.Update(ctx, id, req)
}

// Delete removes a notice; NotFound when absent.
func (s *NoticeService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("notice not found")
	}
	return nil
}
