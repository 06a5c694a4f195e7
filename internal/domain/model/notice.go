package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxNoticeTitleLen = 200

// Notice is an operator announcement shown to guests.
type Notice struct {
	ID        string    `json:"id"         db:"id"`
	Title     string    `json:"title"      db:"title"`
	Body      string    `json:"body"       db:"body"`
	Published bool      `json:"published"  db:"published"`
	Pinned    bool      `json:"pinned"     db:"pinned"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NoticeListOptions controls paging; PublishedOnly hides drafts from guests.
type NoticeListOptions struct {
	Limit         int
	Offset        int
	PublishedOnly bool
}

// CreateNoticeRequest creates a notice. CreatedBy is the acting admin's user id.
type CreateNoticeRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	Pinned    bool   `json:"pinned"`
	CreatedBy string `json:"-"`
}

// Validate validates CreateNoticeRequest.
func (r *CreateNoticeRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxNoticeTitleLen {
		return errors.New("title cannot exceed 200 characters")
	}
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("body is required and cannot be empty")
	}
	return nil
}

// UpdateNoticeRequest is a partial notice update.
type UpdateNoticeRequest struct {
	Title     *string `json:"title,omitempty"`
	Body      *string `json:"body,omitempty"`
	Published *bool   `json:"published,omitempty"`
	Pinned    *bool   `json:"pinned,omitempty"`
}

// HasUpdates reports whether any field is set.
func (r *UpdateNoticeRequest) HasUpdates() bool {
	return r.Title != nil || r.Body != nil || r.Published != nil || r.Pinned != nil
}

// Validate validates UpdateNoticeRequest.
func (r *UpdateNoticeRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		if t == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(t) > maxNoticeTitleLen {
			return errors.New("title cannot exceed 200 characters")
		}
		*r.Title = t
	}
	if r.Body != nil && strings.TrimSpace(*r.Body) == "" {
		return errors.New("body cannot be empty")
	}
	return nil
}
