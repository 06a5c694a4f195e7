package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxReviewCommentLen = 2000

// Review is a guest's rating of a completed stay. One per reservation.
type Review struct {
	ID              string    `json:"id"               db:"id"`
	ReservationID   string    `json:"reservation_id"   db:"reservation_id"`
	AccommodationID string    `json:"accommodation_id" db:"accommodation_id"`
	UserID          string    `json:"user_id"          db:"user_id"`
	Rating          int       `json:"rating"           db:"rating"`
	Comment         string    `json:"comment"          db:"comment"`
	CreatedAt       time.Time `json:"created_at"       db:"created_at"`
}

// CreateReviewRequest is what a guest submits. AccommodationID comes from the route.
type CreateReviewRequest struct {
	AccommodationID string `json:"-"`
	ReservationID   string `json:"reservation_id"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment"`
}

// Validate validates CreateReviewRequest.
func (r *CreateReviewRequest) Validate() error {
	if strings.TrimSpace(r.ReservationID) == "" {
		return errors.New("reservation_id is required and cannot be empty")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	r.Comment = strings.TrimSpace(r.Comment)
	if utf8.RuneCountInString(r.Comment) > maxReviewCommentLen {
		return errors.New("comment cannot exceed 2000 characters")
	}
	return nil
}

// NewReview is the row the repository inserts.
type NewReview struct {
	ReservationID   string
	AccommodationID string
	UserID          string
	Rating          int
	Comment         string
}
