package model

import (
	"errors"
	"strings"
	"time"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Valid reports whether the status is supported.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a host may move a reservation from s to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationPending:
		return next == ReservationConfirmed || next == ReservationCancelled
	case ReservationConfirmed:
		return next == ReservationCancelled
	default:
		return false
	}
}

// Reservation is a guest booking. CheckIn and CheckOut are KST calendar days (YYYY-MM-DD).
type Reservation struct {
	ID              string            `json:"id"                      db:"id"`
	AccommodationID string            `json:"accommodation_id"        db:"accommodation_id"`
	UserID          string            `json:"user_id"                 db:"user_id"`
	CheckIn         string            `json:"check_in"                db:"check_in"`
	CheckOut        string            `json:"check_out"               db:"check_out"`
	Nights          int               `json:"nights"                  db:"nights"`
	Guests          int               `json:"guests"                  db:"guests"`
	TotalPrice      int64             `json:"total_price"             db:"total_price"`
	Status          ReservationStatus `json:"status"                  db:"status"`
	ReferralCode    *string           `json:"referral_code,omitempty" db:"referral_code"`
	CreatedAt       time.Time         `json:"created_at"              db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"              db:"updated_at"`
}

// ReservationListOptions filters reservation listings. Exactly one scope (UserID or HostID)
// is expected from the service layer.
type ReservationListOptions struct {
	Limit  int
	Offset int
	UserID *string
	HostID *string
	Status *ReservationStatus
}

// CreateReservationRequest is what a guest submits.
type CreateReservationRequest struct {
	AccommodationID string  `json:"accommodation_id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Guests          int     `json:"guests"`
	ReferralCode    *string `json:"referral_code,omitempty"`
}

// Validate performs shape checks; date arithmetic happens in the service against the KST clock.
func (r *CreateReservationRequest) Validate() error {
	if strings.TrimSpace(r.AccommodationID) == "" {
		return errors.New("accommodation_id is required and cannot be empty")
	}
	if strings.TrimSpace(r.CheckIn) == "" || strings.TrimSpace(r.CheckOut) == "" {
		return errors.New("check_in and check_out are required and cannot be empty")
	}
	if r.Guests <= 0 {
		return errors.New("guests must be at least 1")
	}
	if r.ReferralCode != nil {
		c := strings.TrimSpace(*r.ReferralCode)
		if c == "" {
			r.ReferralCode = nil
		} else {
			r.ReferralCode = &c
		}
	}
	return nil
}

// NewReservation is the fully computed row the repository inserts.
type NewReservation struct {
	AccommodationID string
	UserID          string
	CheckIn         string
	CheckOut        string
	Nights          int
	Guests          int
	TotalPrice      int64
	ReferralCode    *string
}

// UpdateReservationStatusRequest is a host status change.
type UpdateReservationStatusRequest struct {
	Status ReservationStatus `json:"status"`
}

// Validate validates UpdateReservationStatusRequest.
func (r *UpdateReservationStatusRequest) Validate() error {
	r.Status = ReservationStatus(strings.ToLower(strings.TrimSpace(string(r.Status))))
	if r.Status != ReservationConfirmed && r.Status != ReservationCancelled {
		return errors.New("status must be one of: confirmed, cancelled")
	}
	return nil
}
