//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxAccommodationNameLen = 200
	maxDescriptionLen       = 5000
)

// AccommodationStatus controls listing visibility.
type AccommodationStatus string

const (
	AccommodationDraft     AccommodationStatus = "draft"
	AccommodationPublished AccommodationStatus = "published"
	AccommodationSuspended AccommodationStatus = "suspended"
)

// Valid reports whether the status is supported.
func (s AccommodationStatus) Valid() bool {
	switch s {
	case AccommodationDraft, AccommodationPublished, AccommodationSuspended:
		return true
	default:
		return false
	}
}

// ParseAccommodationStatus normalizes a status string and reports whether it is supported.
func ParseAccommodationStatus(v string) (AccommodationStatus, bool) {
	s := AccommodationStatus(strings.ToLower(strings.TrimSpace(v)))
	return s, s.Valid()
}

// Accommodation is a bookable listing owned by a host.
type Accommodation struct {
	ID            string              `json:"id"              db:"id"`
	HostID        string              `json:"host_id"         db:"host_id"`
	Name          string              `json:"name"            db:"name"`
	Description   string              `json:"description"     db:"description"`
	Region        string              `json:"region"          db:"region"`
	Address       string              `json:"address"         db:"address"`
	PricePerNight int64               `json:"price_per_night" db:"price_per_night"`
	MaxGuests     int                 `json:"max_guests"      db:"max_guests"`
	Status        AccommodationStatus `json:"status"          db:"status"`
	CreatedAt     time.Time           `json:"created_at"      db:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"      db:"updated_at"`
}

// AccommodationListOptions controls paging and filtering when listing accommodations.
// Nil filters are ignored.
type AccommodationListOptions struct {
	Limit  int
	Offset int
	Region *string
	Status *AccommodationStatus
	HostID *string
}

// CreateAccommodationRequest carries the fields a host supplies for a new listing.
// HostID is set from the caller's principal, never from the body.
type CreateAccommodationRequest struct {
	HostID        string `json:"-"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Region        string `json:"region"`
	Address       string `json:"address"`
	PricePerNight int64  `json:"price_per_night"`
	MaxGuests     int    `json:"max_guests"`
}

// Validate validates CreateAccommodationRequest.
func (r *CreateAccommodationRequest) Validate() error {
	if strings.TrimSpace(r.HostID) == "" {
		return errors.New("host_id is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Name) > maxAccommodationNameLen {
		return errors.New("name cannot exceed 200 characters")
	}
	if utf8.RuneCountInString(r.Description) > maxDescriptionLen {
		return errors.New("description cannot exceed 5000 characters")
	}
	r.Region = strings.TrimSpace(r.Region)
	if r.Region == "" {
		return errors.New("region is required and cannot be empty")
	}
	if r.PricePerNight <= 0 {
		return errors.New("price_per_night must be at least 1")
	}
	if r.MaxGuests <= 0 {
		return errors.New("max_guests must be at least 1")
	}
	return nil
}

// UpdateAccommodationRequest is a partial update from the owning host.
type UpdateAccommodationRequest struct {
	Name          *string              `json:"name,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Region        *string              `json:"region,omitempty"`
	Address       *string              `json:"address,omitempty"`
	PricePerNight *int64               `json:"price_per_night,omitempty"`
	MaxGuests     *int                 `json:"max_guests,omitempty"`
	Status        *AccommodationStatus `json:"status,omitempty"`
}

// HasUpdates reports whether any field is set.
func (r *UpdateAccommodationRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil || r.Region != nil || r.Address != nil ||
		r.PricePerNight != nil || r.MaxGuests != nil || r.Status != nil
}

// Validate validates UpdateAccommodationRequest. Hosts may move between draft and published;
// suspension is an admin action.
func (r *UpdateAccommodationRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxAccommodationNameLen {
			return errors.New("name cannot exceed 200 characters")
		}
		*r.Name = n
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		return errors.New("description cannot exceed 5000 characters")
	}
	if r.Region != nil && strings.TrimSpace(*r.Region) == "" {
		return errors.New("region cannot be empty")
	}
	if r.PricePerNight != nil && *r.PricePerNight <= 0 {
		return errors.New("price_per_night must be at least 1")
	}
	if r.MaxGuests != nil && *r.MaxGuests <= 0 {
		return errors.New("max_guests must be at least 1")
	}
	if r.Status != nil {
		s, ok := ParseAccommodationStatus(string(*r.Status))
		if !ok || s == AccommodationSuspended {
			return errors.New("status must be one of: draft, published")
		}
		*r.Status = s
	}
	return nil
}
