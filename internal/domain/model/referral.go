package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var referralCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{4,32}$`)

// ValidReferralCode reports whether code is a well-formed referral code.
func ValidReferralCode(code string) bool { return referralCodePattern.MatchString(code) }

// ReferralLink is an influencer's tracked link.
type ReferralLink struct {
	ID           string    `json:"id"            db:"id"`
	InfluencerID string    `json:"influencer_id" db:"influencer_id"`
	Code         string    `json:"code"          db:"code"`
	LandingPath  string    `json:"landing_path"  db:"landing_path"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}

// CreateReferralLinkRequest creates a link. Code is generated when empty.
type CreateReferralLinkRequest struct {
	InfluencerID string `json:"-"`
	Code         string `json:"code,omitempty"`
	LandingPath  string `json:"landing_path"`
}

// Validate validates CreateReferralLinkRequest. LandingPath sanitising is done by the service.
func (r *CreateReferralLinkRequest) Validate() error {
	if strings.TrimSpace(r.InfluencerID) == "" {
		return errors.New("influencer_id is required")
	}
	r.Code = strings.TrimSpace(r.Code)
	if r.Code != "" && !ValidReferralCode(r.Code) {
		return errors.New("code must be 4-32 characters and contain only letters, digits, '-' or '_'")
	}
	return nil
}

// ReferralClick is one recorded visit through a referral link.
type ReferralClick struct {
	LinkID       string    `json:"link_id"                 db:"link_id"`
	ReferrerHost string    `json:"referrer_host,omitempty" db:"referrer_host"`
	CreatedAt    time.Time `json:"created_at"              db:"created_at"`
}

// ReferralLinkStats is a link with its click count.
type ReferralLinkStats struct {
	ReferralLink
	Clicks int `json:"clicks" db:"clicks"`
}

// ReferralTotals aggregates attributed reservations.
type ReferralTotals struct {
	Reservations int   `json:"reservations" db:"reservations"`
	Revenue      int64 `json:"revenue"      db:"revenue"`
}

// InfluencerDashboard is the influencer portal overview.
type InfluencerDashboard struct {
	InfluencerID string              `json:"influencer_id"`
	Links        []ReferralLinkStats `json:"links"`
	TotalClicks  int                 `json:"total_clicks"`
	Totals       ReferralTotals      `json:"totals"`
}

// InfluencerAnalytics is one row of the admin marketing report.
type InfluencerAnalytics struct {
	InfluencerID string `json:"influencer_id" db:"influencer_id"`
	Handle       string `json:"handle"        db:"handle"`
	Links        int    `json:"links"         db:"links"`
	Clicks       int    `json:"clicks"        db:"clicks"`
	Reservations int    `json:"reservations"  db:"reservations"`
	Revenue      int64  `json:"revenue"       db:"revenue"`
}

// PortalSummary is the shared host/admin landing summary.
type PortalSummary struct {
	Role                string `json:"role"`
	Accommodations      int    `json:"accommodations"`
	PendingReservations int    `json:"pending_reservations"`
}
