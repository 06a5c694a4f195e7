package testutil

import (
	"context"
	"database/sql"
	"time"
)

// Seeds insert rows with raw SQL so repository tests do not depend on the code under test.

// SeedHost inserts a host record and its user_roles row and returns the host id.
func SeedHost(t TestingTB, db *sql.DB, userID string) string {
	t.Helper()
	seedRole(t, db, userID, "host")
	return seedID(t, db, `INSERT INTO hosts (user_id, display_name) VALUES ($1, $1) RETURNING id::text`, userID)
}

// SeedInfluencer inserts an influencer record and its user_roles row and returns the influencer id.
func SeedInfluencer(t TestingTB, db *sql.DB, userID string) string {
	t.Helper()
	seedRole(t, db, userID, "influencer")
	return seedID(t, db, `INSERT INTO influencers (user_id, handle) VALUES ($1, $1) RETURNING id::text`, userID)
}

// AccommodationSeed describes a listing to insert.
type AccommodationSeed struct {
	HostID        string
	Name          string
	Region        string
	PricePerNight int64
	MaxGuests     int
	Status        string
}

// SeedAccommodation inserts a listing, defaulting to a published two-guest room in Seoul.
func SeedAccommodation(t TestingTB, db *sql.DB, s AccommodationSeed) string {
	t.Helper()
	if s.Name == "" {
		s.Name = "Test stay"
	}
	if s.Region == "" {
		s.Region = "seoul"
	}
	if s.PricePerNight == 0 {
		s.PricePerNight = 100000
	}
	if s.MaxGuests == 0 {
		s.MaxGuests = 2
	}
	if s.Status == "" {
		s.Status = "published"
	}
	return seedID(t, db, `
		INSERT INTO accommodations (host_id, name, region, price_per_night, max_guests, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id::text`,
		s.HostID, s.Name, s.Region, s.PricePerNight, s.MaxGuests, s.Status)
}

// ReservationSeed describes a reservation to insert.
type ReservationSeed struct {
	AccommodationID string
	UserID          string
	CheckIn         string
	CheckOut        string
	Status          string
	TotalPrice      int64
	ReferralCode    *string
}

// SeedReservation inserts a reservation; nights are derived from the dates.
func SeedReservation(t TestingTB, db *sql.DB, s ReservationSeed) string {
	t.Helper()
	if s.Status == "" {
		s.Status = "pending"
	}
	return seedID(t, db, `
		INSERT INTO reservations
			(accommodation_id, user_id, check_in, check_out, nights, guests, total_price, status, referral_code)
		VALUES ($1, $2, $3::date, $4::date, ($4::date - $3::date), 1, $5, $6, $7)
		RETURNING id::text`,
		s.AccommodationID, s.UserID, s.CheckIn, s.CheckOut, s.TotalPrice, s.Status, s.ReferralCode)
}

// SeedReferralLink inserts a link for influencerID and returns its id.
func SeedReferralLink(t TestingTB, db *sql.DB, influencerID, code string) string {
	t.Helper()
	return seedID(t, db, `
		INSERT INTO referral_links (influencer_id, code, landing_path)
		VALUES ($1, $2, '/') RETURNING id::text`, influencerID, code)
}

func seedRole(t TestingTB, db *sql.DB, userID, role string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`, userID, role); err != nil {
		t.Fatalf("seed role %s for %s: %v", role, userID, err)
	}
}

func seedID(t TestingTB, db *sql.DB, query string, args ...any) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var id string
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return id
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }
