package util //nolint:revive // package name util hosts small shared helpers

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar days.
const DateLayout = "2006-01-02"

// KST is Korea Standard Time. Korea observes no daylight saving, so a fixed zone is exact.
var KST = time.FixedZone("KST", 9*60*60) //nolint:gochecknoglobals // immutable zone

var errDateRange = errors.New("check-out must be after check-in")

// TodayKST returns the current calendar day in KST as a midnight time in the KST zone.
func TodayKST(now time.Time) time.Time {
	return StartOfDayKST(now)
}

// StartOfDayKST truncates t to midnight of its KST calendar day.
func StartOfDayKST(t time.Time) time.Time {
	k := t.In(KST)
	return time.Date(k.Year(), k.Month(), k.Day(), 0, 0, 0, 0, KST)
}

// ParseDateKST parses a YYYY-MM-DD calendar day as midnight KST.
func ParseDateKST(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, KST)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return d, nil
}

// FormatDateKST renders the KST calendar day of t.
func FormatDateKST(t time.Time) string {
	return t.In(KST).Format(DateLayout)
}

// NightsBetween returns the number of nights from check-in to check-out (both KST days).
func NightsBetween(checkIn, checkOut time.Time) (int, error) {
	in := StartOfDayKST(checkIn)
	out := StartOfDayKST(checkOut)
	if !out.After(in) {
		return 0, errDateRange
	}
	// Fixed zone: every day is exactly 24h.
	return int(out.Sub(in) / (24 * time.Hour)), nil
}

// AddDaysKST adds n calendar days to the KST day of t.
func AddDaysKST(t time.Time, n int) time.Time {
	return StartOfDayKST(t).AddDate(0, 0, n)
}

// HasDayPassedKST reports whether the KST calendar day of day is strictly before today's KST day.
func HasDayPassedKST(day, now time.Time) bool {
	return StartOfDayKST(day).Before(TodayKST(now))
}
