package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDateRange validates a pair of YYYY-MM-DD strings and returns the
// half-open interval [desde, hasta+1d).
func ParseDateRange(desde, hasta string) (time.Time, time.Time, error) {
	if !dateRe.MatchString(desde) || !dateRe.MatchString(hasta) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	from, err := time.Parse("2006-01-02", desde)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	to, err := time.Parse("2006-01-02", hasta)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return from, to.AddDate(0, 0, 1), nil
}

// MonthWindow returns the half-open interval covering the calendar month
// of now, widened by graceDays into the adjacent months on both sides.
func MonthWindow(now time.Time, graceDays int) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)
	if graceDays > 0 {
		start = start.AddDate(0, 0, -graceDays)
		end = end.AddDate(0, 0, graceDays)
	}
	return start, end
}

// ValidateEmail performs a minimal shape check.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || len(email) < 3 {
		return fmt.Errorf("%w: email", ErrInvalidInput)
	}
	return nil
}

// ValidatePassword enforces the minimum length accepted at signup.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}
	return nil
}
