package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimeFlexible accepts RFC3339 or date-only (YYYY-MM-DD) input.
// Empty input is not an error; it returns nil.
func ParseTimeFlexible(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// Try RFC3339 first
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}

	// Try date only (YYYY-MM-DD)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}

	return nil, fmt.Errorf("invalid date format (expected RFC3339 or YYYY-MM-DD): %q", s)
}

// EndOfDay pushes a date-only bound to the last instant of that day so
// inclusive date-range filters behave as users expect.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
