// Package dateutil provides helpers for the zero-padded ISO dates used
// throughout plays.json. Lexicographic comparison of these strings matches
// chronological order, which the filter layer relies on.
package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s looks like a zero-padded YYYY-MM-DD date.
func IsISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Year extracts the year from an ISO date string.
// Returns an empty string if the date is absent or malformed.
func Year(date string) string {
	if len(date) < 4 || !isoDatePattern.MatchString(date) {
		return ""
	}
	return date[:4]
}

// ParseFlexible parses a date in YYYY-MM-DD, YYYY/MM/DD, or YYYY format
// and normalizes it to an ISO date string (YYYY treated as January 1st).
// Used for the date-range filter inputs.
func ParseFlexible(s string) (string, error) {
	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	if t, err := time.Parse("2006", s); err == nil {
		return t.Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("expected YYYY-MM-DD, got %q", s)
}
