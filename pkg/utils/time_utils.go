package utils

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// NightsBetween returns the number of nights between two YYYY-MM-DD dates.
// Unparsable, equal or reversed date pairs count as a single night.
func NightsBetween(checkin, checkout string) int {
	start, err1 := time.Parse(dateLayout, checkin)
	end, err2 := time.Parse(dateLayout, checkout)
	if err1 != nil || err2 != nil {
		return 1
	}
	nights := int(end.Sub(start).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// CompactDate turns "2025-06-01" into "250601", the short form skyscanner
// deep links use. Anything shorter than a full date comes back empty.
func CompactDate(date string) string {
	s := strings.ReplaceAll(date, "-", "")
	if len(s) < 8 {
		return ""
	}
	return s[2:8]
}

// ClockFromTimestamp extracts HH:MM from an ISO timestamp such as
// "2025-06-01T14:35:00". Too-short input yields an empty string.
func ClockFromTimestamp(ts string) string {
	if len(ts) < 16 {
		return ""
	}
	return ts[11:16]
}

// DatePart returns the leading YYYY-MM-DD of an ISO timestamp.
func DatePart(ts string) string {
	if len(ts) < 10 {
		return ""
	}
	return ts[:10]
}
