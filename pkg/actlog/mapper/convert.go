package mapper

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Convert transforms a raw source value into its destination form.
// Conversions are pure; an unusable input yields "".
type Convert func(string) string

// DateCell renders the date part of an RFC 3339 timestamp as dd/mm/yyyy,
// the format the template's date columns expect.
func DateCell(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ""
	}
	return t.UTC().Format("02/01/2006")
}

// TimeCell renders the time-of-day part of an RFC 3339 timestamp as hh:mm:ss.
func TimeCell(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ""
	}
	return t.UTC().Format("15:04:05")
}

// Coordinate renders a decimal-degree value with five decimals, the
// precision the template asks for.
func Coordinate(value string) string {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(f, 'f', 5, 64)
}

// CanonicalUUID normalises an event identifier to the canonical
// lower-case UUID form. Identifiers the logger did not issue as UUIDs
// are dropped rather than propagated into the log.
func CanonicalUUID(value string) string {
	u, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return ""
	}
	return u.String()
}

func timeValue(t time.Time) (string, bool) {
	if t.IsZero() {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}

func floatValue(f *float64) (string, bool) {
	if f == nil {
		return "", false
	}
	return strconv.FormatFloat(*f, 'f', -1, 64), true
}
