// Package format holds display formatting helpers shared by views.
package format

import (
	"strconv"
	"time"
)

// FmtDate formats t as a long date with an ordinal day, e.g.
// "March 1st, 2024". The zero time formats as "".
func FmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January") + " " + Ordinal(t.Day()) + ", " + strconv.Itoa(t.Year())
}

// Ordinal renders n with its English ordinal suffix.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// ISODate renders t as RFC 3339 in UTC, or "" for the zero time.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
