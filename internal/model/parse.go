package model

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for acquisition and release dates.
const DateLayout = "2006-01-02"

// TimestampLayout is the format used for owner creation dates, export
// timestamps, and query history timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// ParseCost parses a cost value leniently: blank, malformed, or negative
// input counts as zero. Cost fields hold free text entered by users, and
// report arithmetic must never fail on it.
func ParseCost(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseWarrantyMonths parses a warranty length in months. Blank input
// counts as zero months; non-numeric or negative input is reported as
// unparsable so the warranty report can skip the record.
func ParseWarrantyMonths(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseDate parses an ISO YYYY-MM-DD date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
