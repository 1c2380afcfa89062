package utils

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Constants
const (
	DATE_LAYOUT = "2006-01-02"

	// JavaScript dates are limited to ±8.64e15 ms around the epoch
	maxEpochMillis = 8.64e15
)

var ErrInvalidDate = errors.New("invalid date")

// launchDateLayouts are tried in order when parsing a launch date string
var launchDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DATE_LAYOUT,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseLaunchDate parses the date forms browsers and API clients send.
// Values without a zone are read as UTC.
func ParseLaunchDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range launchDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// LaunchDateFromMillis converts Unix milliseconds to a UTC time
func LaunchDateFromMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, ErrInvalidDate
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// FormatLaunchDate renders a launch date as a calendar date
func FormatLaunchDate(t time.Time) string {
	return t.UTC().Format(DATE_LAYOUT)
}
