package booking

import (
	"regexp"
	"time"

	"gorm.io/datatypes"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ParseDate validates a YYYY-MM-DD string against the pattern and the real
// calendar (rejecting e.g. 2026-13-40) and returns it as a date column value.
func ParseDate(s string) (datatypes.Date, error) {
	if !dateRe.MatchString(s) {
		return datatypes.Date{}, &ValidationError{Field: "date", Reason: "must match YYYY-MM-DD"}
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return datatypes.Date{}, &ValidationError{Field: "date", Reason: "not a calendar date"}
	}
	return datatypes.Date(t), nil
}

// ParseTime validates an HH:MM string (00-23 hours, 00-59 minutes) and
// returns it normalized.
func ParseTime(s string) (string, error) {
	if !timeRe.MatchString(s) {
		return "", &ValidationError{Field: "time", Reason: "must match HH:MM"}
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return "", &ValidationError{Field: "time", Reason: "not a time of day"}
	}
	return s, nil
}

// ValidateScore enforces the 1..5 inclusive rating score range.
func ValidateScore(score int) error {
	if score < 1 || score > 5 {
		return &ValidationError{Field: "score", Reason: "must be between 1 and 5"}
	}
	return nil
}
