package validator

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidYear bounds the accounting year to a sane range.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= 2100
}

// IsValidWeekNumber checks the ISO week number range. Whether week 53
// exists for a given year is checked further down by the week resolver.
func IsValidWeekNumber(wk int) bool {
	return wk >= 1 && wk <= 53
}

var maxDayHours = decimal.NewFromInt(24)

// IsValidDayHours checks a single day-hour value: non-negative, at most 24.
func IsValidDayHours(h decimal.Decimal) bool {
	return !h.IsNegative() && h.LessThanOrEqual(maxDayHours)
}
