package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2027, time.March, 28},
	}

	for _, tt := range tests {
		got := easterSunday(tt.year)
		assert.Equal(t, tt.year, got.Year())
		assert.Equal(t, tt.month, got.Month())
		assert.Equal(t, tt.day, got.Day())
	}
}

func TestFrenchHolidays(t *testing.T) {
	holidays := FrenchHolidays(2025)
	assert.Len(t, holidays, 11)

	byLabel := make(map[string]time.Time)
	for _, h := range holidays {
		byLabel[h.Label] = h.Date
	}

	assert.Equal(t, time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC), byLabel["Lundi de Pâques"])
	assert.Equal(t, time.Date(2025, time.May, 29, 0, 0, 0, 0, time.UTC), byLabel["Ascension"])
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), byLabel["Lundi de Pentecôte"])
	assert.Equal(t, time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC), byLabel["Fête Nationale"])
}
