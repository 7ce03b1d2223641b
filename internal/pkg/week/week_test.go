package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOfKnownDates(t *testing.T) {
	cases := []struct {
		year, wk int
		want     string
	}{
		{2025, 1, "2024-12-30"},
		{2025, 10, "2025-03-03"},
		{2024, 1, "2024-01-01"},
		{2021, 1, "2021-01-04"},
		{2020, 53, "2020-12-28"},
		{2026, 53, "2026-12-28"},
	}
	for _, c := range cases {
		monday, err := MondayOf(c.year, c.wk)
		require.NoError(t, err)
		assert.Equal(t, c.want, monday.Format("2006-01-02"), "year %d week %d", c.year, c.wk)
		assert.Equal(t, time.Monday, monday.Weekday())
	}
}

func TestRoundTripAllWeeks(t *testing.T) {
	for year := 2015; year <= 2035; year++ {
		for wk := 1; wk <= WeeksInYear(year); wk++ {
			monday, err := MondayOf(year, wk)
			require.NoError(t, err)
			gotYear, gotWeek := FromDate(monday)
			assert.Equal(t, year, gotYear)
			assert.Equal(t, wk, gotWeek)
		}
	}
}

func TestDaysAreConsecutiveFromMonday(t *testing.T) {
	days, err := Days(2025, 10)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, days[0].Weekday())
	for i := 1; i < 7; i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
	assert.Equal(t, time.Sunday, days[6].Weekday())
}

func TestWeeksInYear(t *testing.T) {
	assert.Equal(t, 53, WeeksInYear(2015))
	assert.Equal(t, 53, WeeksInYear(2020))
	assert.Equal(t, 53, WeeksInYear(2026))
	assert.Equal(t, 52, WeeksInYear(2024))
	assert.Equal(t, 52, WeeksInYear(2025))
}

func TestNextRollsYear(t *testing.T) {
	y, w, err := Next(2025, 52)
	require.NoError(t, err)
	assert.Equal(t, 2026, y)
	assert.Equal(t, 1, w)

	// 53-week year rolls only after week 53.
	y, w, err = Next(2020, 52)
	require.NoError(t, err)
	assert.Equal(t, 2020, y)
	assert.Equal(t, 53, w)

	y, w, err = Next(2020, 53)
	require.NoError(t, err)
	assert.Equal(t, 2021, y)
	assert.Equal(t, 1, w)
}

func TestPreviousRollsYear(t *testing.T) {
	y, w, err := Previous(2021, 1)
	require.NoError(t, err)
	assert.Equal(t, 2020, y)
	assert.Equal(t, 53, w)

	y, w, err = Previous(2025, 10)
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 9, w)
}

func TestInvalidWeekRejected(t *testing.T) {
	_, err := MondayOf(2025, 0)
	assert.Error(t, err)
	_, err = MondayOf(2025, 53) // 2025 has 52 weeks
	assert.Error(t, err)
	_, err = MondayOf(2020, 54)
	assert.Error(t, err)
}

func TestWeeksOfYearLabels(t *testing.T) {
	options := WeeksOfYear(2025)
	require.Len(t, options, 52)
	assert.Equal(t, 1, options[0].Week)
	assert.Equal(t, "Week 01 (30/12 - 05/01)", options[0].Label)
	assert.Equal(t, "Week 10 (03/03 - 09/03)", options[9].Label)
}
