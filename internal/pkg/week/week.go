// Package week resolves ISO-8601 calendar weeks to concrete dates.
// Week 1 is the week containing the year's first Thursday, so the Monday
// of week 1 is the Monday on or before January 4th.
package week

import (
	"fmt"
	"time"
)

// ErrInvalidWeek is returned when a week number falls outside 1..WeeksInYear.
type ErrInvalidWeek struct {
	Year int
	Week int
}

func (e ErrInvalidWeek) Error() string {
	return fmt.Sprintf("week %d is not valid for year %d", e.Week, e.Year)
}

// MondayOf returns the Monday that starts the given ISO week, at midnight UTC.
func MondayOf(year, wk int) (time.Time, error) {
	if wk < 1 || wk > WeeksInYear(year) {
		return time.Time{}, ErrInvalidWeek{Year: year, Week: wk}
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := int(jan4.Weekday())
	if offset == 0 { // Sunday
		offset = 7
	}
	firstMonday := jan4.AddDate(0, 0, 1-offset)
	return firstMonday.AddDate(0, 0, (wk-1)*7), nil
}

// Days returns the seven dates of the given ISO week, Monday through Sunday.
func Days(year, wk int) ([7]time.Time, error) {
	var days [7]time.Time
	monday, err := MondayOf(year, wk)
	if err != nil {
		return days, err
	}
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days, nil
}

// FromDate returns the ISO year and week containing t.
func FromDate(t time.Time) (year, wk int) {
	return t.ISOWeek()
}

// Current returns the ISO year and week of today.
func Current() (year, wk int) {
	return FromDate(time.Now().UTC())
}

// Next returns the week after (year, wk), rolling the year at the boundary.
func Next(year, wk int) (int, int, error) {
	monday, err := MondayOf(year, wk)
	if err != nil {
		return 0, 0, err
	}
	y, w := monday.AddDate(0, 0, 7).ISOWeek()
	return y, w, nil
}

// Previous returns the week before (year, wk), rolling the year at the boundary.
func Previous(year, wk int) (int, int, error) {
	monday, err := MondayOf(year, wk)
	if err != nil {
		return 0, 0, err
	}
	y, w := monday.AddDate(0, 0, -7).ISOWeek()
	return y, w, nil
}

// WeeksInYear returns 52 or 53. December 28th is always in the last ISO week
// of its year.
func WeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// Option is one selectable week for a picker UI.
type Option struct {
	Week  int    `json:"week"`
	Label string `json:"label"`
}

// WeeksOfYear enumerates every week of the year with a human label such as
// "Week 09 (24/02 - 02/03)".
func WeeksOfYear(year int) []Option {
	n := WeeksInYear(year)
	options := make([]Option, 0, n)
	for wk := 1; wk <= n; wk++ {
		monday, _ := MondayOf(year, wk)
		sunday := monday.AddDate(0, 0, 6)
		options = append(options, Option{
			Week: wk,
			Label: fmt.Sprintf("Week %02d (%s - %s)",
				wk, monday.Format("02/01"), sunday.Format("02/01")),
		})
	}
	return options
}
