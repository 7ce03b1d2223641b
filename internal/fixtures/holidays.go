package fixtures

import (
	"time"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/holiday"
)

// FrenchHolidays returns the French public holidays of a year: the fixed
// dates plus the Easter-derived ones (Easter Monday, Ascension, Whit
// Monday).
func FrenchHolidays(year int) []holiday.Holiday {
	easter := easterSunday(year)

	return []holiday.Holiday{
		{Date: date(year, time.January, 1), Label: "Jour de l'an"},
		{Date: easter.AddDate(0, 0, 1), Label: "Lundi de Pâques"},
		{Date: date(year, time.May, 1), Label: "Fête du Travail"},
		{Date: date(year, time.May, 8), Label: "Victoire 1945"},
		{Date: easter.AddDate(0, 0, 39), Label: "Ascension"},
		{Date: easter.AddDate(0, 0, 50), Label: "Lundi de Pentecôte"},
		{Date: date(year, time.July, 14), Label: "Fête Nationale"},
		{Date: date(year, time.August, 15), Label: "Assomption"},
		{Date: date(year, time.November, 1), Label: "Toussaint"},
		{Date: date(year, time.November, 11), Label: "Armistice 1918"},
		{Date: date(year, time.December, 25), Label: "Noël"},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// easterSunday computes Gregorian Easter with the anonymous Gauss
// algorithm (Meeus/Jones/Butcher).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(year, time.Month(month), day)
}
