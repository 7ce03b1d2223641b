// Package holiday is the read-only surface over the public holiday calendar.
package holiday

import "time"

type Holiday struct {
	Date  time.Time `json:"date"`
	Label string    `json:"libelle"`
}

// WeekdayCount returns how many of the given holidays fall Monday-Friday.
// Weekend holidays never affect the owed-hours baseline.
func WeekdayCount(holidays []Holiday) int {
	count := 0
	for _, h := range holidays {
		wd := h.Date.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
