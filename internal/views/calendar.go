// Package views holds the pure derivation logic behind the pages:
// calendar math, listing filters/sorts, name resolution, analytics
// series. No I/O happens here, everything works on already-fetched
// API values.
package views

import (
	"time"

	"github.com/fitdash/fitdash/internal/backend"
)

const dayFormat = "2006-01-02"

// BucketByDay groups workout sessions under the yyyy-MM-dd prefix of
// their session date. Sessions with an empty or too-short date are
// dropped, a calendar cannot place them anywhere.
func BucketByDay(sessions []backend.WorkoutSession) map[string][]backend.WorkoutSession {
	buckets := make(map[string][]backend.WorkoutSession)
	for _, session := range sessions {
		if len(session.SessionDate) < len(dayFormat) {
			continue
		}
		day := session.SessionDate[:len(dayFormat)]
		if _, err := time.Parse(dayFormat, day); err != nil {
			continue
		}
		buckets[day] = append(buckets[day], session)
	}
	return buckets
}

type CalendarCell struct {
	Date    time.Time
	Day     string // yyyy-MM-dd, the bucket key
	InMonth bool
	IsToday bool
}

// MonthGrid builds the full calendar rectangle around the cursor
// month: from the Sunday on or before the 1st through the Saturday on
// or after the last day, always a multiple of 7 cells. Days outside
// the cursor month are included and flagged, the grid never has holes.
func MonthGrid(cursor, today time.Time) []CalendarCell {
	firstOfMonth := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	end := lastOfMonth.AddDate(0, 0, int(time.Saturday-lastOfMonth.Weekday()))

	todayDay := today.Format(dayFormat)
	var cells []CalendarCell
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format(dayFormat)
		cells = append(cells, CalendarCell{
			Date:    d,
			Day:     day,
			InMonth: d.Month() == cursor.Month(),
			IsToday: day == todayDay,
		})
	}
	return cells
}

// StartOfWeek returns the Monday of the week containing t, midnight.
func StartOfWeek(t time.Time) time.Time {
	daysBack := int(t.Weekday()) - int(time.Monday)
	if daysBack < 0 {
		daysBack += 7
	}
	monday := t.AddDate(0, 0, -daysBack)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
