package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdash/fitdash/internal/backend"
)

func TestBucketByDay(t *testing.T) {
	sessions := []backend.WorkoutSession{
		{ID: "w1", SessionDate: "2026-03-02T10:00:00Z"},
		{ID: "w2", SessionDate: "2026-03-02T18:30:00Z"},
		{ID: "w3", SessionDate: "2026-03-05"},
		{ID: "w4", SessionDate: ""},
		{ID: "w5", SessionDate: "not-a-date-at-all"},
	}

	buckets := BucketByDay(sessions)
	require.Len(t, buckets, 2)
	require.Len(t, buckets["2026-03-02"], 2)
	assert.Equal(t, "w1", buckets["2026-03-02"][0].ID)
	assert.Equal(t, "w2", buckets["2026-03-02"][1].ID)
	require.Len(t, buckets["2026-03-05"], 1)
	assert.Equal(t, "w3", buckets["2026-03-05"][0].ID)
}

func TestMonthGrid_February2024(t *testing.T) {
	cursor := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)

	cells := MonthGrid(cursor, today)
	require.Len(t, cells, 35)
	assert.Equal(t, "2024-01-28", cells[0].Day)
	assert.Equal(t, "2024-03-02", cells[34].Day)
	assert.False(t, cells[0].InMonth)
	assert.True(t, cells[4].InMonth)   // Feb 1st
	assert.False(t, cells[33].InMonth) // Mar 1st

	// every cell is exactly one day after the previous one
	for i := 1; i < len(cells); i++ {
		assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), cells[i].Date)
	}

	todayCells := 0
	for _, cell := range cells {
		if cell.IsToday {
			todayCells++
			assert.Equal(t, "2024-02-14", cell.Day)
		}
	}
	assert.Equal(t, 1, todayCells)
}

func TestMonthGrid_MonthStartingOnSunday(t *testing.T) {
	// June 2025 starts on a Sunday and ends on a Monday
	cursor := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	cells := MonthGrid(cursor, cursor)
	require.Len(t, cells, 35)
	assert.Equal(t, "2025-06-01", cells[0].Day)
	assert.Equal(t, "2025-07-05", cells[34].Day)
}

func TestStartOfWeek(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "wednesday", in: "2026-03-04", expected: "2026-03-02"},
		{name: "monday itself", in: "2026-03-02", expected: "2026-03-02"},
		{name: "sunday belongs to previous monday", in: "2026-03-08", expected: "2026-03-02"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := time.Parse(dayFormat, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, StartOfWeek(in).Format(dayFormat))
		})
	}
}
