package views

import (
	"sort"
	"strings"
	"time"

	"github.com/fitdash/fitdash/internal/backend"
)

// SessionPoint is one workout session reduced to chartable numbers.
type SessionPoint struct {
	Day       string // yyyy-MM-dd
	Volume    float64
	AvgWeight float64
	SetCount  int
}

// AnalyticsSeries reduces sessions to per-session volume (Σ reps ×
// weight), average weight and set count, oldest first. When muscle is
// non-empty only sets of exercises with that primary muscle count,
// looked up through the exercise map; sessions left with zero sets
// are dropped from the series.
func AnalyticsSeries(
	sessions []backend.WorkoutSession,
	exercisesByID map[string]backend.Exercise,
	muscle string,
) []SessionPoint {
	var points []SessionPoint
	for _, session := range sessions {
		if len(session.SessionDate) < len(dayFormat) {
			continue
		}
		day := session.SessionDate[:len(dayFormat)]
		if _, err := time.Parse(dayFormat, day); err != nil {
			continue
		}

		var point SessionPoint
		point.Day = day
		var weightSum float64
		for _, we := range session.Exercises {
			if muscle != "" {
				ex, ok := exercisesByID[we.ExerciseID]
				if !ok || !strings.EqualFold(ex.PrimaryMuscle, muscle) {
					continue
				}
			}
			for _, set := range we.Sets {
				point.Volume += float64(set.Reps) * set.Weight
				weightSum += set.Weight
				point.SetCount++
			}
		}
		if point.SetCount == 0 {
			continue
		}
		point.AvgWeight = weightSum / float64(point.SetCount)
		points = append(points, point)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})
	return points
}

// WorkoutsSinceMonday counts sessions dated on or after the Monday of
// the week containing now.
func WorkoutsSinceMonday(sessions []backend.WorkoutSession, now time.Time) int {
	weekStart := StartOfWeek(now).Format(dayFormat)
	count := 0
	for _, session := range sessions {
		if len(session.SessionDate) < len(dayFormat) {
			continue
		}
		day := session.SessionDate[:len(dayFormat)]
		if _, err := time.Parse(dayFormat, day); err != nil {
			continue
		}
		if day >= weekStart {
			count++
		}
	}
	return count
}

// SortRecommendations orders planner recommendations newest first by
// created_at. Entries with unparseable timestamps sort last, original
// order preserved among them. Does not mutate the input.
func SortRecommendations(recs []backend.PlannerRecommendation) []backend.PlannerRecommendation {
	sorted := make([]backend.PlannerRecommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := parseCreatedAt(sorted[i].CreatedAt)
		tj, okj := parseCreatedAt(sorted[j].CreatedAt)
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
	return sorted
}

// LatestRecommendation picks the newest planner recommendation by
// created_at; entries with unparseable timestamps lose to parseable
// ones.
func LatestRecommendation(recs []backend.PlannerRecommendation) *backend.PlannerRecommendation {
	var latest *backend.PlannerRecommendation
	var latestAt time.Time
	var latestOK bool
	for i := range recs {
		t, ok := parseCreatedAt(recs[i].CreatedAt)
		switch {
		case latest == nil:
		case ok && !latestOK:
		case ok == latestOK && ok && t.After(latestAt):
		default:
			continue
		}
		latest = &recs[i]
		latestAt, latestOK = t, ok
	}
	return latest
}
