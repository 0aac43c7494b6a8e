package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdash/fitdash/internal/backend"
)

func testSessions() []backend.WorkoutSession {
	return []backend.WorkoutSession{
		{
			ID:          "w1",
			SessionDate: "2026-03-02T10:00:00Z",
			Exercises: []backend.WorkoutExercise{
				{
					ExerciseID: "e1", // chest
					Sets: []backend.WorkoutSet{
						{Reps: 10, Weight: 60},
						{Reps: 8, Weight: 70},
					},
				},
				{
					ExerciseID: "e2", // quads
					Sets: []backend.WorkoutSet{
						{Reps: 5, Weight: 100},
					},
				},
			},
		},
		{
			ID:          "w2",
			SessionDate: "2026-03-04T10:00:00Z",
			Exercises: []backend.WorkoutExercise{
				{
					ExerciseID: "e2",
					Sets: []backend.WorkoutSet{
						{Reps: 5, Weight: 110},
					},
				},
			},
		},
		{ID: "w3", SessionDate: "garbage"},
	}
}

func testExercisesByID() map[string]backend.Exercise {
	return map[string]backend.Exercise{
		"e1": {ID: "e1", Name: "Bench Press", PrimaryMuscle: "Chest"},
		"e2": {ID: "e2", Name: "Squat", PrimaryMuscle: "Quads"},
	}
}

func TestAnalyticsSeries_AllMuscles(t *testing.T) {
	points := AnalyticsSeries(testSessions(), testExercisesByID(), "")
	require.Len(t, points, 2)

	assert.Equal(t, "2026-03-02", points[0].Day)
	assert.InDelta(t, 10*60+8*70+5*100, points[0].Volume, 0.001)
	assert.Equal(t, 3, points[0].SetCount)
	assert.InDelta(t, (60+70+100)/3.0, points[0].AvgWeight, 0.001)

	assert.Equal(t, "2026-03-04", points[1].Day)
	assert.InDelta(t, 550, points[1].Volume, 0.001)
}

func TestAnalyticsSeries_MuscleFilter(t *testing.T) {
	points := AnalyticsSeries(testSessions(), testExercisesByID(), "chest")
	// w2 has no chest sets left and drops out entirely
	require.Len(t, points, 1)
	assert.Equal(t, "2026-03-02", points[0].Day)
	assert.Equal(t, 2, points[0].SetCount)
	assert.InDelta(t, 10*60+8*70, points[0].Volume, 0.001)
}

func TestWorkoutsSinceMonday(t *testing.T) {
	sessions := []backend.WorkoutSession{
		{SessionDate: "2026-03-02T08:00:00Z"}, // monday
		{SessionDate: "2026-03-04T08:00:00Z"},
		{SessionDate: "2026-03-01T08:00:00Z"}, // previous week
		{SessionDate: "bad"},
	}
	now := time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, WorkoutsSinceMonday(sessions, now))
}

func TestLatestRecommendation(t *testing.T) {
	recs := []backend.PlannerRecommendation{
		{ID: "r1", CreatedAt: "2026-02-01T00:00:00Z"},
		{ID: "r2", CreatedAt: "2026-03-01T00:00:00Z"},
		{ID: "r3", CreatedAt: "whenever"},
	}
	latest := LatestRecommendation(recs)
	require.NotNil(t, latest)
	assert.Equal(t, "r2", latest.ID)

	assert.Nil(t, LatestRecommendation(nil))
}

func TestSortRecommendations(t *testing.T) {
	recs := []backend.PlannerRecommendation{
		{ID: "r1", CreatedAt: "2026-02-01T00:00:00Z"},
		{ID: "r2", CreatedAt: "whenever"},
		{ID: "r3", CreatedAt: "2026-03-01T00:00:00Z"},
	}

	sorted := SortRecommendations(recs)
	require.Len(t, sorted, 3)
	assert.Equal(t, "r3", sorted[0].ID)
	assert.Equal(t, "r1", sorted[1].ID)
	// unparseable created_at sorts last
	assert.Equal(t, "r2", sorted[2].ID)

	// input untouched
	assert.Equal(t, "r1", recs[0].ID)

	assert.Empty(t, SortRecommendations(nil))
}
