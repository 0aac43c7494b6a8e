package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdash/fitdash/internal/backend"
)

func TestNormalizeExerciseName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Bench Press", expected: "bench press"},
		{input: "  Bench-Press (Barbell) ", expected: "bench press barbell"},
		{input: "LAT___PULLDOWN", expected: "lat pulldown"},
		{input: "cable fly", expected: "cable fly"},
		{input: "!!!", expected: ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeExerciseName(tc.input), "input: %q", tc.input)
	}
}

func TestExerciseIndex_Resolve(t *testing.T) {
	idx := NewExerciseIndex([]backend.Exercise{
		{ID: "e1", Name: "Bench Press"},
		{ID: "e2", Name: "Squat"},
	})

	// id wins even with a mismatching name
	ex, ok := idx.Resolve("e2", "Bench Press")
	require.True(t, ok)
	assert.Equal(t, "e2", ex.ID)

	// unknown id falls back to the normalized name
	ex, ok = idx.Resolve("made-up-id", "bench-PRESS")
	require.True(t, ok)
	assert.Equal(t, "e1", ex.ID)

	_, ok = idx.Resolve("", "Pec Deck")
	assert.False(t, ok)
}

func TestResolveSplitSuggestion(t *testing.T) {
	idx := NewExerciseIndex([]backend.Exercise{
		{ID: "e1", Name: "Bench Press"},
		{ID: "e2", Name: "Squat"},
	})

	suggestion := &backend.SplitTemplate{
		Name: "AI Split",
		Days: []backend.SplitDay{
			{
				DayOrder: 1,
				Name:     "Day 1",
				Exercises: []backend.SplitExercise{
					{ExerciseName: "bench press", TargetSets: 3, TargetReps: 8},
					{ExerciseName: "Invented Machine Thing", TargetSets: 3, TargetReps: 12},
				},
			},
			{
				DayOrder: 2,
				Name:     "Day 2",
				Exercises: []backend.SplitExercise{
					{ExerciseID: "e2", ExerciseName: "Squat", TargetSets: 5, TargetReps: 5},
				},
			},
		},
	}

	resolved := ResolveSplitSuggestion(suggestion, idx)
	assert.Equal(t, 1, resolved.Unresolved)
	require.Len(t, resolved.Days, 2)
	require.Len(t, resolved.Days[0].Exercises, 1)
	assert.Equal(t, "e1", resolved.Days[0].Exercises[0].ExerciseID)
	require.Len(t, resolved.Days[1].Exercises, 1)
	assert.Equal(t, "e2", resolved.Days[1].Exercises[0].ExerciseID)
}
