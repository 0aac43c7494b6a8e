package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdash/fitdash/internal/backend"
)

func testExercises() []backend.Exercise {
	return []backend.Exercise{
		{
			ID: "e1", Name: "Squat", PrimaryMuscle: "Quads",
			CreatedAt: "2026-01-10T10:00:00Z",
		},
		{
			ID: "e2", Name: "bench press", PrimaryMuscle: "Chest",
			CreatedAt: "2026-02-01T10:00:00Z",
			Media:     []backend.ExerciseMedia{{ID: "m1", MediaType: "image"}},
		},
		{
			ID: "e3", Name: "Cable Fly", PrimaryMuscle: "chest",
			CreatedAt: "broken-timestamp",
		},
		{
			ID: "e4", Name: "Deadlift", PrimaryMuscle: "Back",
			CreatedAt: "2026-01-20T10:00:00Z",
		},
	}
}

func TestFilterExercises_MuscleFilter(t *testing.T) {
	filtered := FilterExercises(testExercises(), ExerciseFilter{Muscle: "CHEST"})
	require.Len(t, filtered, 2)
	// default sort is case-insensitive name ascending
	assert.Equal(t, "bench press", filtered[0].Name)
	assert.Equal(t, "Cable Fly", filtered[1].Name)
}

func TestFilterExercises_HasMedia(t *testing.T) {
	filtered := FilterExercises(testExercises(), ExerciseFilter{HasMedia: true})
	require.Len(t, filtered, 1)
	assert.Equal(t, "e2", filtered[0].ID)
}

func TestFilterExercises_NameSortIgnoresCase(t *testing.T) {
	filtered := FilterExercises(testExercises(), ExerciseFilter{})
	require.Len(t, filtered, 4)
	assert.Equal(t, []string{"bench press", "Cable Fly", "Deadlift", "Squat"}, []string{
		filtered[0].Name, filtered[1].Name, filtered[2].Name, filtered[3].Name,
	})
}

func TestFilterExercises_CreatedDesc(t *testing.T) {
	filtered := FilterExercises(testExercises(), ExerciseFilter{Sort: SortCreatedDesc})
	require.Len(t, filtered, 4)
	// newest first, the unparseable timestamp sinks to the end
	assert.Equal(t, "e2", filtered[0].ID)
	assert.Equal(t, "e4", filtered[1].ID)
	assert.Equal(t, "e1", filtered[2].ID)
	assert.Equal(t, "e3", filtered[3].ID)
}

func TestFilterExercises_DoesNotMutateInput(t *testing.T) {
	input := testExercises()
	FilterExercises(input, ExerciseFilter{Sort: SortCreatedDesc})
	assert.Equal(t, "e1", input[0].ID)
}

func TestSortSplits_ActiveFirst(t *testing.T) {
	splits := []backend.SplitTemplate{
		{ID: "s1", Name: "Old PPL", CreatedAt: "2026-01-01T00:00:00Z"},
		{ID: "s2", Name: "Upper Lower", CreatedAt: "2026-02-01T00:00:00Z"},
		{ID: "s3", Name: "Current Split", IsActive: true, CreatedAt: "2026-01-15T00:00:00Z"},
	}
	sorted := SortSplits(splits)
	require.Len(t, sorted, 3)
	assert.Equal(t, "s3", sorted[0].ID)
	assert.Equal(t, "s2", sorted[1].ID)
	assert.Equal(t, "s1", sorted[2].ID)
}

func TestRenumberSets(t *testing.T) {
	sets := []backend.CreateWorkoutSet{
		{SetOrder: 1, Reps: 8},
		{SetOrder: 3, Reps: 6},
		{SetOrder: 7, Reps: 5},
	}
	renumbered := RenumberSets(sets)
	require.Len(t, renumbered, 3)
	assert.Equal(t, 1, renumbered[0].SetOrder)
	assert.Equal(t, 2, renumbered[1].SetOrder)
	assert.Equal(t, 3, renumbered[2].SetOrder)
	// input keeps its gaps
	assert.Equal(t, 3, sets[1].SetOrder)
}
