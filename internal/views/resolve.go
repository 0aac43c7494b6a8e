package views

import (
	"regexp"
	"strings"

	"github.com/fitdash/fitdash/internal/backend"
)

var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeExerciseName folds a display name down to a lookup key:
// lowercase, runs of non-alphanumerics collapsed to one space, outer
// whitespace trimmed. "Bench-Press  (Barbell)" and "bench press
// barbell" normalize to the same key.
func NormalizeExerciseName(name string) string {
	normalized := nonAlnumRuns.ReplaceAllString(strings.ToLower(name), " ")
	return strings.TrimSpace(normalized)
}

// ExerciseIndex supports resolving AI-suggested exercise rows against
// the real library, by id first and by normalized name second.
type ExerciseIndex struct {
	byID   map[string]backend.Exercise
	byName map[string]backend.Exercise
}

func NewExerciseIndex(exercises []backend.Exercise) *ExerciseIndex {
	idx := &ExerciseIndex{
		byID:   make(map[string]backend.Exercise, len(exercises)),
		byName: make(map[string]backend.Exercise, len(exercises)),
	}
	for _, ex := range exercises {
		idx.byID[ex.ID] = ex
		key := NormalizeExerciseName(ex.Name)
		if _, taken := idx.byName[key]; !taken {
			idx.byName[key] = ex
		}
	}
	return idx
}

func (idx *ExerciseIndex) Resolve(id, name string) (backend.Exercise, bool) {
	if id != "" {
		if ex, ok := idx.byID[id]; ok {
			return ex, true
		}
	}
	ex, ok := idx.byName[NormalizeExerciseName(name)]
	return ex, ok
}

// ResolvedSplit is an AI split suggestion after resolution against the
// exercise library. Unresolved counts how many rows matched nothing;
// saving is only allowed when it is zero.
type ResolvedSplit struct {
	Days       []backend.CreateSplitDay
	Unresolved int
}

// ResolveSplitSuggestion maps every suggested row to a library
// exercise id. Rows that resolve neither by id nor by normalized name
// are kept out of the result and counted, a split must never persist
// made-up exercise ids.
func ResolveSplitSuggestion(suggestion *backend.SplitTemplate, idx *ExerciseIndex) ResolvedSplit {
	var resolved ResolvedSplit
	for _, day := range suggestion.Days {
		outDay := backend.CreateSplitDay{
			DayOrder: day.DayOrder,
			Name:     day.Name,
		}
		for _, row := range day.Exercises {
			ex, ok := idx.Resolve(row.ExerciseID, row.ExerciseName)
			if !ok {
				resolved.Unresolved++
				continue
			}
			outDay.Exercises = append(outDay.Exercises, backend.CreateSplitExercise{
				ExerciseID:   ex.ID,
				TargetSets:   row.TargetSets,
				TargetReps:   row.TargetReps,
				TargetWeight: row.TargetWeight,
				Notes:        row.Notes,
			})
		}
		resolved.Days = append(resolved.Days, outDay)
	}
	return resolved
}
