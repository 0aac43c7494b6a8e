package views

import (
	"sort"
	"strings"
	"time"

	"github.com/fitdash/fitdash/internal/backend"
)

type ExerciseSort string

const (
	SortNameAsc     ExerciseSort = "name-asc"
	SortCreatedDesc ExerciseSort = "created-desc"
)

type ExerciseFilter struct {
	Muscle   string // case-insensitive exact match on primary muscle, empty means all
	HasMedia bool
	Sort     ExerciseSort
}

// FilterExercises applies muscle/media filters and the requested sort
// to a copy of the list, the input slice stays untouched.
func FilterExercises(exercises []backend.Exercise, filter ExerciseFilter) []backend.Exercise {
	filtered := make([]backend.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if filter.Muscle != "" && !strings.EqualFold(ex.PrimaryMuscle, filter.Muscle) {
			continue
		}
		if filter.HasMedia && len(ex.Media) == 0 {
			continue
		}
		filtered = append(filtered, ex)
	}

	switch filter.Sort {
	case SortCreatedDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			ti, okI := parseCreatedAt(filtered[i].CreatedAt)
			tj, okJ := parseCreatedAt(filtered[j].CreatedAt)
			switch {
			case okI && okJ && !ti.Equal(tj):
				return ti.After(tj)
			case okI != okJ:
				// parseable dates come before unparseable ones
				return okI
			default:
				return lessName(filtered[i].Name, filtered[j].Name)
			}
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return lessName(filtered[i].Name, filtered[j].Name)
		})
	}
	return filtered
}

// SortSplits orders split templates with the active one first, then
// newest created first.
func SortSplits(splits []backend.SplitTemplate) []backend.SplitTemplate {
	sorted := make([]backend.SplitTemplate, len(splits))
	copy(sorted, splits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsActive != sorted[j].IsActive {
			return sorted[i].IsActive
		}
		ti, okI := parseCreatedAt(sorted[i].CreatedAt)
		tj, okJ := parseCreatedAt(sorted[j].CreatedAt)
		if okI && okJ && !ti.Equal(tj) {
			return ti.After(tj)
		}
		return lessName(sorted[i].Name, sorted[j].Name)
	})
	return sorted
}

func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

func parseCreatedAt(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, dayFormat} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RenumberSets rewrites set_order contiguously from 1, used after a
// row is removed from the create-workout form.
func RenumberSets(sets []backend.CreateWorkoutSet) []backend.CreateWorkoutSet {
	renumbered := make([]backend.CreateWorkoutSet, len(sets))
	copy(renumbered, sets)
	for i := range renumbered {
		renumbered[i].SetOrder = i + 1
	}
	return renumbered
}
