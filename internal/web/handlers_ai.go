package web

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/session"
	"github.com/fitdash/fitdash/internal/views"
)

type aiView struct {
	Exercises []backend.Exercise
	Splits    []backend.SplitTemplate
	Workouts  []backend.WorkoutSession

	Coaching    *backend.CoachingSuggestions
	Explanation *backend.WorkoutExplanation
	Plan        *backend.WorkoutPlan
	Overload    *backend.PlannerRecommendation

	Suggestion        *backend.SplitTemplate
	SuggestionPayload string // base64 JSON, round-tripped through the save form
	Unresolved        int
}

// loadAIView gathers the selects the tool forms need; tool results are
// filled in by the POST handlers before rendering.
func (s *Server) loadAIView(w http.ResponseWriter, r *http.Request, sess session.State) (*aiView, bool) {
	exercises, err := s.apiClient.ListExercises(r.Context(), sess.Token)
	if err != nil {
		s.redirectWithError(w, r, "/app", err)
		return nil, false
	}
	splits, err := s.apiClient.UserSplits(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		s.redirectWithError(w, r, "/app", err)
		return nil, false
	}
	workouts, err := s.apiClient.UserWorkouts(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		s.redirectWithError(w, r, "/app", err)
		return nil, false
	}

	return &aiView{
		Exercises: views.FilterExercises(exercises, views.ExerciseFilter{}),
		Splits:    views.SortSplits(splits),
		Workouts:  recentWorkouts(workouts, 10),
	}, true
}

func (s *Server) handleAITools(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	view, ok := s.loadAIView(w, r, sess)
	if !ok {
		return
	}
	s.renderPage(w, r, "ai", "AI tools", "ai", sess, view)
}

func (s *Server) handleAICoaching(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	coaching, err := s.apiClient.CoachingSuggestions(r.Context(), sess.Token)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	view, ok := s.loadAIView(w, r, sess)
	if !ok {
		return
	}
	view.Coaching = coaching
	s.renderPage(w, r, "ai", "AI tools", "ai", sess, view)
}

func (s *Server) handleAIExplainWorkout(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	workoutID := r.PostFormValue("workout_id")
	if workoutID == "" {
		setFlash(w, "error", "Pick a workout to explain")
		http.Redirect(w, r, "/app/ai", http.StatusSeeOther)
		return
	}

	workout, err := s.apiClient.GetWorkout(r.Context(), sess.Token, workoutID)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}
	exercises, err := s.apiClient.ListExercises(r.Context(), sess.Token)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}
	idx := views.NewExerciseIndex(exercises)

	req := explainRequestFromWorkout(workout, idx)
	explanation, err := s.apiClient.ExplainWorkout(r.Context(), sess.Token, req)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	view, ok := s.loadAIView(w, r, sess)
	if !ok {
		return
	}
	view.Explanation = explanation
	s.renderPage(w, r, "ai", "AI tools", "ai", sess, view)
}

// explainRequestFromWorkout flattens logged sets into the shape the
// explain endpoint wants: per exercise the set count, the min-max rep
// range and the top weight.
func explainRequestFromWorkout(
	workout *backend.WorkoutSession,
	idx *views.ExerciseIndex,
) backend.ExplainWorkoutRequest {
	var req backend.ExplainWorkoutRequest
	for _, we := range workout.Exercises {
		name := we.ExerciseID
		if ex, ok := idx.Resolve(we.ExerciseID, ""); ok {
			name = ex.Name
		}

		entry := backend.ExplainWorkoutExercise{Name: name, Sets: len(we.Sets)}
		minReps, maxReps := 0, 0
		for _, set := range we.Sets {
			if minReps == 0 || set.Reps < minReps {
				minReps = set.Reps
			}
			if set.Reps > maxReps {
				maxReps = set.Reps
			}
			if set.Weight > entry.Weight {
				entry.Weight = set.Weight
			}
		}
		if minReps == maxReps {
			entry.RepRange = strconv.Itoa(minReps)
		} else {
			entry.RepRange = fmt.Sprintf("%d-%d", minReps, maxReps)
		}
		req.Exercises = append(req.Exercises, entry)
	}
	return req
}

func (s *Server) handleAIWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	req := backend.WorkoutPlanRequest{
		SplitDayID: r.PostFormValue("split_day_id"),
	}
	req.Fatigue, _ = strconv.Atoi(r.PostFormValue("fatigue"))
	if req.SplitDayID == "" {
		setFlash(w, "error", "Pick a split day to plan")
		http.Redirect(w, r, "/app/ai", http.StatusSeeOther)
		return
	}

	plan, err := s.apiClient.GenerateWorkoutPlan(r.Context(), sess.Token, req)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	view, ok := s.loadAIView(w, r, sess)
	if !ok {
		return
	}
	view.Plan = plan
	s.renderPage(w, r, "ai", "AI tools", "ai", sess, view)
}

func (s *Server) handleAIOverload(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	exerciseID := r.PostFormValue("exercise_id")
	if exerciseID == "" {
		setFlash(w, "error", "Pick an exercise")
		http.Redirect(w, r, "/app/ai", http.StatusSeeOther)
		return
	}

	overload, err := s.apiClient.SuggestOverload(r.Context(), sess.Token,
		backend.OverloadRequest{ExerciseID: exerciseID})
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	view, ok := s.loadAIView(w, r, sess)
	if !ok {
		return
	}
	view.Overload = overload
	s.renderPage(w, r, "ai", "AI tools", "ai", sess, view)
}

func (s *Server) handleAIGenerateSplit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	req := backend.GenerateSplitRequest{
		FocusMuscle: r.PostFormValue("focus_muscle"),
	}
	req.DaysPerWeek, _ = strconv.Atoi(r.PostFormValue("days_per_week"))
	if req.DaysPerWeek < 1 || req.DaysPerWeek > 7 {
		req.DaysPerWeek = 3
	}

	suggestion, err := s.apiClient.GenerateSplit(r.Context(), sess.Token, req)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	view, ok := s.loadAIView(w, r, sess)
	if !ok {
		return
	}

	idx := views.NewExerciseIndex(view.Exercises)
	resolved := views.ResolveSplitSuggestion(suggestion, idx)

	payload, err := json.Marshal(suggestion)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	view.Suggestion = suggestion
	view.SuggestionPayload = base64.StdEncoding.EncodeToString(payload)
	view.Unresolved = resolved.Unresolved
	s.renderPage(w, r, "ai", "AI tools", "ai", sess, view)
}

// handleAISplitSave persists a previously generated suggestion. The
// suggestion travels through the form as an opaque payload and gets
// re-resolved here; any row that still matches no real exercise
// blocks the save.
func (s *Server) handleAISplitSave(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	payload, err := base64.StdEncoding.DecodeString(r.PostFormValue("suggestion_payload"))
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}
	var suggestion backend.SplitTemplate
	if err := json.Unmarshal(payload, &suggestion); err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	exercises, err := s.apiClient.ListExercises(r.Context(), sess.Token)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}
	resolved := views.ResolveSplitSuggestion(&suggestion, views.NewExerciseIndex(exercises))
	if resolved.Unresolved > 0 {
		setFlash(w, "error", fmt.Sprintf(
			"Cannot save: %d exercises could not be matched to the library", resolved.Unresolved,
		))
		http.Redirect(w, r, "/app/ai", http.StatusSeeOther)
		return
	}

	req := backend.CreateSplitRequest{
		UserID:      sess.UserID,
		Name:        suggestion.Name,
		Description: suggestion.Description,
		CreatedBy:   "ai",
		FocusMuscle: suggestion.FocusMuscle,
		Days:        resolved.Days,
	}
	if req.Name == "" {
		req.Name = "AI Split"
	}
	for i := range req.Days {
		if req.Days[i].Name == "" {
			req.Days[i].Name = fmt.Sprintf("Day %d", req.Days[i].DayOrder)
		}
	}

	split, err := s.apiClient.CreateSplit(r.Context(), sess.Token, req)
	if err != nil {
		s.redirectWithError(w, r, "/app/ai", err)
		return
	}

	setFlash(w, "success", "Split saved")
	http.Redirect(w, r, "/app/splits/"+split.ID, http.StatusSeeOther)
}

func (s *Server) handleMotivationReset(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	if _, err := s.apiClient.ResetDailyMotivation(r.Context(), sess.Token); err != nil {
		s.redirectWithError(w, r, "/app", err)
		return
	}

	setFlash(w, "success", "Fresh motivation coming up")
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}
