package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/views"
)

type splitsView struct {
	Splits []backend.SplitTemplate
}

func (s *Server) handleSplits(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	splits, err := s.apiClient.UserSplits(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		if s.authExpired(w, r, err) {
			return
		}
		setFlash(w, "error", err.Error())
	}

	s.renderPage(w, r, "splits", "Splits", "splits", sess,
		splitsView{Splits: views.SortSplits(splits)})
}

type splitNewView struct {
	Exercises []backend.Exercise
	Muscles   []string
}

func (s *Server) handleSplitNewPage(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	exercises, err := s.apiClient.ListExercises(r.Context(), sess.Token)
	if err != nil {
		s.redirectWithError(w, r, "/app/splits", err)
		return
	}

	view := splitNewView{
		Exercises: views.FilterExercises(exercises, views.ExerciseFilter{}),
		Muscles:   muscleOptions,
	}
	s.renderPage(w, r, "split_new", "New split", "splits", sess, view)
}

// handleSplitCreate reads day rows day_name_<d> and per-day exercise
// rows split_exercise_<d>_<i> with target fields alongside.
func (s *Server) handleSplitCreate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/splits/new", err)
		return
	}

	req := backend.CreateSplitRequest{
		UserID:      sess.UserID,
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: r.PostFormValue("description"),
		CreatedBy:   "user",
		FocusMuscle: r.PostFormValue("focus_muscle"),
	}
	if req.Name == "" {
		setFlash(w, "error", "Split name is required")
		http.Redirect(w, r, "/app/splits/new", http.StatusSeeOther)
		return
	}

	for d := 0; d < 7; d++ {
		dayName := r.PostFormValue(formIdx("day_name", d))
		if dayName == "" {
			continue
		}
		day := backend.CreateSplitDay{
			DayOrder: len(req.Days) + 1,
			Name:     dayName,
		}
		for i := 0; i < 20; i++ {
			exerciseID := r.PostFormValue(formIdx2("split_exercise", d, i))
			if exerciseID == "" {
				continue
			}
			exercise := backend.CreateSplitExercise{
				ExerciseID: exerciseID,
				Notes:      r.PostFormValue(formIdx2("split_notes", d, i)),
			}
			exercise.TargetSets, _ = strconv.Atoi(r.PostFormValue(formIdx2("target_sets", d, i)))
			exercise.TargetReps, _ = strconv.Atoi(r.PostFormValue(formIdx2("target_reps", d, i)))
			exercise.TargetWeight, _ = strconv.ParseFloat(r.PostFormValue(formIdx2("target_weight", d, i)), 64)
			day.Exercises = append(day.Exercises, exercise)
		}
		req.Days = append(req.Days, day)
	}

	if len(req.Days) == 0 {
		setFlash(w, "error", "A split needs at least one day")
		http.Redirect(w, r, "/app/splits/new", http.StatusSeeOther)
		return
	}

	split, err := s.apiClient.CreateSplit(r.Context(), sess.Token, req)
	if err != nil {
		s.redirectWithError(w, r, "/app/splits/new", err)
		return
	}

	setFlash(w, "success", "Split created")
	http.Redirect(w, r, "/app/splits/"+split.ID, http.StatusSeeOther)
}

type splitDetailView struct {
	Split *backend.SplitTemplate
}

func (s *Server) handleSplitDetail(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	splitID := mux.Vars(r)["id"]

	split, err := s.apiClient.GetSplit(r.Context(), sess.Token, splitID)
	if err != nil {
		s.redirectWithError(w, r, "/app/splits", err)
		return
	}

	s.renderPage(w, r, "split_detail", split.Name, "splits", sess,
		splitDetailView{Split: split})
}

func (s *Server) handleSplitActivate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	splitID := mux.Vars(r)["id"]

	if err := s.apiClient.ActivateSplit(r.Context(), sess.Token, splitID); err != nil {
		s.redirectWithError(w, r, "/app/splits", err)
		return
	}

	setFlash(w, "success", "Split activated")
	http.Redirect(w, r, "/app/splits/"+splitID, http.StatusSeeOther)
}

func (s *Server) handleSplitDeactivate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	splitID := mux.Vars(r)["id"]

	if err := s.apiClient.DeactivateSplit(r.Context(), sess.Token, splitID); err != nil {
		s.redirectWithError(w, r, "/app/splits", err)
		return
	}

	setFlash(w, "success", "Split deactivated")
	http.Redirect(w, r, "/app/splits/"+splitID, http.StatusSeeOther)
}
