package web

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/views"
)

// muscle and equipment vocab offered in the create form selects
var (
	muscleOptions = []string{
		"Chest", "Back", "Shoulders", "Biceps", "Triceps",
		"Quads", "Hamstrings", "Glutes", "Calves", "Abs", "Forearms",
	}
	equipmentOptions = []string{
		"Barbell", "Dumbbell", "Cable", "Machine", "Bodyweight", "Kettlebell", "Band",
	}
)

type exercisesView struct {
	Exercises      []backend.Exercise
	Muscles        []string
	SelectedMuscle string
	HasMediaOnly   bool
	Sort           string
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	exercises, err := s.apiClient.ListExercises(r.Context(), sess.Token)
	if err != nil {
		if s.authExpired(w, r, err) {
			return
		}
		setFlash(w, "error", err.Error())
	}

	query := r.URL.Query()
	filter := views.ExerciseFilter{
		Muscle:   query.Get("muscle"),
		HasMedia: query.Get("has_media") == "1",
		Sort:     views.ExerciseSort(query.Get("sort")),
	}

	view := exercisesView{
		Exercises:      views.FilterExercises(exercises, filter),
		Muscles:        muscleOptions,
		SelectedMuscle: filter.Muscle,
		HasMediaOnly:   filter.HasMedia,
		Sort:           string(filter.Sort),
	}
	s.renderPage(w, r, "exercises", "Exercises", "exercises", sess, view)
}

type exerciseNewView struct {
	Muscles   []string
	Equipment []string
}

func (s *Server) handleExerciseNewPage(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	view := exerciseNewView{Muscles: muscleOptions, Equipment: equipmentOptions}
	s.renderPage(w, r, "exercise_new", "New exercise", "exercises", sess, view)
}

func (s *Server) handleExerciseCreate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/exercises/new", err)
		return
	}

	req := backend.CreateExerciseRequest{
		Name:          strings.TrimSpace(r.PostFormValue("name")),
		PrimaryMuscle: r.PostFormValue("primary_muscle"),
		Equipment:     r.PostFormValue("equipment"),
	}
	for _, muscle := range r.PostForm["secondary_muscles"] {
		if muscle != "" {
			req.SecondaryMuscles = append(req.SecondaryMuscles, muscle)
		}
	}
	if req.Name == "" || req.PrimaryMuscle == "" {
		setFlash(w, "error", "Name and primary muscle are required")
		http.Redirect(w, r, "/app/exercises/new", http.StatusSeeOther)
		return
	}

	exercise, err := s.apiClient.CreateExercise(r.Context(), sess.Token, req)
	if err != nil {
		s.redirectWithError(w, r, "/app/exercises/new", err)
		return
	}

	setFlash(w, "success", "Exercise created")
	http.Redirect(w, r, "/app/exercises/"+exercise.ID, http.StatusSeeOther)
}

type exerciseDetailView struct {
	Exercise *backend.Exercise
}

func (s *Server) handleExerciseDetail(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	exerciseID := mux.Vars(r)["id"]

	exercise, err := s.apiClient.GetExercise(r.Context(), sess.Token, exerciseID)
	if err != nil {
		s.redirectWithError(w, r, "/app/exercises", err)
		return
	}

	s.renderPage(w, r, "exercise_detail", exercise.Name, "exercises", sess,
		exerciseDetailView{Exercise: exercise})
}

func (s *Server) handleExerciseAddMedia(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	exerciseID := mux.Vars(r)["id"]
	detailPath := "/app/exercises/" + exerciseID

	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, detailPath, err)
		return
	}

	req := backend.AddExerciseMediaRequest{
		MediaType:    r.PostFormValue("media_type"),
		MediaURL:     strings.TrimSpace(r.PostFormValue("media_url")),
		ThumbnailURL: strings.TrimSpace(r.PostFormValue("thumbnail_url")),
	}
	if req.MediaType == "" || req.MediaURL == "" {
		setFlash(w, "error", "Media type and URL are required")
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	if _, err := s.apiClient.AddExerciseMedia(r.Context(), sess.Token, exerciseID, req); err != nil {
		s.redirectWithError(w, r, detailPath, err)
		return
	}

	setFlash(w, "success", "Media added")
	http.Redirect(w, r, detailPath, http.StatusSeeOther)
}
