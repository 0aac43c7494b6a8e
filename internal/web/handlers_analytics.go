package web

import (
	"net/http"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/views"
)

type analyticsView struct {
	Points         []views.SessionPoint
	Muscles        []string
	SelectedMuscle string
	MaxVolume      float64
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	muscle := r.URL.Query().Get("muscle")

	workouts, err := s.apiClient.UserWorkouts(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		if s.authExpired(w, r, err) {
			return
		}
		setFlash(w, "error", err.Error())
	}

	exercisesByID := make(map[string]backend.Exercise)
	if exercises, err := s.apiClient.ListExercises(r.Context(), sess.Token); err == nil {
		for _, ex := range exercises {
			exercisesByID[ex.ID] = ex
		}
	}

	points := views.AnalyticsSeries(workouts, exercisesByID, muscle)
	view := analyticsView{
		Points:         points,
		Muscles:        muscleOptions,
		SelectedMuscle: muscle,
	}
	for _, point := range points {
		if point.Volume > view.MaxVolume {
			view.MaxVolume = point.Volume
		}
	}

	s.renderPage(w, r, "analytics", "Analytics", "analytics", sess, view)
}
