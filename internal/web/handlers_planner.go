package web

import (
	"net/http"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/views"
)

type plannerView struct {
	Recommendations []backend.PlannerRecommendation
}

func (s *Server) handlePlanner(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	recs, err := s.apiClient.UserRecommendations(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		if s.authExpired(w, r, err) {
			return
		}
		setFlash(w, "error", err.Error())
	}

	s.renderPage(w, r, "planner", "Planner", "planner", sess,
		plannerView{Recommendations: views.SortRecommendations(recs)})
}

func (s *Server) handlePlannerGenerate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	if _, err := s.apiClient.GenerateRecommendation(r.Context(), sess.Token, sess.UserID); err != nil {
		s.redirectWithError(w, r, "/app/planner", err)
		return
	}

	setFlash(w, "success", "New recommendation generated")
	http.Redirect(w, r, "/app/planner", http.StatusSeeOther)
}
