package web

import (
	"net/http"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/views"
)

type dashboardView struct {
	WorkoutsThisWeek int
	ProteinToday     int
	Recommendation   *backend.PlannerRecommendation
	Motivation       *backend.DailyMotivation
	RecentWorkouts   []backend.WorkoutSession

	WorkoutsErr   string
	NutritionErr  string
	PlannerErr    string
	MotivationErr string
}

// handleDashboard fans out to the API and lets every card degrade on
// its own: one failing fetch shows an inline error, the others still
// render. Only an expired session short-circuits the whole page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	ctx := r.Context()
	now := time.Now()

	var view dashboardView
	var (
		workouts []backend.WorkoutSession
		recs     []backend.PlannerRecommendation

		workoutsErr, nutritionErr, plannerErr, motivationErr error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		workouts, workoutsErr = s.apiClient.UserWorkouts(ctx, sess.Token, sess.UserID)
	}()
	go func() {
		defer wg.Done()
		var nutrition *backend.DailyNutrition
		nutrition, nutritionErr = s.apiClient.UserNutrition(
			ctx, sess.Token, sess.UserID, now.Format("2006-01-02"),
		)
		if nutritionErr == nil {
			view.ProteinToday = nutrition.ProteinGrams
		}
	}()
	go func() {
		defer wg.Done()
		recs, plannerErr = s.apiClient.UserRecommendations(ctx, sess.Token, sess.UserID)
	}()
	go func() {
		defer wg.Done()
		view.Motivation, motivationErr = s.apiClient.DailyMotivation(ctx, sess.Token)
	}()
	wg.Wait()

	for _, err := range []error{workoutsErr, nutritionErr, plannerErr, motivationErr} {
		if err != nil && s.authExpired(w, r, err) {
			return
		}
	}

	if workoutsErr != nil {
		log.Errorf("dashboard workouts fetch: %s", workoutsErr)
		view.WorkoutsErr = workoutsErr.Error()
	} else {
		view.WorkoutsThisWeek = views.WorkoutsSinceMonday(workouts, now)
		view.RecentWorkouts = recentWorkouts(workouts, 5)
	}
	if nutritionErr != nil {
		log.Errorf("dashboard nutrition fetch: %s", nutritionErr)
		view.NutritionErr = nutritionErr.Error()
	}
	if plannerErr != nil {
		log.Errorf("dashboard planner fetch: %s", plannerErr)
		view.PlannerErr = plannerErr.Error()
	} else {
		view.Recommendation = views.LatestRecommendation(recs)
	}
	if motivationErr != nil {
		log.Errorf("dashboard motivation fetch: %s", motivationErr)
		view.MotivationErr = motivationErr.Error()
	}

	s.renderPage(w, r, "dashboard", "Dashboard", "dashboard", sess, view)
}

func recentWorkouts(workouts []backend.WorkoutSession, limit int) []backend.WorkoutSession {
	buckets := views.BucketByDay(workouts)
	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	// newest day first
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	var recent []backend.WorkoutSession
	for _, day := range days {
		for _, workout := range buckets[day] {
			if len(recent) == limit {
				return recent
			}
			recent = append(recent, workout)
		}
	}
	return recent
}
