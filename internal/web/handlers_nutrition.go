package web

import (
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fitdash/fitdash/internal/backend"
)

type nutritionDayPoint struct {
	Day          string
	ProteinGrams int
	Calories     int
	Failed       bool
}

type nutritionView struct {
	Date       string
	Entry      *backend.DailyNutrition
	Week       []nutritionDayPoint
	MaxProtein int
}

func (s *Server) handleNutrition(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	selected, err := time.Parse("2006-01-02", date)
	if err != nil {
		date = time.Now().Format("2006-01-02")
		selected = time.Now()
	}

	entry, err := s.apiClient.UserNutrition(r.Context(), sess.Token, sess.UserID, date)
	if err != nil {
		if s.authExpired(w, r, err) {
			return
		}
		setFlash(w, "error", err.Error())
		entry = &backend.DailyNutrition{Date: date}
	}

	// 7-day chart backfill, failed days chart as zero instead of
	// taking the whole page down
	view := nutritionView{Date: date, Entry: entry}
	for i := 6; i >= 0; i-- {
		day := selected.AddDate(0, 0, -i).Format("2006-01-02")
		point := nutritionDayPoint{Day: day}
		if day == date {
			point.ProteinGrams = entry.ProteinGrams
			point.Calories = entry.Calories
		} else {
			dayEntry, err := s.apiClient.UserNutrition(r.Context(), sess.Token, sess.UserID, day)
			if err != nil {
				if s.authExpired(w, r, err) {
					return
				}
				log.Debugf("nutrition backfill %s: %s", day, err)
				point.Failed = true
			} else {
				point.ProteinGrams = dayEntry.ProteinGrams
				point.Calories = dayEntry.Calories
			}
		}
		if point.ProteinGrams > view.MaxProtein {
			view.MaxProtein = point.ProteinGrams
		}
		view.Week = append(view.Week, point)
	}

	s.renderPage(w, r, "nutrition", "Nutrition", "nutrition", sess, view)
}

func (s *Server) handleNutritionSave(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/nutrition", err)
		return
	}

	req := backend.UpsertNutritionRequest{
		UserID: sess.UserID,
		Date:   r.PostFormValue("date"),
		Notes:  r.PostFormValue("notes"),
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	req.ProteinGrams, _ = strconv.Atoi(r.PostFormValue("protein_grams"))
	req.Calories, _ = strconv.Atoi(r.PostFormValue("calories"))

	if _, err := s.apiClient.UpsertNutrition(r.Context(), sess.Token, req); err != nil {
		s.redirectWithError(w, r, "/app/nutrition?date="+req.Date, err)
		return
	}

	setFlash(w, "success", "Nutrition saved")
	http.Redirect(w, r, "/app/nutrition?date="+req.Date, http.StatusSeeOther)
}
