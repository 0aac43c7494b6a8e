package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/views"
)

type workoutsView struct {
	Cursor      time.Time
	PrevMonth   string // yyyy-MM
	NextMonth   string
	MonthLabel  string
	Cells       []views.CalendarCell
	ByDay       map[string][]backend.WorkoutSession
	SelectedDay string
	DayWorkouts []backend.WorkoutSession
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	now := time.Now()
	cursor := now
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		if parsed, err := time.Parse("2006-01", monthParam); err == nil {
			cursor = parsed
		}
	}

	workouts, err := s.apiClient.UserWorkouts(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		if s.authExpired(w, r, err) {
			return
		}
		setFlash(w, "error", err.Error())
		workouts = nil
	}

	byDay := views.BucketByDay(workouts)

	selectedDay := r.URL.Query().Get("day")
	if selectedDay == "" {
		selectedDay = now.Format("2006-01-02")
	}

	view := workoutsView{
		Cursor:      cursor,
		PrevMonth:   cursor.AddDate(0, -1, 0).Format("2006-01"),
		NextMonth:   cursor.AddDate(0, 1, 0).Format("2006-01"),
		MonthLabel:  cursor.Format("January 2006"),
		Cells:       views.MonthGrid(cursor, now),
		ByDay:       byDay,
		SelectedDay: selectedDay,
		DayWorkouts: byDay[selectedDay],
	}
	s.renderPage(w, r, "workouts", "Workouts", "workouts", sess, view)
}

type workoutNewView struct {
	Exercises []backend.Exercise
	Splits    []backend.SplitTemplate
	Today     string
}

func (s *Server) handleWorkoutNewPage(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)

	exercises, err := s.apiClient.ListExercises(r.Context(), sess.Token)
	if err != nil {
		s.redirectWithError(w, r, "/app/workouts", err)
		return
	}
	splits, err := s.apiClient.UserSplits(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		s.redirectWithError(w, r, "/app/workouts", err)
		return
	}

	view := workoutNewView{
		Exercises: views.FilterExercises(exercises, views.ExerciseFilter{}),
		Splits:    views.SortSplits(splits),
		Today:     time.Now().Format("2006-01-02"),
	}
	s.renderPage(w, r, "workout_new", "Log workout", "workouts", sess, view)
}

// handleWorkoutCreate reads the dynamic exercise/set rows off the
// form. Row fields are indexed exercise_id_<i>, and per exercise
// reps_<i>_<j> / weight_<i>_<j>; gaps left by removed rows are fine,
// set_order is renumbered before the request goes out.
func (s *Server) handleWorkoutCreate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/app/workouts/new", err)
		return
	}

	req := backend.CreateWorkoutRequest{
		UserID:      sess.UserID,
		SessionDate: r.PostFormValue("session_date"),
		Notes:       r.PostFormValue("notes"),
	}
	if req.SessionDate == "" {
		setFlash(w, "error", "Session date is required")
		http.Redirect(w, r, "/app/workouts/new", http.StatusSeeOther)
		return
	}
	if minutes, err := strconv.Atoi(r.PostFormValue("duration_minutes")); err == nil {
		req.DurationMinutes = minutes
	}
	if splitDayID := r.PostFormValue("split_day_id"); splitDayID != "" {
		req.SplitDayID = &splitDayID
	}

	for i := 0; i < 50; i++ {
		exerciseID := r.PostFormValue(formIdx("exercise_id", i))
		if exerciseID == "" {
			continue
		}
		exercise := backend.CreateWorkoutExercise{ExerciseID: exerciseID}
		for j := 0; j < 20; j++ {
			repsRaw := r.PostFormValue(formIdx2("reps", i, j))
			if repsRaw == "" {
				continue
			}
			set := backend.CreateWorkoutSet{SetType: "normal"}
			set.Reps, _ = strconv.Atoi(repsRaw)
			set.Weight, _ = strconv.ParseFloat(r.PostFormValue(formIdx2("weight", i, j)), 64)
			set.RPE, _ = strconv.ParseFloat(r.PostFormValue(formIdx2("rpe", i, j)), 64)
			if setType := r.PostFormValue(formIdx2("set_type", i, j)); setType != "" {
				set.SetType = setType
			}
			exercise.Sets = append(exercise.Sets, set)
		}
		if len(exercise.Sets) == 0 {
			continue
		}
		exercise.Sets = views.RenumberSets(exercise.Sets)
		req.Exercises = append(req.Exercises, exercise)
	}

	if len(req.Exercises) == 0 {
		setFlash(w, "error", "A workout needs at least one exercise with sets")
		http.Redirect(w, r, "/app/workouts/new", http.StatusSeeOther)
		return
	}

	workout, err := s.apiClient.CreateWorkout(r.Context(), sess.Token, req)
	if err != nil {
		s.redirectWithError(w, r, "/app/workouts/new", err)
		return
	}

	setFlash(w, "success", "Workout logged")
	http.Redirect(w, r, "/app/workouts/"+workout.ID, http.StatusSeeOther)
}

type workoutDetailView struct {
	Workout   *backend.WorkoutSession
	Exercises map[string]backend.Exercise
	Volume    float64
}

func (s *Server) handleWorkoutDetail(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	workoutID := mux.Vars(r)["id"]

	workout, err := s.apiClient.GetWorkout(r.Context(), sess.Token, workoutID)
	if err != nil {
		s.redirectWithError(w, r, "/app/workouts", err)
		return
	}

	exercisesByID := make(map[string]backend.Exercise)
	if exercises, err := s.apiClient.ListExercises(r.Context(), sess.Token); err == nil {
		for _, ex := range exercises {
			exercisesByID[ex.ID] = ex
		}
	}

	var volume float64
	for _, we := range workout.Exercises {
		for _, set := range we.Sets {
			volume += float64(set.Reps) * set.Weight
		}
	}

	view := workoutDetailView{
		Workout:   workout,
		Exercises: exercisesByID,
		Volume:    volume,
	}
	s.renderPage(w, r, "workout_detail", "Workout", "workouts", sess, view)
}

func (s *Server) handleWorkoutDelete(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionManager.Resolve(r.Context(), r)
	workoutID := mux.Vars(r)["id"]

	if err := s.apiClient.DeleteWorkout(r.Context(), sess.Token, workoutID); err != nil {
		s.redirectWithError(w, r, "/app/workouts", err)
		return
	}

	setFlash(w, "success", "Workout deleted")
	http.Redirect(w, r, "/app/workouts", http.StatusSeeOther)
}

func formIdx(name string, i int) string {
	return name + "_" + strconv.Itoa(i)
}

func formIdx2(name string, i, j int) string {
	return name + "_" + strconv.Itoa(i) + "_" + strconv.Itoa(j)
}
