package backend

// Request and response shapes of the remote fitness API. Field names mirror
// the API's snake_case JSON one to one; the envelope wrapper around them is
// handled by the client and never reaches callers.

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	InviteToken string `json:"invite_token,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ExerciseMedia struct {
	ID           string `json:"id"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type Exercise struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	PrimaryMuscle    string          `json:"primary_muscle"`
	SecondaryMuscles []string        `json:"secondary_muscles"`
	Equipment        string          `json:"equipment"`
	CreatedAt        string          `json:"created_at"`
	Media            []ExerciseMedia `json:"media"`
}

type CreateExerciseRequest struct {
	Name             string   `json:"name"`
	PrimaryMuscle    string   `json:"primary_muscle"`
	SecondaryMuscles []string `json:"secondary_muscles"`
	Equipment        string   `json:"equipment"`
}

type AddExerciseMediaRequest struct {
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type WorkoutSet struct {
	ID        string  `json:"id"`
	SetOrder  int     `json:"set_order"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	RPE       float64 `json:"rpe"`
	SetType   string  `json:"set_type"`
	CreatedAt string  `json:"created_at"`
}

type WorkoutExercise struct {
	ID         string       `json:"id"`
	ExerciseID string       `json:"exercise_id"`
	Sets       []WorkoutSet `json:"sets"`
}

type WorkoutSession struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	SplitDayID      string            `json:"split_day_id,omitempty"`
	SessionDate     string            `json:"session_date"`
	DurationMinutes int               `json:"duration_minutes"`
	Notes           string            `json:"notes"`
	Exercises       []WorkoutExercise `json:"exercises"`
	CreatedAt       string            `json:"created_at"`
}

type CreateWorkoutSet struct {
	SetOrder int     `json:"set_order"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	RPE      float64 `json:"rpe"`
	SetType  string  `json:"set_type"`
}

type CreateWorkoutExercise struct {
	ExerciseID string             `json:"exercise_id"`
	Sets       []CreateWorkoutSet `json:"sets"`
}

type CreateWorkoutRequest struct {
	UserID          string                  `json:"user_id"`
	SplitDayID      *string                 `json:"split_day_id"`
	SessionDate     string                  `json:"session_date"`
	DurationMinutes int                     `json:"duration_minutes"`
	Notes           string                  `json:"notes"`
	Exercises       []CreateWorkoutExercise `json:"exercises"`
}

type SplitExercise struct {
	ExerciseID   string  `json:"exercise_id"`
	ExerciseName string  `json:"exercise_name"`
	TargetSets   int     `json:"target_sets"`
	TargetReps   int     `json:"target_reps"`
	TargetWeight float64 `json:"target_weight"`
	Notes        string  `json:"notes"`
}

type SplitDay struct {
	ID        string          `json:"id"`
	DayOrder  int             `json:"day_order"`
	Name      string          `json:"name"`
	Exercises []SplitExercise `json:"exercises"`
}

type SplitTemplate struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"created_by"`
	FocusMuscle string     `json:"focus_muscle"`
	IsActive    bool       `json:"is_active"`
	Days        []SplitDay `json:"days"`
	CreatedAt   string     `json:"created_at"`
}

type CreateSplitExercise struct {
	ExerciseID   string  `json:"exercise_id"`
	TargetSets   int     `json:"target_sets"`
	TargetReps   int     `json:"target_reps"`
	TargetWeight float64 `json:"target_weight"`
	Notes        string  `json:"notes"`
}

type CreateSplitDay struct {
	DayOrder  int                   `json:"day_order"`
	Name      string                `json:"name"`
	Exercises []CreateSplitExercise `json:"exercises"`
}

type CreateSplitRequest struct {
	UserID      string           `json:"user_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	CreatedBy   string           `json:"created_by"`
	FocusMuscle string           `json:"focus_muscle"`
	IsActive    bool             `json:"is_active"`
	Days        []CreateSplitDay `json:"days"`
}

type DailyNutrition struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Date         string `json:"date"`
	ProteinGrams int    `json:"protein_grams"`
	Calories     int    `json:"calories"`
	Notes        string `json:"notes"`
}

type UpsertNutritionRequest struct {
	UserID       string `json:"user_id"`
	Date         string `json:"date"`
	ProteinGrams int    `json:"protein_grams"`
	Calories     int    `json:"calories,omitempty"`
	Notes        string `json:"notes"`
}

type PlannerRecommendation struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	WorkoutSessionID   string `json:"workout_session_id,omitempty"`
	Recommendation     string `json:"recommendation"`
	RecommendationType string `json:"recommendation_type"`
	CreatedAt          string `json:"created_at"`
}

type CoachingSuggestions struct {
	Date        string   `json:"date"`
	Suggestions []string `json:"suggestions"`
}

type ExplainWorkoutExercise struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	RepRange string  `json:"rep_range"`
	Weight   float64 `json:"weight"`
}

type ExplainWorkoutRequest struct {
	Exercises []ExplainWorkoutExercise `json:"exercises"`
}

type ExplanationNote struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

type WorkoutExplanation struct {
	Summary       string            `json:"summary"`
	ExerciseNotes []ExplanationNote `json:"exercise_notes"`
}

type WorkoutPlanRequest struct {
	SplitDayID string `json:"split_day_id"`
	Fatigue    int    `json:"fatigue"`
}

type WorkoutPlanExercise struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	RepRange string  `json:"rep_range"`
	Weight   float64 `json:"weight"`
}

type WorkoutPlan struct {
	UserID     string                `json:"user_id"`
	SplitDayID string                `json:"split_day_id"`
	Date       string                `json:"date"`
	Exercises  []WorkoutPlanExercise `json:"exercises"`
}

type OverloadRequest struct {
	ExerciseID string `json:"exercise_id"`
}

type GenerateSplitRequest struct {
	DaysPerWeek int    `json:"days_per_week"`
	FocusMuscle string `json:"focus_muscle"`
}

type DailyMotivation struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}
