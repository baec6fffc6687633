package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrWorkoutConflict    = errors.New("workout version conflict")
	ErrWorkoutNameEmpty   = errors.New("workout name cannot be empty")
	ErrInvalidWorkoutType = errors.New("invalid workout type (must be strength, cardio, flexibility, sports, or other)")
	ErrWorkoutTimeMissing = errors.New("workout start_time is required")
	ErrWorkoutEndBefore   = errors.New("workout end_time cannot be before start_time")
	ErrNegativeTotals     = errors.New("workout totals cannot be negative")
)

const (
	WorkoutTypeStrength    = "strength"
	WorkoutTypeCardio      = "cardio"
	WorkoutTypeFlexibility = "flexibility"
	WorkoutTypeSports      = "sports"
	WorkoutTypeOther       = "other"

	WorkoutStatusCompleted  = "completed"
	WorkoutStatusInProgress = "in_progress"
	WorkoutStatusScheduled  = "scheduled"
)

type Workout struct {
	ID                  string     `json:"id" db:"id"`
	UserID              string     `json:"user_id" db:"user_id"`
	Name                string     `json:"name" db:"name"`
	Description         string     `json:"description,omitempty" db:"description"`
	StartTime           time.Time  `json:"start_time" db:"start_time"`
	EndTime             *time.Time `json:"end_time,omitempty" db:"end_time"`
	TotalCaloriesBurned int        `json:"total_calories_burned" db:"total_calories_burned"`
	TotalDuration       int        `json:"total_duration" db:"total_duration"`
	TotalSets           int        `json:"total_sets" db:"total_sets"`
	TotalReps           int        `json:"total_reps" db:"total_reps"`
	TotalWeight         float64    `json:"total_weight" db:"total_weight"`
	WorkoutType         string     `json:"workout_type,omitempty" db:"workout_type"`
	IsCompleted         bool       `json:"is_completed" db:"is_completed"`
	Version             int        `json:"version" db:"version"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

func NewWorkout(userID, name string, start time.Time) *Workout {
	now := time.Now().UTC()
	return &Workout{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		StartTime: start.UTC(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (w *Workout) Validate() error {
	if strings.TrimSpace(w.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(w.Name) == "" {
		return ErrWorkoutNameEmpty
	}
	if w.StartTime.IsZero() {
		return ErrWorkoutTimeMissing
	}
	if w.EndTime != nil && w.EndTime.Before(w.StartTime) {
		return ErrWorkoutEndBefore
	}
	switch w.WorkoutType {
	case "", WorkoutTypeStrength, WorkoutTypeCardio, WorkoutTypeFlexibility, WorkoutTypeSports, WorkoutTypeOther:
	default:
		return ErrInvalidWorkoutType
	}
	if w.TotalCaloriesBurned < 0 || w.TotalDuration < 0 || w.TotalSets < 0 || w.TotalReps < 0 || w.TotalWeight < 0 {
		return ErrNegativeTotals
	}
	return nil
}

// Duration is the elapsed time between start and end in whole minutes, or 0
// while the workout has no end time.
func (w *Workout) Duration() int {
	if w.StartTime.IsZero() || w.EndTime == nil {
		return 0
	}
	return int(math.Round(w.EndTime.Sub(w.StartTime).Minutes()))
}

func (w *Workout) Status() string {
	if w.IsCompleted {
		return WorkoutStatusCompleted
	}
	if !w.StartTime.IsZero() && w.EndTime == nil {
		return WorkoutStatusInProgress
	}
	return WorkoutStatusScheduled
}
