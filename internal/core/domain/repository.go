package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	// UpdateProfile persists the profile columns of the user (names, date of
	// birth, height, weight, gender, activity level and multiplier).
	UpdateProfile(ctx context.Context, user *User) error
}

type HealthMetricsRepository interface {
	Create(ctx context.Context, m *HealthMetrics) error

	// GetByID retrieves a single entry by id. It does not check ownership.
	GetByID(ctx context.Context, id string) (*HealthMetrics, error)

	// ListByUserID returns every entry of the user, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*HealthMetrics, error)

	// Latest returns the newest entry of the user or ErrMeasurementNotFound.
	Latest(ctx context.Context, userID string) (*HealthMetrics, error)

	// Update persists m when m.Version still matches the stored version and
	// then increments it; a stale version yields ErrMeasurementConflict.
	Update(ctx context.Context, m *HealthMetrics) error

	Delete(ctx context.Context, id string, userID string) error
}

type WorkoutRepository interface {
	Create(ctx context.Context, w *Workout) error
	GetByID(ctx context.Context, id string) (*Workout, error)

	// ListByUserID returns the user's workouts ordered by start time, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*Workout, error)
	Update(ctx context.Context, w *Workout) error
	Delete(ctx context.Context, id string, userID string) error

	// StartTimes returns only the start times of every workout of the user.
	// This is what the streak calculation needs and nothing more.
	StartTimes(ctx context.Context, userID string) ([]time.Time, error)
}

type MealRepository interface {
	Create(ctx context.Context, m *Meal) error
	GetByID(ctx context.Context, id string) (*Meal, error)

	// ListByUserID returns the user's meals ordered by meal time, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*Meal, error)
	Update(ctx context.Context, m *Meal) error
	Delete(ctx context.Context, id string, userID string) error

	MealTimes(ctx context.Context, userID string) ([]time.Time, error)
}
