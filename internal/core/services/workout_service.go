package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/streak"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"
)

type WorkoutService struct {
	repo    domain.WorkoutRepository
	tracker *streak.Tracker
	metrics *metrics.Manager
}

func NewWorkoutService(repo domain.WorkoutRepository, tracker *streak.Tracker, m *metrics.Manager) *WorkoutService {
	return &WorkoutService{
		repo:    repo,
		tracker: tracker,
		metrics: m,
	}
}

type CreateWorkoutInput struct {
	UserID              string
	Name                string
	Description         string
	StartTime           time.Time
	EndTime             *time.Time
	TotalCaloriesBurned int
	TotalDuration       int
	TotalSets           int
	TotalReps           int
	TotalWeight         float64
	WorkoutType         string
	IsCompleted         bool
}

// UpdateWorkoutInput carries only the fields the client sent.
type UpdateWorkoutInput struct {
	ID                  string
	UserID              string
	Name                *string
	Description         *string
	StartTime           *time.Time
	EndTime             *time.Time
	TotalCaloriesBurned *int
	TotalDuration       *int
	TotalSets           *int
	TotalReps           *int
	TotalWeight         *float64
	WorkoutType         *string
	IsCompleted         *bool
	Version             int
}

func (s *WorkoutService) Create(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error) {
	w := domain.NewWorkout(input.UserID, input.Name, input.StartTime)
	w.Description = input.Description
	w.EndTime = utcPtr(input.EndTime)
	w.TotalCaloriesBurned = input.TotalCaloriesBurned
	w.TotalDuration = input.TotalDuration
	w.TotalSets = input.TotalSets
	w.TotalReps = input.TotalReps
	w.TotalWeight = input.TotalWeight
	w.WorkoutType = input.WorkoutType
	w.IsCompleted = input.IsCompleted

	if w.TotalDuration == 0 {
		w.TotalDuration = w.Duration()
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("workout service: create: %w", err)
	}
	return w, nil
}

func (s *WorkoutService) ListByUserID(ctx context.Context, userID string) ([]*domain.Workout, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *WorkoutService) GetByID(ctx context.Context, id string, userID string) (*domain.Workout, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return w, nil
}

func (s *WorkoutService) Update(ctx context.Context, input UpdateWorkoutInput) (*domain.Workout, error) {
	w, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Version > 0 && w.Version != input.Version {
		return nil, fmt.Errorf("%w: client v%d vs server v%d", domain.ErrWorkoutConflict, input.Version, w.Version)
	}

	setIfPresent(&w.Name, input.Name)
	setIfPresent(&w.Description, input.Description)
	if input.StartTime != nil {
		w.StartTime = input.StartTime.UTC()
	}
	if input.EndTime != nil {
		w.EndTime = utcPtr(input.EndTime)
	}
	setIfPresent(&w.TotalCaloriesBurned, input.TotalCaloriesBurned)
	setIfPresent(&w.TotalDuration, input.TotalDuration)
	setIfPresent(&w.TotalSets, input.TotalSets)
	setIfPresent(&w.TotalReps, input.TotalReps)
	setIfPresent(&w.TotalWeight, input.TotalWeight)
	setIfPresent(&w.WorkoutType, input.WorkoutType)
	setIfPresent(&w.IsCompleted, input.IsCompleted)

	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("workout service: update: %w", err)
	}
	return w, nil
}

func (s *WorkoutService) Delete(ctx context.Context, id string, userID string) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}

// CurrentStreak counts consecutive local days with at least one workout
// start, ending today or yesterday in tz.
func (s *WorkoutService) CurrentStreak(ctx context.Context, userID, tz string) (streak.Result, error) {
	return currentStreak(ctx, s.tracker, s.metrics, metrics.StreakKindWorkout, s.repo.StartTimes, userID, tz)
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
