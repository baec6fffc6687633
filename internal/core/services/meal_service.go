package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/streak"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"
)

type MealService struct {
	repo    domain.MealRepository
	tracker *streak.Tracker
	metrics *metrics.Manager
}

func NewMealService(repo domain.MealRepository, tracker *streak.Tracker, m *metrics.Manager) *MealService {
	return &MealService{
		repo:    repo,
		tracker: tracker,
		metrics: m,
	}
}

type CreateMealInput struct {
	UserID        string
	Name          string
	Description   string
	MealTime      time.Time
	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64
	TotalFiber    float64
	TotalSugar    float64
	TotalSodium   float64
	MealType      string
	ServingSize   float64
	ServingUnit   string
}

type UpdateMealInput struct {
	ID            string
	UserID        string
	Name          *string
	Description   *string
	MealTime      *time.Time
	TotalCalories *float64
	TotalProtein  *float64
	TotalCarbs    *float64
	TotalFat      *float64
	TotalFiber    *float64
	TotalSugar    *float64
	TotalSodium   *float64
	MealType      *string
	ServingSize   *float64
	ServingUnit   *string
	Version       int
}

func (s *MealService) Create(ctx context.Context, input CreateMealInput) (*domain.Meal, error) {
	m := domain.NewMeal(input.UserID, input.Name, input.MealTime)
	m.Description = input.Description
	m.TotalCalories = input.TotalCalories
	m.TotalProtein = input.TotalProtein
	m.TotalCarbs = input.TotalCarbs
	m.TotalFat = input.TotalFat
	m.TotalFiber = input.TotalFiber
	m.TotalSugar = input.TotalSugar
	m.TotalSodium = input.TotalSodium
	m.MealType = input.MealType
	m.ServingSize = input.ServingSize
	m.ServingUnit = input.ServingUnit

	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("meal service: create: %w", err)
	}
	return m, nil
}

func (s *MealService) ListByUserID(ctx context.Context, userID string) ([]*domain.Meal, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *MealService) GetByID(ctx context.Context, id string, userID string) (*domain.Meal, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return m, nil
}

func (s *MealService) Update(ctx context.Context, input UpdateMealInput) (*domain.Meal, error) {
	m, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Version > 0 && m.Version != input.Version {
		return nil, fmt.Errorf("%w: client v%d vs server v%d", domain.ErrMealConflict, input.Version, m.Version)
	}

	setIfPresent(&m.Name, input.Name)
	setIfPresent(&m.Description, input.Description)
	if input.MealTime != nil {
		m.MealTime = input.MealTime.UTC()
	}
	setIfPresent(&m.TotalCalories, input.TotalCalories)
	setIfPresent(&m.TotalProtein, input.TotalProtein)
	setIfPresent(&m.TotalCarbs, input.TotalCarbs)
	setIfPresent(&m.TotalFat, input.TotalFat)
	setIfPresent(&m.TotalFiber, input.TotalFiber)
	setIfPresent(&m.TotalSugar, input.TotalSugar)
	setIfPresent(&m.TotalSodium, input.TotalSodium)
	setIfPresent(&m.MealType, input.MealType)
	setIfPresent(&m.ServingSize, input.ServingSize)
	setIfPresent(&m.ServingUnit, input.ServingUnit)

	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("meal service: update: %w", err)
	}
	return m, nil
}

func (s *MealService) Delete(ctx context.Context, id string, userID string) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}

func (s *MealService) CurrentStreak(ctx context.Context, userID, tz string) (streak.Result, error) {
	return currentStreak(ctx, s.tracker, s.metrics, metrics.StreakKindMeal, s.repo.MealTimes, userID, tz)
}
