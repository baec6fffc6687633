package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/streak"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"
)

func TestMealService(t *testing.T) {
	ctx := context.Background()
	service := NewMealService(
		repository.NewInMemoryMealRepository(),
		streak.NewTrackerWithClock(func() time.Time { return fixedNow }),
		metrics.NewTestManager(),
	)

	t.Run("Success: Create and update", func(t *testing.T) {
		meal, err := service.Create(ctx, CreateMealInput{
			UserID:        "user-1",
			Name:          "Oats",
			MealTime:      fixedNow.Add(-10 * time.Hour),
			MealType:      domain.MealTypeBreakfast,
			TotalCalories: 400,
			TotalProtein:  20,
		})
		require.NoError(t, err)
		assert.Equal(t, 20.0, meal.ProteinPercentage())

		calories := 450.0
		updated, err := service.Update(ctx, UpdateMealInput{ID: meal.ID, UserID: "user-1", TotalCalories: &calories, Version: 1})
		require.NoError(t, err)
		assert.Equal(t, 450.0, updated.TotalCalories)
		assert.Equal(t, "Oats", updated.Name)
		assert.Equal(t, 2, updated.Version)
	})

	t.Run("Fail: Validation", func(t *testing.T) {
		_, err := service.Create(ctx, CreateMealInput{UserID: "user-1", Name: "Pie", MealTime: fixedNow, MealType: "brunch"})
		assert.ErrorIs(t, err, domain.ErrInvalidMealType)

		_, err = service.Create(ctx, CreateMealInput{UserID: "user-1", Name: "Pie", MealTime: fixedNow, TotalFat: -1})
		assert.ErrorIs(t, err, domain.ErrNegativeNutrients)

		_, err = service.Create(ctx, CreateMealInput{UserID: "user-1", Name: "Pie"})
		assert.ErrorIs(t, err, domain.ErrMealTimeMissing)
	})

	t.Run("Fail: Foreign meal", func(t *testing.T) {
		meal, err := service.Create(ctx, CreateMealInput{UserID: "user-1", Name: "Soup", MealTime: fixedNow})
		require.NoError(t, err)

		_, err = service.Update(ctx, UpdateMealInput{ID: meal.ID, UserID: "user-2"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Success: Streak is localized", func(t *testing.T) {
		// 23:30 in Los Angeles on the 15th is already the 16th in UTC.
		_, err := service.Create(ctx, CreateMealInput{
			UserID:   "user-3",
			Name:     "Late snack",
			MealTime: time.Date(2026, 10, 16, 6, 30, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		res, err := service.CurrentStreak(ctx, "user-3", "America/Los_Angeles")
		require.NoError(t, err)
		assert.Equal(t, 1, res.StreakLength)
		require.NotNil(t, res.MostRecentLocalDate)
		assert.Equal(t, "2026-10-15", *res.MostRecentLocalDate)
	})
}
