package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeal_MacroShares(t *testing.T) {
	t.Parallel()

	m := NewMeal("user-1", "Bowl", time.Now())
	assert.Zero(t, m.ProteinPercentage(), "no calories means no shares")

	m.TotalCalories = 600
	m.TotalProtein = 30
	m.TotalCarbs = 75
	m.TotalFat = 20

	assert.Equal(t, 20.0, m.ProteinPercentage())
	assert.Equal(t, 50.0, m.CarbsPercentage())
	assert.Equal(t, 30.0, m.FatPercentage())
}

func TestMeal_Validate(t *testing.T) {
	t.Parallel()

	m := NewMeal("user-1", " ", time.Now())
	assert.ErrorIs(t, m.Validate(), ErrMealNameEmpty)

	m = NewMeal("user-1", "Toast", time.Time{})
	assert.ErrorIs(t, m.Validate(), ErrMealTimeMissing)

	m = NewMeal("user-1", "Toast", time.Now())
	m.MealType = MealTypeSnack
	assert.NoError(t, m.Validate())

	m.TotalSodium = -3
	assert.ErrorIs(t, m.Validate(), ErrNegativeNutrients)
}
