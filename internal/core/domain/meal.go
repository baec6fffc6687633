package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMealNotFound      = errors.New("meal not found")
	ErrMealConflict      = errors.New("meal version conflict")
	ErrMealNameEmpty     = errors.New("meal name cannot be empty")
	ErrInvalidMealType   = errors.New("invalid meal type (must be breakfast, lunch, dinner, snack, or other)")
	ErrMealTimeMissing   = errors.New("meal_time is required")
	ErrNegativeNutrients = errors.New("meal nutrient totals cannot be negative")
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
	MealTypeOther     = "other"
)

type Meal struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description,omitempty" db:"description"`
	MealTime      time.Time `json:"meal_time" db:"meal_time"`
	TotalCalories float64   `json:"total_calories" db:"total_calories"`
	TotalProtein  float64   `json:"total_protein" db:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs" db:"total_carbs"`
	TotalFat      float64   `json:"total_fat" db:"total_fat"`
	TotalFiber    float64   `json:"total_fiber" db:"total_fiber"`
	TotalSugar    float64   `json:"total_sugar" db:"total_sugar"`
	TotalSodium   float64   `json:"total_sodium" db:"total_sodium"`
	MealType      string    `json:"meal_type,omitempty" db:"meal_type"`
	ServingSize   float64   `json:"serving_size" db:"serving_size"`
	ServingUnit   string    `json:"serving_unit,omitempty" db:"serving_unit"`
	Version       int       `json:"version" db:"version"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func NewMeal(userID, name string, mealTime time.Time) *Meal {
	now := time.Now().UTC()
	return &Meal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		MealTime:  mealTime.UTC(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (m *Meal) Validate() error {
	if strings.TrimSpace(m.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return ErrMealNameEmpty
	}
	if m.MealTime.IsZero() {
		return ErrMealTimeMissing
	}
	switch m.MealType {
	case "", MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeOther:
	default:
		return ErrInvalidMealType
	}
	for _, v := range []float64{m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFat, m.TotalFiber, m.TotalSugar, m.TotalSodium, m.ServingSize} {
		if v < 0 {
			return ErrNegativeNutrients
		}
	}
	return nil
}

// Macro shares of total calories, at 4 kcal/g for protein and carbs and
// 9 kcal/g for fat.
func (m *Meal) ProteinPercentage() float64 { return m.macroShare(m.TotalProtein, 4) }
func (m *Meal) CarbsPercentage() float64   { return m.macroShare(m.TotalCarbs, 4) }
func (m *Meal) FatPercentage() float64     { return m.macroShare(m.TotalFat, 9) }

func (m *Meal) macroShare(grams, kcalPerGram float64) float64 {
	if m.TotalCalories == 0 {
		return 0
	}
	return math.Round(grams*kcalPerGram/m.TotalCalories*100*10) / 10
}
