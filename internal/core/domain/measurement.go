package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMeasurementNotFound = errors.New("health metrics entry not found")
	ErrMeasurementConflict = errors.New("health metrics version conflict")
	ErrInvalidMeasurement  = errors.New("invalid measurement")
)

// MeasurementInput is the raw, user-supplied part of a body-composition
// entry. Optional values are nil when the user did not record them.
type MeasurementInput struct {
	CurrentWeightKg float64  `json:"current_weight_kg" db:"current_weight_kg"`
	BodyFatPercent  *float64 `json:"body_fat_percent,omitempty" db:"body_fat_percent"`
	GoalWeightKg    *float64 `json:"goal_weight_kg,omitempty" db:"goal_weight_kg"`
	WaterPercent    *float64 `json:"water_percent,omitempty" db:"water_percent"`
	WaistCm         *float64 `json:"waist_cm,omitempty" db:"waist_cm"`
	HipCm           *float64 `json:"hip_cm,omitempty" db:"hip_cm"`
	ChestCm         *float64 `json:"chest_cm,omitempty" db:"chest_cm"`
	ThighCm         *float64 `json:"thigh_cm,omitempty" db:"thigh_cm"`
	ArmCm           *float64 `json:"arm_cm,omitempty" db:"arm_cm"`
	NeckCm          *float64 `json:"neck_cm,omitempty" db:"neck_cm"`
	Notes           string   `json:"notes,omitempty" db:"notes"`
}

// Validate enforces the range rules that the calculator relies on.
func (m MeasurementInput) Validate() error {
	if m.CurrentWeightKg <= 0 {
		return fmt.Errorf("%w: current_weight_kg must be greater than 0", ErrInvalidMeasurement)
	}

	percents := []struct {
		name string
		v    *float64
	}{
		{"body_fat_percent", m.BodyFatPercent},
		{"water_percent", m.WaterPercent},
	}
	for _, p := range percents {
		if p.v != nil && (*p.v < 0 || *p.v > 100) {
			return fmt.Errorf("%w: %s must be between 0 and 100", ErrInvalidMeasurement, p.name)
		}
	}

	positives := []struct {
		name string
		v    *float64
	}{
		{"goal_weight_kg", m.GoalWeightKg},
		{"waist_cm", m.WaistCm},
		{"hip_cm", m.HipCm},
		{"chest_cm", m.ChestCm},
		{"thigh_cm", m.ThighCm},
		{"arm_cm", m.ArmCm},
		{"neck_cm", m.NeckCm},
	}
	for _, p := range positives {
		if p.v != nil && *p.v <= 0 {
			return fmt.Errorf("%w: %s must be greater than 0", ErrInvalidMeasurement, p.name)
		}
	}

	return nil
}

// Merge overwrites m with every field that is set in patch.
func (m *MeasurementInput) Merge(patch MeasurementPatch) {
	if patch.CurrentWeightKg != nil {
		m.CurrentWeightKg = *patch.CurrentWeightKg
	}
	merge := func(dst **float64, src *float64) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	merge(&m.BodyFatPercent, patch.BodyFatPercent)
	merge(&m.GoalWeightKg, patch.GoalWeightKg)
	merge(&m.WaterPercent, patch.WaterPercent)
	merge(&m.WaistCm, patch.WaistCm)
	merge(&m.HipCm, patch.HipCm)
	merge(&m.ChestCm, patch.ChestCm)
	merge(&m.ThighCm, patch.ThighCm)
	merge(&m.ArmCm, patch.ArmCm)
	merge(&m.NeckCm, patch.NeckCm)
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
}

type MeasurementPatch struct {
	CurrentWeightKg *float64
	BodyFatPercent  *float64
	GoalWeightKg    *float64
	WaterPercent    *float64
	WaistCm         *float64
	HipCm           *float64
	ChestCm         *float64
	ThighCm         *float64
	ArmCm           *float64
	NeckCm          *float64
	Notes           *string
}

// DerivedMetrics holds the secondary values computed from a measurement and
// a profile. Pointer fields are only set when their raw inputs were present.
type DerivedMetrics struct {
	BMI                         float64  `json:"bmi" db:"bmi"`
	LeanBodyMassKg              *float64 `json:"lean_body_mass_kg,omitempty" db:"lean_body_mass_kg"`
	SkeletalMuscleMassKg        *float64 `json:"skeletal_muscle_mass_kg,omitempty" db:"skeletal_muscle_mass_kg"`
	WaistToHipRatio             *float64 `json:"waist_to_hip_ratio,omitempty" db:"waist_to_hip_ratio"`
	WaistToHeightRatio          *float64 `json:"waist_to_height_ratio,omitempty" db:"waist_to_height_ratio"`
	ABSI                        *float64 `json:"absi,omitempty" db:"absi"`
	RestingMetabolicRate        float64  `json:"resting_metabolic_rate" db:"resting_metabolic_rate"`
	TotalDailyEnergyExpenditure float64  `json:"total_daily_energy_expenditure" db:"total_daily_energy_expenditure"`
	ActivityMultiplier          float64  `json:"activity_multiplier" db:"activity_multiplier"`
	MaximumSafeWeeklyFatLossKg  *float64 `json:"maximum_safe_weekly_fat_loss_kg,omitempty" db:"maximum_safe_weekly_fat_loss_kg"`
	DailyCalorieDeficitTarget   *float64 `json:"daily_calorie_deficit_target,omitempty" db:"daily_calorie_deficit_target"`
}

type DerivedMeasurement struct {
	MeasurementInput
	DerivedMetrics
}

// HealthMetrics is a persisted measurement entry together with its derived
// values.
type HealthMetrics struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`
	DerivedMeasurement
	Version   int       `json:"version" db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewHealthMetrics(userID string, derived DerivedMeasurement) *HealthMetrics {
	now := time.Now().UTC()
	return &HealthMetrics{
		ID:                 uuid.NewString(),
		UserID:             userID,
		DerivedMeasurement: derived,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// MetricsSummary is the read-only calculations view over the latest entry.
type MetricsSummary struct {
	BMI             float64 `json:"bmi"`
	TDEE            float64 `json:"tdee"`
	RMR             float64 `json:"rmr"`
	BMICategory     string  `json:"bmi_category"`
	BodyFatCategory string  `json:"body_fat_category"`
}
