// Package calculator derives body-composition and metabolic metrics from a
// raw measurement and a normalized user profile.
//
// Everything here is pure: no I/O, no shared state, no bounds checking. Input
// ranges are validated before Compute is called, and a zero denominator
// (hip, height) is a caller bug.
package calculator

import (
	"math"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
)

const (
	// kcal per pound of body fat. Applied to kilogram deltas as-is.
	caloriesPerPound = 3500.0
	daysPerWeek      = 7.0

	safeWeeklyLossFraction = 0.01
)

// Compute returns m enriched with every derived metric whose raw inputs are
// present. BMI, resting metabolic rate and TDEE are always set.
func Compute(m domain.MeasurementInput, p domain.Profile) domain.DerivedMeasurement {
	w := m.CurrentWeightKg
	d := domain.DerivedMetrics{}

	d.BMI = round2(BMI(w, p.HeightCm))

	if m.BodyFatPercent != nil {
		d.LeanBodyMassKg = ptr(round2(LeanBodyMass(w, *m.BodyFatPercent)))
		d.SkeletalMuscleMassKg = ptr(round2(SkeletalMuscleMass(w, p.HeightCm, p.Sex)))
	}

	if m.WaistCm != nil && m.HipCm != nil {
		d.WaistToHipRatio = ptr(round3(*m.WaistCm / *m.HipCm))
	}

	if m.WaistCm != nil {
		d.WaistToHeightRatio = ptr(round3(*m.WaistCm / p.HeightCm))
		d.ABSI = ptr(round3(ABSI(w, p.HeightCm, *m.WaistCm)))
	}

	// TDEE scales the reported (rounded) RMR.
	d.RestingMetabolicRate = round2(RestingMetabolicRate(w, p.HeightCm, p.AgeYears, p.Sex))
	d.ActivityMultiplier = p.ActivityMultiplier
	d.TotalDailyEnergyExpenditure = round2(d.RestingMetabolicRate * p.ActivityMultiplier)

	if m.BodyFatPercent != nil {
		d.MaximumSafeWeeklyFatLossKg = ptr(round2(w * safeWeeklyLossFraction))
	}

	if m.GoalWeightKg != nil {
		d.DailyCalorieDeficitTarget = ptr(round2(DailyCalorieDeficit(w, *m.GoalWeightKg)))
	}

	return domain.DerivedMeasurement{
		MeasurementInput: m,
		DerivedMetrics:   d,
	}
}

func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

func LeanBodyMass(weightKg, bodyFatPercent float64) float64 {
	return weightKg * (1 - bodyFatPercent/100)
}

// SkeletalMuscleMass uses a sex-specific linear regression on weight and
// height.
func SkeletalMuscleMass(weightKg, heightCm float64, sex domain.Sex) float64 {
	if sex == domain.SexFemale {
		return 0.252*weightKg + 0.473*heightCm - 48.3
	}
	return 0.407*weightKg + 0.267*heightCm - 19.2
}

// ABSI is A Body Shape Index: waist (m) / (weight^(2/3) * height(m)^(1/2)).
func ABSI(weightKg, heightCm, waistCm float64) float64 {
	waistM := waistCm / 100
	heightM := heightCm / 100
	return waistM / (math.Pow(weightKg, 2.0/3.0) * math.Sqrt(heightM))
}

// RestingMetabolicRate is the Mifflin-St Jeor equation.
func RestingMetabolicRate(weightKg, heightCm float64, ageYears int, sex domain.Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if sex == domain.SexFemale {
		return base - 161
	}
	return base + 5
}

// DailyCalorieDeficit is the daily deficit that closes the gap to the goal
// weight in one week. It is 0 once the goal is reached.
func DailyCalorieDeficit(currentKg, goalKg float64) float64 {
	diff := currentKg - goalKg
	if diff <= 0 {
		return 0
	}
	return diff * caloriesPerPound / daysPerWeek
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func ptr(v float64) *float64 { return &v }
