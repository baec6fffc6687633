package calculator

import "github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"

const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal weight"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"

	BodyFatEssential = "Essential Fat"
	BodyFatAthletes  = "Athletes"
	BodyFatFitness   = "Fitness"
	BodyFatAverage   = "Average"
	BodyFatObese     = "Obese"
	BodyFatUnknown   = "Unknown"
)

var (
	maleBodyFatBands   = [4]float64{6, 14, 18, 25}
	femaleBodyFatBands = [4]float64{10, 16, 20, 32}
	bodyFatLabels      = [5]string{BodyFatEssential, BodyFatAthletes, BodyFatFitness, BodyFatAverage, BodyFatObese}
)

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BodyFatCategory bands percent with sex-specific upper bounds (exclusive).
func BodyFatCategory(percent *float64, sex domain.Sex) string {
	if percent == nil {
		return BodyFatUnknown
	}

	bands := maleBodyFatBands
	if sex == domain.SexFemale {
		bands = femaleBodyFatBands
	}

	for i, upper := range bands {
		if *percent < upper {
			return bodyFatLabels[i]
		}
	}
	return bodyFatLabels[len(bodyFatLabels)-1]
}
