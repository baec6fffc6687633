package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/calculator"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
)

type metricsFlags struct {
	weight     float64
	height     float64
	age        int
	sex        string
	activity   string
	multiplier float64
	bodyFat    float64
	goal       float64
	waist      float64
	hip        float64
}

type metricsOutput struct {
	Profile     domain.Profile            `json:"profile"`
	Measurement domain.DerivedMeasurement `json:"measurement"`
	Summary     domain.MetricsSummary     `json:"summary"`
}

func newMetricsCmd() *cobra.Command {
	var f metricsFlags

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Derive body-composition and energy metrics from one measurement",
		Example: "  fitcalc metrics --weight 70 --height 175 --age 30 --sex female --body-fat 24 --waist 72 --hip 98\n" +
			"  fitcalc metrics --weight 82 --goal 78 --activity very_active",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.profile(cmd)
			if err != nil {
				return err
			}
			in := f.measurement(cmd)
			if err := in.Validate(); err != nil {
				return err
			}

			out := calculator.Compute(in, p)
			return writeJSON(cmd.OutOrStdout(), metricsOutput{
				Profile:     p,
				Measurement: out,
				Summary: domain.MetricsSummary{
					BMI:             out.BMI,
					TDEE:            out.TotalDailyEnergyExpenditure,
					RMR:             out.RestingMetabolicRate,
					BMICategory:     calculator.BMICategory(out.BMI),
					BodyFatCategory: calculator.BodyFatCategory(out.BodyFatPercent, p.Sex),
				},
			})
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.weight, "weight", 0, "Current weight in kg (required)")
	fl.Float64Var(&f.height, "height", domain.DefaultHeightCm, "Height in cm")
	fl.IntVar(&f.age, "age", domain.DefaultAgeYears, "Age in years")
	fl.StringVar(&f.sex, "sex", string(domain.DefaultSex), "male, female or other")
	fl.StringVar(&f.activity, "activity", "", "Activity level (sedentary, lightly_active, moderately_active, very_active, extremely_active)")
	fl.Float64Var(&f.multiplier, "multiplier", domain.DefaultActivityMultiplier, "Explicit TDEE activity multiplier, wins over --activity")
	fl.Float64Var(&f.bodyFat, "body-fat", 0, "Body fat percent")
	fl.Float64Var(&f.goal, "goal", 0, "Goal weight in kg")
	fl.Float64Var(&f.waist, "waist", 0, "Waist circumference in cm")
	fl.Float64Var(&f.hip, "hip", 0, "Hip circumference in cm")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

// profile starts from the engine defaults and overrides what was passed.
func (f *metricsFlags) profile(cmd *cobra.Command) (domain.Profile, error) {
	p := domain.NormalizeProfile(nil, time.Now())
	changed := cmd.Flags().Changed

	if changed("height") {
		if f.height <= 0 {
			return p, fmt.Errorf("%w: height must be greater than 0", domain.ErrInvalidProfileValue)
		}
		p.HeightCm = f.height
	}
	if changed("age") {
		if f.age <= 0 {
			return p, fmt.Errorf("%w: age must be greater than 0", domain.ErrInvalidProfileValue)
		}
		p.AgeYears = f.age
	}

	switch f.sex {
	case domain.GenderFemale, domain.GenderOther:
		p.Sex = domain.SexFemale
	case domain.GenderMale:
		p.Sex = domain.SexMale
	default:
		return p, domain.ErrInvalidGender
	}

	if f.activity != "" {
		m, ok := domain.ActivityLevels[f.activity]
		if !ok {
			return p, domain.ErrInvalidActivityLevel
		}
		p.ActivityMultiplier = m
	}
	if changed("multiplier") {
		if f.multiplier <= 0 {
			return p, fmt.Errorf("%w: multiplier must be greater than 0", domain.ErrInvalidProfileValue)
		}
		p.ActivityMultiplier = f.multiplier
	}

	return p, nil
}

func (f *metricsFlags) measurement(cmd *cobra.Command) domain.MeasurementInput {
	in := domain.MeasurementInput{CurrentWeightKg: f.weight}
	changed := cmd.Flags().Changed

	if changed("body-fat") {
		in.BodyFatPercent = &f.bodyFat
	}
	if changed("goal") {
		in.GoalWeightKg = &f.goal
	}
	if changed("waist") {
		in.WaistCm = &f.waist
	}
	if changed("hip") {
		in.HipCm = &f.hip
	}
	return in
}
