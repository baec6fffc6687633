package domain

import "time"

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"

	DefaultHeightCm           = 175.0
	DefaultAgeYears           = 25
	DefaultSex                = SexMale
	DefaultActivityMultiplier = 1.4
)

// Profile is the fully-populated view of a user that the metrics calculator
// consumes. Build it with NormalizeProfile; the calculator never applies
// defaults itself.
type Profile struct {
	HeightCm           float64 `json:"height_cm"`
	AgeYears           int     `json:"age_years"`
	Sex                Sex     `json:"sex"`
	ActivityMultiplier float64 `json:"activity_multiplier"`
}

// NormalizeProfile substitutes defaults for every profile field the user has
// not filled in. A nil user yields the all-defaults profile.
func NormalizeProfile(u *User, now time.Time) Profile {
	p := Profile{
		HeightCm:           DefaultHeightCm,
		AgeYears:           DefaultAgeYears,
		Sex:                DefaultSex,
		ActivityMultiplier: DefaultActivityMultiplier,
	}
	if u == nil {
		return p
	}

	if u.HeightCm != nil && *u.HeightCm > 0 {
		p.HeightCm = *u.HeightCm
	}
	if age, ok := u.Age(now); ok && age > 0 {
		p.AgeYears = age
	}
	// Only an unset or "male" gender uses the male equations.
	if u.Gender != nil && *u.Gender != "" && *u.Gender != GenderMale {
		p.Sex = SexFemale
	}
	if u.ActivityMultiplier != nil && *u.ActivityMultiplier > 0 {
		p.ActivityMultiplier = *u.ActivityMultiplier
	}

	return p
}
