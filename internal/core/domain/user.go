package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters long")
	ErrInvalidGender        = errors.New("invalid gender (must be male, female, or other)")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrInvalidProfileValue  = errors.New("profile values must be positive")
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// ActivityLevels maps each activity level to its TDEE multiplier.
var ActivityLevels = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

type User struct {
	ID                 string     `json:"id" db:"id"`
	Email              string     `json:"email" db:"email"`
	PasswordHash       string     `json:"-" db:"password_hash"`
	FirstName          string     `json:"first_name" db:"first_name"`
	LastName           string     `json:"last_name" db:"last_name"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	HeightCm           *float64   `json:"height_cm,omitempty" db:"height_cm"`
	WeightKg           *float64   `json:"weight_kg,omitempty" db:"weight_kg"`
	Gender             *string    `json:"gender,omitempty" db:"gender"`
	ActivityLevel      *string    `json:"activity_level,omitempty" db:"activity_level"`
	ActivityMultiplier *float64   `json:"activity_multiplier,omitempty" db:"activity_multiplier"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

func NewUser(id, email string) (*User, error) {

	email = NormalizeEmail(email)

	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	now := time.Now().UTC()
	return &User{
		ID:        id,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (u *User) SetPassword(plainPassword string) error {
	if utf8.RuneCountInString(plainPassword) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), 12)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *User) CheckPassword(plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plainPassword))
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Age returns the user's age in whole years at now. ok is false when no
// date of birth is on record.
func (u *User) Age(now time.Time) (int, bool) {
	if u.DateOfBirth == nil || u.DateOfBirth.IsZero() {
		return 0, false
	}

	dob := u.DateOfBirth.UTC()
	now = now.UTC()

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age, true
}

type ProfileUpdate struct {
	FirstName          *string
	LastName           *string
	DateOfBirth        *time.Time
	HeightCm           *float64
	WeightKg           *float64
	Gender             *string
	ActivityLevel      *string
	ActivityMultiplier *float64
}

// ApplyProfile merges the non-nil fields of upd into the user. Setting an
// activity level without an explicit multiplier also sets the multiplier
// that belongs to that level.
func (u *User) ApplyProfile(upd ProfileUpdate) error {
	if upd.Gender != nil {
		switch *upd.Gender {
		case GenderMale, GenderFemale, GenderOther:
		default:
			return ErrInvalidGender
		}
	}

	var levelMultiplier *float64
	if upd.ActivityLevel != nil {
		m, ok := ActivityLevels[*upd.ActivityLevel]
		if !ok {
			return ErrInvalidActivityLevel
		}
		levelMultiplier = &m
	}

	for _, v := range []*float64{upd.HeightCm, upd.WeightKg, upd.ActivityMultiplier} {
		if v != nil && *v <= 0 {
			return ErrInvalidProfileValue
		}
	}

	if upd.FirstName != nil {
		u.FirstName = strings.TrimSpace(*upd.FirstName)
	}
	if upd.LastName != nil {
		u.LastName = strings.TrimSpace(*upd.LastName)
	}
	if upd.DateOfBirth != nil {
		dob := upd.DateOfBirth.UTC()
		u.DateOfBirth = &dob
	}
	if upd.HeightCm != nil {
		u.HeightCm = upd.HeightCm
	}
	if upd.WeightKg != nil {
		u.WeightKg = upd.WeightKg
	}
	if upd.Gender != nil {
		u.Gender = upd.Gender
	}
	if upd.ActivityLevel != nil {
		u.ActivityLevel = upd.ActivityLevel
		u.ActivityMultiplier = levelMultiplier
	}
	if upd.ActivityMultiplier != nil {
		u.ActivityMultiplier = upd.ActivityMultiplier
	}

	u.UpdatedAt = time.Now().UTC()
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
