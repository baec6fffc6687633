package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("Should create user with normalized email", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("123", "  Test.User@Gmail.COM  ")

		require.NoError(t, err)
		assert.Equal(t, "test.user@gmail.com", user.Email)
		assert.Equal(t, "123", user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Nil(t, user.HeightCm)
	})

	t.Run("Should fail with invalid email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("123", "invalid-email-format")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestUserPassword(t *testing.T) {
	t.Parallel()

	t.Run("Should hash password", func(t *testing.T) {
		t.Parallel()
		user, _ := NewUser("123", "test@test.com")

		require.NoError(t, user.SetPassword("superSecret123"))
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "superSecret123", user.PasswordHash)

		assert.NoError(t, user.CheckPassword("superSecret123"))
		assert.Error(t, user.CheckPassword("wrongPassword"))
	})

	t.Run("Should validate password length in runes", func(t *testing.T) {
		t.Parallel()
		user, _ := NewUser("123", "test@test.com")

		assert.ErrorIs(t, user.SetPassword("short"), ErrPasswordTooShort)
		assert.ErrorIs(t, user.SetPassword("ééééééé"), ErrPasswordTooShort)
	})
}

func TestUser_Age(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		dob    *time.Time
		want   int
		wantOK bool
	}{
		{"no date of birth", nil, 0, false},
		{"birthday already passed", ptrTime(time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC)), 36, true},
		{"birthday today", ptrTime(time.Date(1990, 10, 16, 0, 0, 0, 0, time.UTC)), 36, true},
		{"birthday tomorrow", ptrTime(time.Date(1990, 10, 17, 0, 0, 0, 0, time.UTC)), 35, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{DateOfBirth: tt.dob}
			age, ok := u.Age(now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, age)
		})
	}
}

func TestUser_ApplyProfile(t *testing.T) {
	t.Parallel()

	t.Run("Activity level sets its multiplier", func(t *testing.T) {
		u := &User{}
		level := "moderately_active"

		require.NoError(t, u.ApplyProfile(ProfileUpdate{ActivityLevel: &level}))
		require.NotNil(t, u.ActivityMultiplier)
		assert.Equal(t, 1.55, *u.ActivityMultiplier)
	})

	t.Run("Explicit multiplier wins over the level", func(t *testing.T) {
		u := &User{}
		level := "sedentary"
		mult := 1.3

		require.NoError(t, u.ApplyProfile(ProfileUpdate{ActivityLevel: &level, ActivityMultiplier: &mult}))
		assert.Equal(t, 1.3, *u.ActivityMultiplier)
		assert.Equal(t, "sedentary", *u.ActivityLevel)
	})

	t.Run("Rejects bad values without touching the user", func(t *testing.T) {
		height := 170.0
		u := &User{HeightCm: &height}

		bad := "couch"
		assert.ErrorIs(t, u.ApplyProfile(ProfileUpdate{ActivityLevel: &bad}), ErrInvalidActivityLevel)

		gender := "unknown"
		assert.ErrorIs(t, u.ApplyProfile(ProfileUpdate{Gender: &gender}), ErrInvalidGender)

		zero := 0.0
		assert.ErrorIs(t, u.ApplyProfile(ProfileUpdate{HeightCm: &zero}), ErrInvalidProfileValue)

		assert.Equal(t, 170.0, *u.HeightCm)
		assert.Nil(t, u.Gender)
	})
}

func ptrTime(t time.Time) *time.Time { return &t }
