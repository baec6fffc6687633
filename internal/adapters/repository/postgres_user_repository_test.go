package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "adaptfitness"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "adaptfitness_test"),
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}

	require.NoError(t, RunMigrations(context.Background(), db), "Failed to migrate test database")
	return db
}

func cleanup(t *testing.T, db *sqlx.DB) {
	t.Helper()
	_, err := db.Exec("TRUNCATE TABLE meals, workouts, health_metrics, users CASCADE")
	require.NoError(t, err, "Failed to clean up database")
}

func createTestUser(t *testing.T, db *sqlx.DB) *domain.User {
	t.Helper()
	user, err := domain.NewUser(uuid.NewString(), fmt.Sprintf("user_%s@example.com", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("passwordStrong123"))
	require.NoError(t, NewPostgresUserRepository(db).Create(context.Background(), user))
	return user
}

func TestPostgresUserRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanup(t, db)

	repo := NewPostgresUserRepository(db)
	ctx := context.Background()

	t.Run("Success: Create and read back", func(t *testing.T) {
		user := createTestUser(t, db)

		byEmail, err := repo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.NotEmpty(t, byEmail.PasswordHash)
		assert.False(t, byEmail.CreatedAt.IsZero())

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)
	})

	t.Run("Fail: Duplicate email", func(t *testing.T) {
		user := createTestUser(t, db)

		dup, _ := domain.NewUser(uuid.NewString(), user.Email)
		_ = dup.SetPassword("anotherPassword1")

		assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrEmailAlreadyExists)
	})

	t.Run("Fail: Unknown or malformed id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Success: UpdateProfile persists profile columns", func(t *testing.T) {
		user := createTestUser(t, db)

		height := 182.0
		gender := domain.GenderFemale
		level := "very_active"
		require.NoError(t, user.ApplyProfile(domain.ProfileUpdate{
			HeightCm:      &height,
			Gender:        &gender,
			ActivityLevel: &level,
		}))
		require.NoError(t, repo.UpdateProfile(ctx, user))

		saved, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, saved.HeightCm)
		require.NotNil(t, saved.ActivityMultiplier)
		assert.Equal(t, 182.0, *saved.HeightCm)
		assert.Equal(t, domain.GenderFemale, *saved.Gender)
		assert.Equal(t, 1.725, *saved.ActivityMultiplier)
	})

	t.Run("Fail: UpdateProfile on missing user", func(t *testing.T) {
		ghost, _ := domain.NewUser(uuid.NewString(), "ghost@example.com")
		assert.ErrorIs(t, repo.UpdateProfile(ctx, ghost), domain.ErrUserNotFound)
	})
}
