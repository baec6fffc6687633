package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/services"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/streak"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/workers"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"

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
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "adaptfitness"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "adaptfitness_test"),
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping e2e test: database connection failed: %v", err)
	}
	require.NoError(t, repository.RunMigrations(context.Background(), db))
	return db
}

type e2eClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c *e2eClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func TestEndToEnd_MeasurementLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec("TRUNCATE TABLE meals, workouts, health_metrics, users CASCADE")
	require.NoError(t, err, "Failed to truncate tables")

	m := metrics.NewTestManager()
	users := repository.NewPostgresUserRepository(db)
	tokens := services.NewTokenService("e2e-secret-key-that-is-long-enough!!", "adaptfitness-e2e", time.Hour, users)
	healthService := services.NewHealthMetricsService(repository.NewPostgresHealthMetricsRepository(db), users, m)

	ctx, cancel := context.WithCancel(context.Background())
	worker := workers.NewMetricsRecalcWorker(healthService, m)
	worker.Start(ctx)
	defer func() {
		cancel()
		<-worker.Done()
	}()

	tracker := streak.NewTracker()
	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:          adapterHTTP.NewAuthHandler(services.NewAuthService(users, tokens)),
		ProfileHandler:       adapterHTTP.NewProfileHandler(services.NewProfileService(users, worker)),
		HealthMetricsHandler: adapterHTTP.NewHealthMetricsHandler(healthService),
		WorkoutHandler:       adapterHTTP.NewWorkoutHandler(services.NewWorkoutService(repository.NewPostgresWorkoutRepository(db), tracker, m)),
		MealHandler:          adapterHTTP.NewMealHandler(services.NewMealService(repository.NewPostgresMealRepository(db), tracker, m)),
		Tokens:               tokens,
		DB:                   db,
		Metrics:              m,
		StartTime:            time.Now(),
	})

	client := &e2eClient{t: t, router: router}
	email := fmt.Sprintf("e2e_%s@adaptfitness.app", uuid.NewString()[:8])
	var entryID string

	t.Run("1. Register and Login", func(t *testing.T) {
		w := client.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
			"email":    email,
			"password": "PasswordSuperSegreta1!",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = client.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    email,
			"password": "PasswordSuperSegreta1!",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.AccessToken)
		client.token = resp.AccessToken
	})

	t.Run("2. Record Measurement", func(t *testing.T) {
		require.NotEmpty(t, client.token, "Login step failed")

		w := client.do(http.MethodPost, "/api/v1/health-metrics", map[string]any{
			"current_weight_kg": 70,
			"goal_weight_kg":    65,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var entry domain.HealthMetrics
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, 1673.75, entry.RestingMetabolicRate)
		require.NotNil(t, entry.DailyCalorieDeficitTarget)
		assert.Equal(t, 2500.0, *entry.DailyCalorieDeficitTarget)
		entryID = entry.ID
	})

	t.Run("3. Profile Change Recalculates", func(t *testing.T) {
		require.NotEmpty(t, entryID, "Create step failed")

		w := client.do(http.MethodPut, "/api/v1/profile", map[string]any{"height_cm": 186})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Eventually(t, func() bool {
			w := client.do(http.MethodGet, "/api/v1/health-metrics/"+entryID, nil)
			if w.Code != http.StatusOK {
				return false
			}
			var entry domain.HealthMetrics
			if json.Unmarshal(w.Body.Bytes(), &entry) != nil {
				return false
			}
			return entry.RestingMetabolicRate == 1742.5 && entry.Version == 2
		}, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("4. Workout Streak", func(t *testing.T) {
		now := time.Now().UTC()
		for _, start := range []time.Time{now.Add(-time.Minute), now.Add(-24 * time.Hour)} {
			w := client.do(http.MethodPost, "/api/v1/workouts", map[string]any{
				"name":       "Morning Run",
				"start_time": start,
			})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := client.do(http.MethodGet, "/api/v1/workouts/streak/current?tz=UTC", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res streak.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 2, res.StreakLength)
		require.NotNil(t, res.MostRecentLocalDate)
		assert.Equal(t, now.Add(-time.Minute).Format(time.DateOnly), *res.MostRecentLocalDate)
	})

	t.Run("5. Delete Measurement", func(t *testing.T) {
		w := client.do(http.MethodDelete, "/api/v1/health-metrics/"+entryID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = client.do(http.MethodGet, "/api/v1/health-metrics/latest", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("6. Auth Error", func(t *testing.T) {
		anonymous := &e2eClient{t: t, router: router}
		w := anonymous.do(http.MethodGet, "/api/v1/health-metrics", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
