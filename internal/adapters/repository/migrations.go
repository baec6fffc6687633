package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "001_create_users",
		sql: `
			CREATE TABLE IF NOT EXISTS users (
				id                  UUID PRIMARY KEY,
				email               VARCHAR(255) NOT NULL UNIQUE,
				password_hash       VARCHAR(255) NOT NULL,
				first_name          VARCHAR(100) NOT NULL DEFAULT '',
				last_name           VARCHAR(100) NOT NULL DEFAULT '',
				date_of_birth       DATE,
				height_cm           DOUBLE PRECISION,
				weight_kg           DOUBLE PRECISION,
				gender              VARCHAR(10),
				activity_level      VARCHAR(30),
				activity_multiplier DOUBLE PRECISION,
				created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		version: "002_create_health_metrics",
		sql: `
			CREATE TABLE IF NOT EXISTS health_metrics (
				id                              UUID PRIMARY KEY,
				user_id                         UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				current_weight_kg               DOUBLE PRECISION NOT NULL,
				body_fat_percent                DOUBLE PRECISION,
				goal_weight_kg                  DOUBLE PRECISION,
				water_percent                   DOUBLE PRECISION,
				waist_cm                        DOUBLE PRECISION,
				hip_cm                          DOUBLE PRECISION,
				chest_cm                        DOUBLE PRECISION,
				thigh_cm                        DOUBLE PRECISION,
				arm_cm                          DOUBLE PRECISION,
				neck_cm                         DOUBLE PRECISION,
				notes                           TEXT NOT NULL DEFAULT '',
				bmi                             DOUBLE PRECISION NOT NULL,
				lean_body_mass_kg               DOUBLE PRECISION,
				skeletal_muscle_mass_kg         DOUBLE PRECISION,
				waist_to_hip_ratio              DOUBLE PRECISION,
				waist_to_height_ratio           DOUBLE PRECISION,
				absi                            DOUBLE PRECISION,
				resting_metabolic_rate          DOUBLE PRECISION NOT NULL,
				total_daily_energy_expenditure  DOUBLE PRECISION NOT NULL,
				activity_multiplier             DOUBLE PRECISION NOT NULL,
				maximum_safe_weekly_fat_loss_kg DOUBLE PRECISION,
				daily_calorie_deficit_target    DOUBLE PRECISION,
				version                         INT NOT NULL DEFAULT 1,
				created_at                      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at                      TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_health_metrics_user_created ON health_metrics (user_id, created_at DESC)`,
	},
	{
		version: "003_create_workouts",
		sql: `
			CREATE TABLE IF NOT EXISTS workouts (
				id                    UUID PRIMARY KEY,
				user_id               UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name                  VARCHAR(255) NOT NULL,
				description           TEXT NOT NULL DEFAULT '',
				start_time            TIMESTAMPTZ NOT NULL,
				end_time              TIMESTAMPTZ,
				total_calories_burned INT NOT NULL DEFAULT 0,
				total_duration        INT NOT NULL DEFAULT 0,
				total_sets            INT NOT NULL DEFAULT 0,
				total_reps            INT NOT NULL DEFAULT 0,
				total_weight          DOUBLE PRECISION NOT NULL DEFAULT 0,
				workout_type          VARCHAR(20) NOT NULL DEFAULT '',
				is_completed          BOOLEAN NOT NULL DEFAULT FALSE,
				version               INT NOT NULL DEFAULT 1,
				created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_workouts_user_start ON workouts (user_id, start_time DESC)`,
	},
	{
		version: "004_create_meals",
		sql: `
			CREATE TABLE IF NOT EXISTS meals (
				id             UUID PRIMARY KEY,
				user_id        UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name           VARCHAR(255) NOT NULL,
				description    TEXT NOT NULL DEFAULT '',
				meal_time      TIMESTAMPTZ NOT NULL,
				total_calories DOUBLE PRECISION NOT NULL DEFAULT 0,
				total_protein  DOUBLE PRECISION NOT NULL DEFAULT 0,
				total_carbs    DOUBLE PRECISION NOT NULL DEFAULT 0,
				total_fat      DOUBLE PRECISION NOT NULL DEFAULT 0,
				total_fiber    DOUBLE PRECISION NOT NULL DEFAULT 0,
				total_sugar    DOUBLE PRECISION NOT NULL DEFAULT 0,
				total_sodium   DOUBLE PRECISION NOT NULL DEFAULT 0,
				meal_type      VARCHAR(20) NOT NULL DEFAULT '',
				serving_size   DOUBLE PRECISION NOT NULL DEFAULT 0,
				serving_unit   VARCHAR(30) NOT NULL DEFAULT '',
				version        INT NOT NULL DEFAULT 1,
				created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_meals_user_time ON meals (user_id, meal_time DESC)`,
	},
}

// RunMigrations applies every migration not yet recorded in
// schema_migrations, each in its own transaction.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM schema_migrations WHERE version = $1", m.version); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.version, err)
		}
		if count > 0 {
			continue
		}

		if err := executeMigration(ctx, db, m); err != nil {
			return err
		}

		log.Infof("applied migration: %s", m.version)
	}

	return nil
}

func executeMigration(ctx context.Context, db *sqlx.DB, m migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.sql, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
