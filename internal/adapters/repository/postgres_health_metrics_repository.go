package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
)

type PostgresHealthMetricsRepository struct {
	db *sqlx.DB
}

func NewPostgresHealthMetricsRepository(db *sqlx.DB) *PostgresHealthMetricsRepository {
	return &PostgresHealthMetricsRepository{db: db}
}

func (r *PostgresHealthMetricsRepository) Create(ctx context.Context, m *domain.HealthMetrics) error {
	query := `
		INSERT INTO health_metrics (
			id, user_id,
			current_weight_kg, body_fat_percent, goal_weight_kg, water_percent,
			waist_cm, hip_cm, chest_cm, thigh_cm, arm_cm, neck_cm, notes,
			bmi, lean_body_mass_kg, skeletal_muscle_mass_kg,
			waist_to_hip_ratio, waist_to_height_ratio, absi,
			resting_metabolic_rate, total_daily_energy_expenditure, activity_multiplier,
			maximum_safe_weekly_fat_loss_kg, daily_calorie_deficit_target,
			version, created_at, updated_at
		) VALUES (
			:id, :user_id,
			:current_weight_kg, :body_fat_percent, :goal_weight_kg, :water_percent,
			:waist_cm, :hip_cm, :chest_cm, :thigh_cm, :arm_cm, :neck_cm, :notes,
			:bmi, :lean_body_mass_kg, :skeletal_muscle_mass_kg,
			:waist_to_hip_ratio, :waist_to_height_ratio, :absi,
			:resting_metabolic_rate, :total_daily_energy_expenditure, :activity_multiplier,
			:maximum_safe_weekly_fat_loss_kg, :daily_calorie_deficit_target,
			:version, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		switch sqlState(err) {
		case foreignKeyViolation:
			return domain.ErrUserNotFound
		case uniqueViolation:
			return domain.ErrMeasurementConflict
		}
		return fmt.Errorf("repository: create health metrics failed: %w", err)
	}
	return nil
}

func (r *PostgresHealthMetricsRepository) GetByID(ctx context.Context, id string) (*domain.HealthMetrics, error) {
	var m domain.HealthMetrics
	query := `SELECT * FROM health_metrics WHERE id = $1`

	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) || sqlState(err) == invalidTextRepresentation {
			return nil, domain.ErrMeasurementNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresHealthMetricsRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.HealthMetrics, error) {
	list := []*domain.HealthMetrics{}
	query := `SELECT * FROM health_metrics WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &list, query, userID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PostgresHealthMetricsRepository) Latest(ctx context.Context, userID string) (*domain.HealthMetrics, error) {
	var m domain.HealthMetrics
	query := `SELECT * FROM health_metrics WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`

	if err := r.db.GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMeasurementNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresHealthMetricsRepository) Update(ctx context.Context, m *domain.HealthMetrics) error {
	m.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE health_metrics
		SET current_weight_kg = :current_weight_kg,
		    body_fat_percent = :body_fat_percent,
		    goal_weight_kg = :goal_weight_kg,
		    water_percent = :water_percent,
		    waist_cm = :waist_cm,
		    hip_cm = :hip_cm,
		    chest_cm = :chest_cm,
		    thigh_cm = :thigh_cm,
		    arm_cm = :arm_cm,
		    neck_cm = :neck_cm,
		    notes = :notes,
		    bmi = :bmi,
		    lean_body_mass_kg = :lean_body_mass_kg,
		    skeletal_muscle_mass_kg = :skeletal_muscle_mass_kg,
		    waist_to_hip_ratio = :waist_to_hip_ratio,
		    waist_to_height_ratio = :waist_to_height_ratio,
		    absi = :absi,
		    resting_metabolic_rate = :resting_metabolic_rate,
		    total_daily_energy_expenditure = :total_daily_energy_expenditure,
		    activity_multiplier = :activity_multiplier,
		    maximum_safe_weekly_fat_loss_kg = :maximum_safe_weekly_fat_loss_kg,
		    daily_calorie_deficit_target = :daily_calorie_deficit_target,
		    version = version + 1,
		    updated_at = :updated_at
		WHERE id = :id
		  AND version = :version -- Optimistic Lock check`

	result, err := r.db.NamedExecContext(ctx, query, m)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		if exists, _ := r.exists(ctx, m.ID); !exists {
			return domain.ErrMeasurementNotFound
		}
		return domain.ErrMeasurementConflict
	}

	m.Version++
	return nil
}

func (r *PostgresHealthMetricsRepository) Delete(ctx context.Context, id string, userID string) error {
	query := `DELETE FROM health_metrics WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMeasurementNotFound
	}
	return nil
}

func (r *PostgresHealthMetricsRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT count(*) FROM health_metrics WHERE id = $1", id)
	return count > 0, err
}
