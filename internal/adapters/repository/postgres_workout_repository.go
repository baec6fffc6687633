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

type PostgresWorkoutRepository struct {
	db *sqlx.DB
}

func NewPostgresWorkoutRepository(db *sqlx.DB) *PostgresWorkoutRepository {
	return &PostgresWorkoutRepository{db: db}
}

func (r *PostgresWorkoutRepository) Create(ctx context.Context, w *domain.Workout) error {
	query := `
		INSERT INTO workouts (
			id, user_id, name, description,
			start_time, end_time,
			total_calories_burned, total_duration, total_sets, total_reps, total_weight,
			workout_type, is_completed,
			version, created_at, updated_at
		) VALUES (
			:id, :user_id, :name, :description,
			:start_time, :end_time,
			:total_calories_burned, :total_duration, :total_sets, :total_reps, :total_weight,
			:workout_type, :is_completed,
			:version, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, w); err != nil {
		switch sqlState(err) {
		case foreignKeyViolation:
			return domain.ErrUserNotFound
		case uniqueViolation:
			return domain.ErrWorkoutConflict
		}
		return fmt.Errorf("repository: create workout failed: %w", err)
	}
	return nil
}

func (r *PostgresWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	var w domain.Workout
	query := `SELECT * FROM workouts WHERE id = $1`

	if err := r.db.GetContext(ctx, &w, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) || sqlState(err) == invalidTextRepresentation {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *PostgresWorkoutRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Workout, error) {
	list := []*domain.Workout{}
	query := `SELECT * FROM workouts WHERE user_id = $1 ORDER BY start_time DESC`

	if err := r.db.SelectContext(ctx, &list, query, userID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PostgresWorkoutRepository) Update(ctx context.Context, w *domain.Workout) error {
	w.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE workouts
		SET name = :name,
		    description = :description,
		    start_time = :start_time,
		    end_time = :end_time,
		    total_calories_burned = :total_calories_burned,
		    total_duration = :total_duration,
		    total_sets = :total_sets,
		    total_reps = :total_reps,
		    total_weight = :total_weight,
		    workout_type = :workout_type,
		    is_completed = :is_completed,
		    version = version + 1,
		    updated_at = :updated_at
		WHERE id = :id
		  AND version = :version -- Optimistic Lock check`

	result, err := r.db.NamedExecContext(ctx, query, w)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		if exists, _ := r.exists(ctx, w.ID); !exists {
			return domain.ErrWorkoutNotFound
		}
		return domain.ErrWorkoutConflict
	}

	w.Version++
	return nil
}

func (r *PostgresWorkoutRepository) Delete(ctx context.Context, id string, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

func (r *PostgresWorkoutRepository) StartTimes(ctx context.Context, userID string) ([]time.Time, error) {
	times := []time.Time{}
	query := `SELECT start_time FROM workouts WHERE user_id = $1 ORDER BY start_time DESC`

	if err := r.db.SelectContext(ctx, &times, query, userID); err != nil {
		return nil, err
	}
	return times, nil
}

func (r *PostgresWorkoutRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT count(*) FROM workouts WHERE id = $1", id)
	return count > 0, err
}
