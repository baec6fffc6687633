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

type PostgresMealRepository struct {
	db *sqlx.DB
}

func NewPostgresMealRepository(db *sqlx.DB) *PostgresMealRepository {
	return &PostgresMealRepository{db: db}
}

func (r *PostgresMealRepository) Create(ctx context.Context, m *domain.Meal) error {
	query := `
		INSERT INTO meals (
			id, user_id, name, description, meal_time,
			total_calories, total_protein, total_carbs, total_fat,
			total_fiber, total_sugar, total_sodium,
			meal_type, serving_size, serving_unit,
			version, created_at, updated_at
		) VALUES (
			:id, :user_id, :name, :description, :meal_time,
			:total_calories, :total_protein, :total_carbs, :total_fat,
			:total_fiber, :total_sugar, :total_sodium,
			:meal_type, :serving_size, :serving_unit,
			:version, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		switch sqlState(err) {
		case foreignKeyViolation:
			return domain.ErrUserNotFound
		case uniqueViolation:
			return domain.ErrMealConflict
		}
		return fmt.Errorf("repository: create meal failed: %w", err)
	}
	return nil
}

func (r *PostgresMealRepository) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	var m domain.Meal
	if err := r.db.GetContext(ctx, &m, `SELECT * FROM meals WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) || sqlState(err) == invalidTextRepresentation {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresMealRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Meal, error) {
	list := []*domain.Meal{}
	query := `SELECT * FROM meals WHERE user_id = $1 ORDER BY meal_time DESC`

	if err := r.db.SelectContext(ctx, &list, query, userID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PostgresMealRepository) Update(ctx context.Context, m *domain.Meal) error {
	m.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE meals
		SET name = :name,
		    description = :description,
		    meal_time = :meal_time,
		    total_calories = :total_calories,
		    total_protein = :total_protein,
		    total_carbs = :total_carbs,
		    total_fat = :total_fat,
		    total_fiber = :total_fiber,
		    total_sugar = :total_sugar,
		    total_sodium = :total_sodium,
		    meal_type = :meal_type,
		    serving_size = :serving_size,
		    serving_unit = :serving_unit,
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
			return domain.ErrMealNotFound
		}
		return domain.ErrMealConflict
	}

	m.Version++
	return nil
}

func (r *PostgresMealRepository) Delete(ctx context.Context, id string, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

func (r *PostgresMealRepository) MealTimes(ctx context.Context, userID string) ([]time.Time, error) {
	times := []time.Time{}
	query := `SELECT meal_time FROM meals WHERE user_id = $1 ORDER BY meal_time DESC`

	if err := r.db.SelectContext(ctx, &times, query, userID); err != nil {
		return nil, err
	}
	return times, nil
}

func (r *PostgresMealRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT count(*) FROM meals WHERE id = $1", id)
	return count > 0, err
}
