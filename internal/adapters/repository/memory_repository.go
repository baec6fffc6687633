package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
)

// In-memory repositories back the handler and end-to-end tests. They store
// copies, so callers never share state with the store, and they enforce the
// same optimistic-lock rule as the Postgres repositories.

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	clone := *user
	r.store[user.ID] = &clone
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *InMemoryUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.ID]; !ok {
		return domain.ErrUserNotFound
	}

	clone := *user
	r.store[user.ID] = &clone
	return nil
}

type InMemoryHealthMetricsRepository struct {
	store map[string]*domain.HealthMetrics

	mu sync.RWMutex
}

func NewInMemoryHealthMetricsRepository() *InMemoryHealthMetricsRepository {
	return &InMemoryHealthMetricsRepository{
		store: make(map[string]*domain.HealthMetrics),
	}
}

func (r *InMemoryHealthMetricsRepository) Create(ctx context.Context, m *domain.HealthMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[m.ID]; exists {
		return domain.ErrMeasurementConflict
	}
	clone := *m
	r.store[m.ID] = &clone
	return nil
}

func (r *InMemoryHealthMetricsRepository) GetByID(ctx context.Context, id string) (*domain.HealthMetrics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.store[id]
	if !ok {
		return nil, domain.ErrMeasurementNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *InMemoryHealthMetricsRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.HealthMetrics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []*domain.HealthMetrics{}
	for _, m := range r.store {
		if m.UserID == userID {
			clone := *m
			list = append(list, &clone)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *InMemoryHealthMetricsRepository) Latest(ctx context.Context, userID string) (*domain.HealthMetrics, error) {
	list, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrMeasurementNotFound
	}
	return list[0], nil
}

func (r *InMemoryHealthMetricsRepository) Update(ctx context.Context, m *domain.HealthMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[m.ID]
	if !ok {
		return domain.ErrMeasurementNotFound
	}
	if stored.Version != m.Version {
		return domain.ErrMeasurementConflict
	}

	m.Version++
	m.UpdatedAt = time.Now().UTC()
	clone := *m
	r.store[m.ID] = &clone
	return nil
}

func (r *InMemoryHealthMetricsRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.store[id]
	if !ok || m.UserID != userID {
		return domain.ErrMeasurementNotFound
	}
	delete(r.store, id)
	return nil
}

type InMemoryWorkoutRepository struct {
	store map[string]*domain.Workout

	mu sync.RWMutex
}

func NewInMemoryWorkoutRepository() *InMemoryWorkoutRepository {
	return &InMemoryWorkoutRepository{
		store: make(map[string]*domain.Workout),
	}
}

func (r *InMemoryWorkoutRepository) Create(ctx context.Context, w *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[w.ID]; exists {
		return domain.ErrWorkoutConflict
	}
	clone := *w
	r.store[w.ID] = &clone
	return nil
}

func (r *InMemoryWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.store[id]
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *InMemoryWorkoutRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []*domain.Workout{}
	for _, w := range r.store {
		if w.UserID == userID {
			clone := *w
			list = append(list, &clone)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].StartTime.After(list[j].StartTime)
	})
	return list, nil
}

func (r *InMemoryWorkoutRepository) Update(ctx context.Context, w *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[w.ID]
	if !ok {
		return domain.ErrWorkoutNotFound
	}
	if stored.Version != w.Version {
		return domain.ErrWorkoutConflict
	}

	w.Version++
	w.UpdatedAt = time.Now().UTC()
	clone := *w
	r.store[w.ID] = &clone
	return nil
}

func (r *InMemoryWorkoutRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.store[id]
	if !ok || w.UserID != userID {
		return domain.ErrWorkoutNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *InMemoryWorkoutRepository) StartTimes(ctx context.Context, userID string) ([]time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var times []time.Time
	for _, w := range r.store {
		if w.UserID == userID {
			times = append(times, w.StartTime)
		}
	}
	return times, nil
}

type InMemoryMealRepository struct {
	store map[string]*domain.Meal

	mu sync.RWMutex
}

func NewInMemoryMealRepository() *InMemoryMealRepository {
	return &InMemoryMealRepository{
		store: make(map[string]*domain.Meal),
	}
}

func (r *InMemoryMealRepository) Create(ctx context.Context, m *domain.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[m.ID]; exists {
		return domain.ErrMealConflict
	}
	clone := *m
	r.store[m.ID] = &clone
	return nil
}

func (r *InMemoryMealRepository) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.store[id]
	if !ok {
		return nil, domain.ErrMealNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *InMemoryMealRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []*domain.Meal{}
	for _, m := range r.store {
		if m.UserID == userID {
			clone := *m
			list = append(list, &clone)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].MealTime.After(list[j].MealTime)
	})
	return list, nil
}

func (r *InMemoryMealRepository) Update(ctx context.Context, m *domain.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[m.ID]
	if !ok {
		return domain.ErrMealNotFound
	}
	if stored.Version != m.Version {
		return domain.ErrMealConflict
	}

	m.Version++
	m.UpdatedAt = time.Now().UTC()
	clone := *m
	r.store[m.ID] = &clone
	return nil
}

func (r *InMemoryMealRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.store[id]
	if !ok || m.UserID != userID {
		return domain.ErrMealNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *InMemoryMealRepository) MealTimes(ctx context.Context, userID string) ([]time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var times []time.Time
	for _, m := range r.store {
		if m.UserID == userID {
			times = append(times, m.MealTime)
		}
	}
	return times, nil
}
