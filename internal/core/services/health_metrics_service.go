package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/calculator"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/tracing"
)

type HealthMetricsService struct {
	repo    domain.HealthMetricsRepository
	users   domain.UserRepository
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHealthMetricsService(repo domain.HealthMetricsRepository, users domain.UserRepository, m *metrics.Manager) *HealthMetricsService {
	return &HealthMetricsService{
		repo:    repo,
		users:   users,
		metrics: m,
		now:     time.Now,
	}
}

type UpdateHealthMetricsInput struct {
	ID      string
	UserID  string
	Patch   domain.MeasurementPatch
	Version int
}

func (s *HealthMetricsService) Create(ctx context.Context, userID string, in domain.MeasurementInput) (*domain.HealthMetrics, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "healthMetricsService.create")
	defer span.End()

	if err := in.Validate(); err != nil {
		return nil, failSpan(span, err)
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, failSpan(span, err)
	}

	entry := domain.NewHealthMetrics(userID, s.derive(in, profile))
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, failSpan(span, fmt.Errorf("health metrics service: create: %w", err))
	}

	span.SetAttributes(attribute.String("health_metrics.id", entry.ID))
	return entry, nil
}

func (s *HealthMetricsService) List(ctx context.Context, userID string) ([]*domain.HealthMetrics, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *HealthMetricsService) Latest(ctx context.Context, userID string) (*domain.HealthMetrics, error) {
	return s.repo.Latest(ctx, userID)
}

func (s *HealthMetricsService) GetByID(ctx context.Context, id string, userID string) (*domain.HealthMetrics, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return entry, nil
}

// Update merges the patch into the stored raw measurement and re-derives
// every metric from the result.
func (s *HealthMetricsService) Update(ctx context.Context, input UpdateHealthMetricsInput) (*domain.HealthMetrics, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "healthMetricsService.update")
	defer span.End()

	existing, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, failSpan(span, err)
	}

	if input.Version > 0 && existing.Version != input.Version {
		return nil, failSpan(span, fmt.Errorf("%w: client v%d vs server v%d", domain.ErrMeasurementConflict, input.Version, existing.Version))
	}

	merged := existing.MeasurementInput
	merged.Merge(input.Patch)
	if err := merged.Validate(); err != nil {
		return nil, failSpan(span, err)
	}

	profile, err := s.profile(ctx, input.UserID)
	if err != nil {
		return nil, failSpan(span, err)
	}

	existing.DerivedMeasurement = s.derive(merged, profile)
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, failSpan(span, fmt.Errorf("health metrics service: update: %w", err))
	}

	return existing, nil
}

func (s *HealthMetricsService) Delete(ctx context.Context, id string, userID string) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}

// Summary classifies the user's latest entry.
func (s *HealthMetricsService) Summary(ctx context.Context, userID string) (*domain.MetricsSummary, error) {
	latest, err := s.repo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.MetricsSummary{
		BMI:             latest.BMI,
		TDEE:            latest.TotalDailyEnergyExpenditure,
		RMR:             latest.RestingMetabolicRate,
		BMICategory:     calculator.BMICategory(latest.BMI),
		BodyFatCategory: calculator.BodyFatCategory(latest.BodyFatPercent, profile.Sex),
	}, nil
}

// RecalculateUser re-derives every stored entry of the user against the
// current profile and returns how many entries changed. Entries that fail to
// save are skipped; their errors are combined in the returned error.
func (s *HealthMetricsService) RecalculateUser(ctx context.Context, userID string) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "healthMetricsService.recalculateUser")
	defer span.End()

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return 0, failSpan(span, err)
	}

	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return 0, failSpan(span, fmt.Errorf("health metrics service: list for recalculation: %w", err))
	}

	var errs error
	updated := 0
	for _, entry := range entries {
		derived := s.derive(entry.MeasurementInput, profile)
		if sameDerived(entry.DerivedMetrics, derived.DerivedMetrics) {
			continue
		}

		entry.DerivedMeasurement = derived
		if err := s.repo.Update(ctx, entry); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %s: %w", entry.ID, err))
			continue
		}
		updated++
	}

	span.SetAttributes(attribute.Int("health_metrics.updated", updated))
	if errs != nil {
		log.WithField("user_id", userID).Warnf("[RECALC] %d entries failed: %v", len(multierr.Errors(errs)), errs)
		return updated, failSpan(span, errs)
	}
	return updated, nil
}

func (s *HealthMetricsService) profile(ctx context.Context, userID string) (domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("health metrics service: load profile: %w", err)
	}
	return domain.NormalizeProfile(user, s.now()), nil
}

func (s *HealthMetricsService) derive(in domain.MeasurementInput, p domain.Profile) domain.DerivedMeasurement {
	s.metrics.CounterMeasurementsDerived.Inc()
	return calculator.Compute(in, p)
}

func sameDerived(a, b domain.DerivedMetrics) bool {
	eq := func(x, y *float64) bool {
		if x == nil || y == nil {
			return x == y
		}
		return *x == *y
	}
	return a.BMI == b.BMI &&
		a.RestingMetabolicRate == b.RestingMetabolicRate &&
		a.TotalDailyEnergyExpenditure == b.TotalDailyEnergyExpenditure &&
		a.ActivityMultiplier == b.ActivityMultiplier &&
		eq(a.LeanBodyMassKg, b.LeanBodyMassKg) &&
		eq(a.SkeletalMuscleMassKg, b.SkeletalMuscleMassKg) &&
		eq(a.WaistToHipRatio, b.WaistToHipRatio) &&
		eq(a.WaistToHeightRatio, b.WaistToHeightRatio) &&
		eq(a.ABSI, b.ABSI) &&
		eq(a.MaximumSafeWeeklyFatLossKg, b.MaximumSafeWeeklyFatLossKg) &&
		eq(a.DailyCalorieDeficitTarget, b.DailyCalorieDeficitTarget)
}
