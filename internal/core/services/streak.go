package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/streak"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/tracing"
)

type eventTimesFunc func(ctx context.Context, userID string) ([]time.Time, error)

// currentStreak loads the user's full event history and hands it to the
// tracker. Nothing is cached between calls.
func currentStreak(ctx context.Context, tracker *streak.Tracker, m *metrics.Manager, kind string, load eventTimesFunc, userID, tz string) (streak.Result, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, kind+"Service.currentStreak")
	defer span.End()

	times, err := load(ctx, userID)
	if err != nil {
		return streak.Result{}, failSpan(span, fmt.Errorf("%s service: load event times: %w", kind, err))
	}

	res := tracker.Current(times, tz)
	m.CounterStreakComputations.WithLabelValues(kind).Inc()

	span.SetAttributes(
		attribute.Int("streak.events", len(times)),
		attribute.Int("streak.length", res.StreakLength),
		attribute.String("streak.tz", tz),
	)
	return res, nil
}
