package workers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"
)

const (
	defaultQueueSize = 100
	jobTimeout       = 30 * time.Second
)

type Recalculator interface {
	RecalculateUser(ctx context.Context, userID string) (int, error)
}

type RecalcJob struct {
	UserID string
}

// MetricsRecalcWorker re-derives stored measurements in the background after
// a user's profile changes. Jobs beyond the queue capacity are dropped.
type MetricsRecalcWorker struct {
	recalc  Recalculator
	metrics *metrics.Manager
	jobs    chan RecalcJob
	done    chan struct{}
}

func NewMetricsRecalcWorker(recalc Recalculator, m *metrics.Manager) *MetricsRecalcWorker {
	return NewMetricsRecalcWorkerWithQueue(recalc, m, defaultQueueSize)
}

func NewMetricsRecalcWorkerWithQueue(recalc Recalculator, m *metrics.Manager, size int) *MetricsRecalcWorker {
	return &MetricsRecalcWorker{
		recalc:  recalc,
		metrics: m,
		jobs:    make(chan RecalcJob, size),
		done:    make(chan struct{}),
	}
}

func (w *MetricsRecalcWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		log.Println("[WORKER] metrics recalculation worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] metrics recalculation worker shutting down")
				return
			}
		}
	}()
}

// Done is closed once the worker goroutine has returned.
func (w *MetricsRecalcWorker) Done() <-chan struct{} {
	return w.done
}

func (w *MetricsRecalcWorker) Enqueue(userID string) {
	select {
	case w.jobs <- RecalcJob{UserID: userID}:
	default:
		w.metrics.CounterRecalcJobs.WithLabelValues(metrics.RecalcResultDropped).Inc()
		log.Warnf("[WORKER] queue full, dropping recalculation for user %s", userID)
	}
}

func (w *MetricsRecalcWorker) processJob(ctx context.Context, job RecalcJob) {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	updated, err := w.recalc.RecalculateUser(ctx, job.UserID)
	if err != nil {
		w.metrics.CounterRecalcJobs.WithLabelValues(metrics.RecalcResultFailed).Inc()
		log.WithField("user_id", job.UserID).Errorf("[WORKER] recalculation failed after %d updates: %v", updated, err)
		return
	}

	w.metrics.CounterRecalcJobs.WithLabelValues(metrics.RecalcResultOK).Inc()
	if updated > 0 {
		log.WithField("user_id", job.UserID).Infof("[WORKER] recalculated %d measurements", updated)
	}
}
