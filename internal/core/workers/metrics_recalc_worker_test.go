package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeRecalculator struct {
	mu      sync.Mutex
	calls   []string
	err     error
	handled chan string
}

func newFakeRecalculator() *fakeRecalculator {
	return &fakeRecalculator{handled: make(chan string, 10)}
}

func (f *fakeRecalculator) RecalculateUser(ctx context.Context, userID string) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, userID)
	f.mu.Unlock()
	f.handled <- userID
	return 2, f.err
}

func waitHandled(t *testing.T, f *fakeRecalculator) string {
	t.Helper()
	select {
	case id := <-f.handled:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed")
		return ""
	}
}

func TestMetricsRecalcWorker_ProcessesJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := metrics.NewTestManager()
	recalc := newFakeRecalculator()

	w := NewMetricsRecalcWorker(recalc, m)
	w.Start(ctx)

	w.Enqueue("user-1")
	w.Enqueue("user-2")

	assert.Equal(t, "user-1", waitHandled(t, recalc))
	assert.Equal(t, "user-2", waitHandled(t, recalc))

	cancel()
	<-w.Done()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterRecalcJobs.WithLabelValues(metrics.RecalcResultOK)))
}

func TestMetricsRecalcWorker_CountsFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := metrics.NewTestManager()
	recalc := newFakeRecalculator()
	recalc.err = errors.New("db down")

	w := NewMetricsRecalcWorker(recalc, m)
	w.Start(ctx)
	w.Enqueue("user-1")
	waitHandled(t, recalc)

	cancel()
	<-w.Done()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRecalcJobs.WithLabelValues(metrics.RecalcResultFailed)))
}

func TestMetricsRecalcWorker_DropsWhenFull(t *testing.T) {
	m := metrics.NewTestManager()
	recalc := newFakeRecalculator()

	// Not started: the queue never drains.
	w := NewMetricsRecalcWorkerWithQueue(recalc, m, 1)
	w.Enqueue("user-1")
	w.Enqueue("user-2")
	w.Enqueue("user-3")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterRecalcJobs.WithLabelValues(metrics.RecalcResultDropped)))
	require.Len(t, w.jobs, 1)
}

func TestMetricsRecalcWorker_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewMetricsRecalcWorker(newFakeRecalculator(), metrics.NewTestManager())
	w.Start(ctx)

	cancel()

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
