package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/decisionreplay/backend/internal/core/ports"
	"github.com/decisionreplay/backend/internal/pkg/metrics"
)

const (
	defaultMaxInflight = 64
	defaultTaskTimeout = 5 * time.Second
)

// Dispatcher runs fire-and-forget tasks (audit appends, session touches) on
// their own goroutines. At most maxInflight tasks run at once; a task
// submitted while the dispatcher is saturated or closed is dropped.
type Dispatcher struct {
	slots   chan struct{}
	timeout time.Duration
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	log     zerolog.Logger
}

var _ ports.TaskRunner = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher. If maxInflight <= 0, defaultMaxInflight
// is used.
func NewDispatcher(maxInflight int, log zerolog.Logger) *Dispatcher {
	if maxInflight <= 0 {
		maxInflight = defaultMaxInflight
	}
	return &Dispatcher{
		slots:   make(chan struct{}, maxInflight),
		timeout: defaultTaskTimeout,
		log:     log,
	}
}

// Go schedules fn. It never blocks the caller. fn receives a context that is
// detached from any request and bounded by the task timeout.
func (d *Dispatcher) Go(name string, fn func(ctx context.Context) error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.AsyncTasksTotal.WithLabelValues(name, "dropped").Inc()
		return
	}

	select {
	case d.slots <- struct{}{}:
	default:
		metrics.AsyncTasksTotal.WithLabelValues(name, "dropped").Inc()
		d.log.Warn().Str("task", name).Msg("dispatcher saturated, task dropped")
		return
	}

	d.wg.Add(1)
	metrics.AsyncTasksInflight.Inc()
	go d.run(name, fn)
}

func (d *Dispatcher) run(name string, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.AsyncTasksTotal.WithLabelValues(name, "panic").Inc()
			d.log.Error().Interface("panic", r).Str("task", name).Msg("task panicked")
		}
		metrics.AsyncTasksInflight.Dec()
		<-d.slots
		d.wg.Done()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		metrics.AsyncTasksTotal.WithLabelValues(name, "error").Inc()
		d.log.Error().Err(err).Str("task", name).Msg("task failed")
		return
	}
	metrics.AsyncTasksTotal.WithLabelValues(name, "ok").Inc()
}

// Wait stops accepting tasks and blocks until in-flight tasks finish or ctx
// is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
