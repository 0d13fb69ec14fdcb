package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	appctx "github.com/piresc/saferoute/internal/pkg/context"
	"github.com/piresc/saferoute/internal/pkg/logger"
)

// Task is one repeating best-effort fetch
type Task struct {
	Name     string
	Interval time.Duration
	// Immediate runs the first tick at start instead of after one interval
	Immediate bool
	// Run performs one tick. It receives the loop context and must not
	// mutate shared state once that context is done.
	Run func(ctx context.Context) error
}

// Observer receives per-tick outcomes, typically a metrics collector
type Observer interface {
	ObserveTick(task string, err error, took time.Duration)
	ObserveSkip(task string)
}

// Stats is a snapshot of a loop's counters
type Stats struct {
	Name     string        `json:"name"`
	Interval time.Duration `json:"interval"`
	Ticks    int64         `json:"ticks"`
	Failures int64         `json:"failures"`
	Skipped  int64         `json:"skipped"`
	InFlight bool          `json:"in_flight"`
}

// Loop runs a single Task on its cadence. A tick is skipped while the
// previous run is still in flight. Errors are logged and swallowed.
type Loop struct {
	task     Task
	observer Observer

	cancel context.CancelFunc
	done   chan struct{}
	runs   sync.WaitGroup
	once   sync.Once

	inFlight atomic.Bool
	ticks    atomic.Int64
	failures atomic.Int64
	skipped  atomic.Int64
}

// Start launches task bound to parent. Cancelling parent stops the loop.
func Start(parent context.Context, task Task, observer Observer) *Loop {
	ctx, cancel := context.WithCancel(appctx.WithTask(parent, task.Name))
	l := &Loop{
		task:     task,
		observer: observer,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go l.run(ctx)
	return l
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	interval := l.task.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if l.task.Immediate {
		l.tick(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

// tick dispatches one run unless the previous one is still in flight
func (l *Loop) tick(ctx context.Context) {
	if !l.inFlight.CompareAndSwap(false, true) {
		l.skipped.Add(1)
		if l.observer != nil {
			l.observer.ObserveSkip(l.task.Name)
		}
		logger.Debug("Skipping tick, previous run still in flight",
			logger.String("task", l.task.Name))
		return
	}

	l.runs.Add(1)
	go func() {
		defer l.runs.Done()
		defer l.inFlight.Store(false)

		start := time.Now()
		err := l.task.Run(appctx.WithRequestID(ctx, ""))
		took := time.Since(start)

		l.ticks.Add(1)
		if err != nil && ctx.Err() == nil {
			l.failures.Add(1)
			logger.Warn("Polling tick failed",
				logger.String("task", l.task.Name),
				logger.Duration("took", took),
				logger.Err(err))
		}
		if l.observer != nil && ctx.Err() == nil {
			l.observer.ObserveTick(l.task.Name, err, took)
		}
	}()
}

// Stop cancels the loop and waits until no run of it can touch state.
// It must not be called from the loop's own Run.
func (l *Loop) Stop() {
	l.once.Do(func() {
		l.cancel()
		<-l.done
		l.runs.Wait()
	})
}

// Name returns the task name
func (l *Loop) Name() string {
	return l.task.Name
}

// Stats returns the loop counters
func (l *Loop) Stats() Stats {
	return Stats{
		Name:     l.task.Name,
		Interval: l.task.Interval,
		Ticks:    l.ticks.Load(),
		Failures: l.failures.Load(),
		Skipped:  l.skipped.Load(),
		InFlight: l.inFlight.Load(),
	}
}

// Alive reports whether a tick's context still permits state mutation
func Alive(ctx context.Context) bool {
	return ctx.Err() == nil
}

// Coalesce returns held when fetched has the same identity, so unchanged
// entities keep pointer identity and dependents are not recomputed. A nil
// fetched means the entity disappeared.
func Coalesce[T any, K comparable](held, fetched *T, id func(*T) K) *T {
	if fetched == nil {
		return nil
	}
	if held != nil && id(held) == id(fetched) {
		return held
	}
	return fetched
}
