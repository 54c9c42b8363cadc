// Package worker runs the bot's periodic tasks.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/redTeamHero/discord/logger"
)

// Task is one independently scheduled unit of periodic work.
// Interval is consulted after every cycle, so a task may change its own
// cadence (the alert poller starts fast and settles down).
type Task interface {
	// Name identifies the task in logs
	Name() string

	// Interval returns the wait before the next cycle
	Interval() time.Duration

	// Run executes one cycle; errors are logged, never fatal
	Run(ctx context.Context) error
}

// Worker supervises a set of periodic tasks. Each task gets its own
// goroutine with an immediate first run; a panicking cycle is recovered
// and the task keeps its schedule.
type Worker struct {
	tasks []Task
	log   *logger.Logger
}

// NewWorker creates a worker for the given tasks
func NewWorker(tasks ...Task) *Worker {
	return &Worker{
		tasks: tasks,
		log:   logger.ForWorker(),
	}
}

// Start runs all tasks until ctx is cancelled, then returns
func (w *Worker) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for _, task := range w.tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()
			w.runTask(ctx, task)
		}(task)
	}
	wg.Wait()
}

// runTask loops one task: run, wait its interval, repeat
func (w *Worker) runTask(ctx context.Context, task Task) {
	w.log.Info().
		Str("task", task.Name()).
		Dur("interval", task.Interval()).
		Msg("task started")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Str("task", task.Name()).Msg("task stopped")
			return
		case <-timer.C:
		}

		w.runCycle(ctx, task)
		timer.Reset(task.Interval())
	}
}

// runCycle executes a single cycle with panic containment
func (w *Worker) runCycle(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error().
				Str("task", task.Name()).
				Interface("panic", r).
				Msg("task cycle panicked, task will keep running")
		}
	}()

	start := time.Now()
	if err := task.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.log.Error().
			Str("task", task.Name()).
			Err(err).
			Msg("task cycle failed")
		return
	}

	w.log.Debug().
		Str("task", task.Name()).
		Dur("elapsed", time.Since(start)).
		Msg("task cycle complete")
}
