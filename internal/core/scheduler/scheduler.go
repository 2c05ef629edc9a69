// Package scheduler drives a session.Clock in real time.
//
// The Scheduler owns the clock and at most one outstanding tick loop. Every
// clock access is serialized by a single mutex, so commands may be issued from
// any goroutine.
package scheduler

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
)

// Options contains runtime collaborators for the Scheduler.
type Options struct {
	NewTicker TickerFactory
	Logger    *slog.Logger
}

// tickLoop is the handle of the single outstanding timed callback.
type tickLoop struct {
	stop chan struct{}
}

// Scheduler converts the clock's pure countdown into a real-time process.
type Scheduler struct {
	mu        sync.Mutex
	config    model.ClockConfig
	options   Options
	clock     *session.Clock
	loop      *tickLoop
	observers []Observer
	closed    bool
	wg        sync.WaitGroup
}

// New creates a paused Scheduler at the start of a work session.
func New(config model.ClockConfig, options Options) (*Scheduler, error) {
	clock, err := session.NewClock(config)
	if err != nil {
		return nil, fmt.Errorf("new scheduler: %w", err)
	}
	if options.NewTicker == nil {
		options.NewTicker = NewSystemTicker
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Scheduler{
		config:  config,
		options: options,
		clock:   clock,
	}, nil
}

// AddObserver registers an observer for subsequent changes.
func (scheduler *Scheduler) AddObserver(observer Observer) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.observers = append(scheduler.observers, observer)
}

// Snapshot returns the current clock state.
func (scheduler *Scheduler) Snapshot() session.Snapshot {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.clock.Snapshot()
}

// Start resumes the countdown. It is a no-op while running.
func (scheduler *Scheduler) Start() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.startLocked()
}

// Pause stops the countdown. No tick is applied after Pause returns.
// It is a no-op while paused.
func (scheduler *Scheduler) Pause() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.pauseLocked()
}

// Toggle starts a paused countdown or pauses a running one.
func (scheduler *Scheduler) Toggle() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if scheduler.clock.Running() {
		scheduler.pauseLocked()
	} else {
		scheduler.startLocked()
	}
}

// Reset returns to a paused, full-length work session.
func (scheduler *Scheduler) Reset() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if scheduler.closed {
		return
	}

	scheduler.cancelLocked()
	scheduler.clock.Reset()
	snapshot := scheduler.clock.Snapshot()
	scheduler.options.Logger.Info("timer reset", "completed", snapshot.CompletedWorkSessions)
	scheduler.notifyTickLocked(snapshot)
}

// Skip ends the current session without a completion notification.
func (scheduler *Scheduler) Skip() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if scheduler.closed {
		return
	}

	scheduler.cancelLocked()
	skipped := scheduler.clock.Skip()
	snapshot := scheduler.clock.Snapshot()
	scheduler.options.Logger.Info("session skipped",
		"skipped", skipped,
		"next", snapshot.Kind,
		"completed", snapshot.CompletedWorkSessions,
	)
	scheduler.notifyTickLocked(snapshot)
}

// Shutdown cancels the outstanding tick loop and waits for it to exit.
// Every later command is ignored.
func (scheduler *Scheduler) Shutdown() {
	scheduler.mu.Lock()
	if scheduler.closed {
		scheduler.mu.Unlock()
		return
	}
	scheduler.closed = true
	scheduler.cancelLocked()
	scheduler.observers = nil
	scheduler.mu.Unlock()

	scheduler.wg.Wait()
	scheduler.options.Logger.Info("scheduler shut down")
}

func (scheduler *Scheduler) startLocked() {
	if scheduler.closed || scheduler.clock.Running() {
		return
	}

	scheduler.clock.ToggleRunning()
	scheduler.armLocked()
	snapshot := scheduler.clock.Snapshot()
	scheduler.options.Logger.Info("timer started",
		"kind", snapshot.Kind,
		"remaining", snapshot.Remaining(),
	)
	scheduler.notifyTickLocked(snapshot)
}

func (scheduler *Scheduler) pauseLocked() {
	if scheduler.closed || !scheduler.clock.Running() {
		return
	}

	scheduler.clock.ToggleRunning()
	scheduler.cancelLocked()
	snapshot := scheduler.clock.Snapshot()
	scheduler.options.Logger.Info("timer paused",
		"kind", snapshot.Kind,
		"remaining", snapshot.Remaining(),
	)
	scheduler.notifyTickLocked(snapshot)
}

func (scheduler *Scheduler) armLocked() {
	scheduler.cancelLocked()

	loop := &tickLoop{stop: make(chan struct{})}
	scheduler.loop = loop
	ticker := scheduler.options.NewTicker(scheduler.config.TickInterval)

	scheduler.wg.Add(1)
	go scheduler.run(loop, ticker)
}

func (scheduler *Scheduler) cancelLocked() {
	if scheduler.loop == nil {
		return
	}
	close(scheduler.loop.stop)
	scheduler.loop = nil
}

func (scheduler *Scheduler) run(loop *tickLoop, ticker Ticker) {
	defer scheduler.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-loop.stop:
			return
		case <-ticker.C():
			if !scheduler.fire(loop) {
				return
			}
		}
	}
}

// fire applies one tick and reports whether the loop should keep running.
func (scheduler *Scheduler) fire(loop *tickLoop) bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	// A firing that raced with Pause, Reset, Skip or Shutdown is stale.
	if scheduler.loop != loop {
		return false
	}

	boundary := scheduler.clock.Tick()
	snapshot := scheduler.clock.Snapshot()
	scheduler.options.Logger.Debug("tick",
		"kind", snapshot.Kind,
		"remaining", snapshot.Remaining(),
	)
	scheduler.notifyTickLocked(snapshot)

	if !boundary.Crossed {
		return true
	}

	scheduler.loop = nil
	scheduler.options.Logger.Info("session complete",
		"completed", boundary.Completed,
		"next", boundary.Next,
		"completed_work_sessions", snapshot.CompletedWorkSessions,
	)
	for _, observer := range scheduler.observers {
		observer.OnSessionComplete(boundary.Completed)
	}
	return false
}

func (scheduler *Scheduler) notifyTickLocked(snapshot session.Snapshot) {
	for _, observer := range scheduler.observers {
		observer.OnTick(snapshot)
	}
}
