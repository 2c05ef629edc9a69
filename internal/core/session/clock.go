// Package session implements the Pomodoro state machine.
//
// Clock holds the current session kind, the remaining seconds, the running
// flag and the lifetime count of completed work sessions. Its operations are
// pure with respect to time: the caller decides when a second has passed.
// Clock is not safe for concurrent use.
package session

import (
	"fmt"

	"pomodoro/internal/core/model"
)

// Boundary describes the outcome of a tick.
type Boundary struct {
	// Crossed is true when the tick ended a session.
	Crossed bool
	// Completed is the kind of the session that just ended.
	Completed Kind
	// Next is the kind the clock moved to.
	Next Kind
}

// Clock is the Pomodoro state machine.
type Clock struct {
	config    model.ClockConfig
	kind      Kind
	remaining int
	running   bool
	completed int
}

// NewClock creates a paused clock at the start of a work session.
func NewClock(config model.ClockConfig) (*Clock, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new clock: %w", err)
	}
	return &Clock{
		config:    config,
		kind:      KindWork,
		remaining: config.WorkSeconds,
	}, nil
}

// Tick advances the countdown by one second while running.
// A tick that finds the countdown at zero ends the session, moves to the next
// kind and pauses the clock.
func (clock *Clock) Tick() Boundary {
	if !clock.running {
		return Boundary{}
	}
	if clock.remaining > 0 {
		clock.remaining--
		return Boundary{}
	}

	completed := clock.kind
	clock.advance()
	clock.running = false
	return Boundary{Crossed: true, Completed: completed, Next: clock.kind}
}

// ToggleRunning flips the running flag and returns the new value.
func (clock *Clock) ToggleRunning() bool {
	clock.running = !clock.running
	return clock.running
}

// Running reports whether the countdown is active.
func (clock *Clock) Running() bool {
	return clock.running
}

// Reset returns to a paused, full-length work session.
// The completed work session count is a lifetime total and is kept.
func (clock *Clock) Reset() {
	clock.kind = KindWork
	clock.remaining = clock.config.WorkSeconds
	clock.running = false
}

// Skip ends the current session immediately and pauses the clock.
// A skipped work session still counts as completed. It returns the kind that was skipped.
func (clock *Clock) Skip() Kind {
	skipped := clock.kind
	clock.advance()
	clock.running = false
	return skipped
}

// Snapshot returns a copy of the current state.
func (clock *Clock) Snapshot() Snapshot {
	return Snapshot{
		Kind:                  clock.kind,
		RemainingSeconds:      clock.remaining,
		TotalSeconds:          clock.DurationFor(clock.kind),
		Running:               clock.running,
		CompletedWorkSessions: clock.completed,
	}
}

// DurationFor returns the configured length of a session kind in seconds.
func (clock *Clock) DurationFor(kind Kind) int {
	switch kind {
	case KindShortBreak:
		return clock.config.BreakSeconds
	case KindLongBreak:
		return clock.config.LongBreakSeconds
	default:
		return clock.config.WorkSeconds
	}
}

func (clock *Clock) advance() {
	if clock.kind == KindWork {
		clock.completed++
		if clock.completed%clock.config.LongBreakCycle == 0 {
			clock.kind = KindLongBreak
		} else {
			clock.kind = KindShortBreak
		}
	} else {
		clock.kind = KindWork
	}
	clock.remaining = clock.DurationFor(clock.kind)
}
