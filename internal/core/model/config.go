package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig marks a ClockConfig that cannot drive a countdown.
var ErrInvalidConfig = errors.New("invalid clock config")

// ClockConfig contains the fixed durations of one Pomodoro cycle.
type ClockConfig struct {
	WorkSeconds      int
	BreakSeconds     int
	LongBreakSeconds int

	// LongBreakCycle is the number of completed work sessions after which
	// a long break replaces the short one.
	LongBreakCycle int

	TickInterval time.Duration
}

// DefaultClockConfig returns the classic 25/5/15 cycle with a long break every 4th session.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		WorkSeconds:      25 * 60,
		BreakSeconds:     5 * 60,
		LongBreakSeconds: 15 * 60,
		LongBreakCycle:   4,
		TickInterval:     time.Second,
	}
}

// Validate reports every field that would produce a nonsensical countdown.
func (config ClockConfig) Validate() error {
	var errs []error
	if config.WorkSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: work seconds must be positive, got %d", ErrInvalidConfig, config.WorkSeconds))
	}
	if config.BreakSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: break seconds must be positive, got %d", ErrInvalidConfig, config.BreakSeconds))
	}
	if config.LongBreakSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: long break seconds must be positive, got %d", ErrInvalidConfig, config.LongBreakSeconds))
	}
	if config.LongBreakCycle < 1 {
		errs = append(errs, fmt.Errorf("%w: long break cycle must be at least 1, got %d", ErrInvalidConfig, config.LongBreakCycle))
	}
	if config.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, config.TickInterval))
	} else if config.TickInterval%time.Millisecond != 0 {
		errs = append(errs, fmt.Errorf("%w: tick interval must be a whole number of milliseconds, got %s", ErrInvalidConfig, config.TickInterval))
	}
	return errors.Join(errs...)
}
