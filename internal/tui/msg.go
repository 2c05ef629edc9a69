package tui

import (
	"time"

	"pomodoro/internal/core/session"
)

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTick carries a scheduler snapshot.
type MsgTick struct {
	Snapshot session.Snapshot
}

func (MsgTick) sealed() {}

// MsgSessionComplete is sent when a countdown reaches its natural end.
type MsgSessionComplete struct {
	Completed session.Kind
}

func (MsgSessionComplete) sealed() {}

// MsgClock refreshes the wall clock.
type MsgClock struct {
	Now time.Time
}

func (MsgClock) sealed() {}

// MsgShutdown is sent once the scheduler has shut down.
type MsgShutdown struct{}

func (MsgShutdown) sealed() {}
