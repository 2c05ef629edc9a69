package tui

import (
	"pomodoro/internal/core/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender is the part of tea.Program the observer needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Observer forwards scheduler notifications into a bubbletea program.
// Send blocks until the event loop receives, so the model must never call the
// scheduler from Update directly; it does so from commands.
type Observer struct {
	sender Sender
}

// NewObserver creates an observer forwarding to sender.
func NewObserver(sender Sender) *Observer {
	return &Observer{sender: sender}
}

// OnTick implements scheduler.Observer.
func (observer *Observer) OnTick(snapshot session.Snapshot) {
	observer.sender.Send(MsgTick{Snapshot: snapshot})
}

// OnSessionComplete implements scheduler.Observer.
func (observer *Observer) OnSessionComplete(completed session.Kind) {
	observer.sender.Send(MsgSessionComplete{Completed: completed})
}
