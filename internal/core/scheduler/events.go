package scheduler

import "pomodoro/internal/core/session"

// Observer receives state changes from the Scheduler.
//
// Observers are called in registration order with the scheduler lock held, so
// they see every change exactly once and in order. They must not call back
// into the Scheduler synchronously; presentation layers should hand the
// snapshot to their own event loop and return.
type Observer interface {
	// OnTick is called after every tick and every command that changed state.
	OnTick(snapshot session.Snapshot)
	// OnSessionComplete is called when a countdown reaches its natural end.
	// It is never called for skips.
	OnSessionComplete(completed session.Kind)
}

// Hooks adapts plain functions to Observer. Nil fields are ignored.
type Hooks struct {
	Tick            func(session.Snapshot)
	SessionComplete func(session.Kind)
}

// OnTick implements Observer.
func (hooks Hooks) OnTick(snapshot session.Snapshot) {
	if hooks.Tick != nil {
		hooks.Tick(snapshot)
	}
}

// OnSessionComplete implements Observer.
func (hooks Hooks) OnSessionComplete(completed session.Kind) {
	if hooks.SessionComplete != nil {
		hooks.SessionComplete(completed)
	}
}
