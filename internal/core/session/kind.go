package session

// Kind identifies which interval of the cycle the clock is counting down.
type Kind string

const (
	KindWork       Kind = "work"
	KindShortBreak Kind = "short_break"
	KindLongBreak  Kind = "long_break"
)

// IsBreak reports whether the kind is one of the break intervals.
func (kind Kind) IsBreak() bool {
	return kind == KindShortBreak || kind == KindLongBreak
}

// Label returns the heading shown for the kind.
func (kind Kind) Label() string {
	switch kind {
	case KindShortBreak:
		return "SHORT BREAK"
	case KindLongBreak:
		return "LONG BREAK"
	default:
		return "WORK SESSION"
	}
}

// CompletionTitle returns the notification title for a session of this kind ending.
func (kind Kind) CompletionTitle() string {
	if kind.IsBreak() {
		return "Break Complete!"
	}
	return "Pomodoro Complete!"
}

// CompletionMessage returns the notification text for a session of this kind ending.
func (kind Kind) CompletionMessage() string {
	if kind.IsBreak() {
		return "Break's over! Ready to focus again?"
	}
	return "Great work! Time for a break."
}
