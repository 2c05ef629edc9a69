package session

import "fmt"

// Snapshot is a read-only copy of the clock state for presentation layers.
type Snapshot struct {
	Kind                  Kind
	RemainingSeconds      int
	TotalSeconds          int
	Running               bool
	CompletedWorkSessions int
}

// Remaining returns the remaining time as MM:SS.
func (snapshot Snapshot) Remaining() string {
	return FormatSeconds(snapshot.RemainingSeconds)
}

// Progress returns the elapsed fraction of the current session in [0, 1].
func (snapshot Snapshot) Progress() float64 {
	if snapshot.TotalSeconds <= 0 {
		return 0
	}
	progress := float64(snapshot.TotalSeconds-snapshot.RemainingSeconds) / float64(snapshot.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Fresh reports whether the current session has not consumed any time yet.
func (snapshot Snapshot) Fresh() bool {
	return snapshot.RemainingSeconds == snapshot.TotalSeconds
}

// FormatSeconds renders whole seconds as zero-padded MM:SS.
// Minutes are not wrapped, so 100 minutes render as "100:00".
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
