package tui

import (
	"pomodoro/internal/core/session"

	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Separator  lipgloss.Color
	Work       lipgloss.Color
	ShortBreak lipgloss.Color
	LongBreak  lipgloss.Color
	Notice     lipgloss.Color
}{
	Text:       lipgloss.Color("#ECF0F1"),
	Muted:      lipgloss.Color("#95A5A6"),
	Separator:  lipgloss.Color("#34495E"),
	Work:       lipgloss.Color("#27AE60"),
	ShortBreak: lipgloss.Color("#3498DB"),
	LongBreak:  lipgloss.Color("#9B59B6"),
	Notice:     lipgloss.Color("#F39C12"),
}

// Styles contains the lipgloss styles used by the view.
type Styles struct {
	App       lipgloss.Style
	Caption   lipgloss.Style
	Clock     lipgloss.Style
	Separator lipgloss.Style
	Counter   lipgloss.Style
	Timer     lipgloss.Style
	Paused    lipgloss.Style
	Notice    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:       lipgloss.NewStyle().Padding(1, 2),
		Caption:   lipgloss.NewStyle().Foreground(Colors.Muted),
		Clock:     lipgloss.NewStyle().Foreground(Colors.Text).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(Colors.Separator),
		Counter:   lipgloss.NewStyle().Foreground(Colors.Muted),
		Timer:     lipgloss.NewStyle().Foreground(Colors.Text).Bold(true).Padding(1, 0),
		Paused:    lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
		Notice: lipgloss.NewStyle().
			Foreground(Colors.Notice).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Notice).
			Padding(0, 1),
	}
}

// KindColor returns the accent color of a session kind.
func KindColor(kind session.Kind) lipgloss.Color {
	switch kind {
	case session.KindShortBreak:
		return Colors.ShortBreak
	case session.KindLongBreak:
		return Colors.LongBreak
	default:
		return Colors.Work
	}
}

// KindStyle returns the heading style for a session kind.
func KindStyle(kind session.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(KindColor(kind)).Bold(true)
}
