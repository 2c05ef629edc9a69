// Package tui renders the timer in the terminal with bubbletea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"pomodoro/internal/core/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultProgressWidth = 40
	appPadding           = 4
)

// Controller is the command surface the TUI drives.
type Controller interface {
	Toggle()
	Reset()
	Skip()
	Shutdown()
}

// Model is the bubbletea model of the timer.
type Model struct {
	controller Controller
	snapshot   session.Snapshot
	notice     *session.Kind
	now        time.Time
	keys       KeyMap
	styles     Styles
	help       help.Model
	progress   progress.Model
	quitting   bool
}

// New creates a model showing the initial snapshot.
func New(controller Controller, initial session.Snapshot) *Model {
	bar := progress.New(progress.WithSolidFill(string(KindColor(initial.Kind))), progress.WithoutPercentage())
	bar.Width = defaultProgressWidth

	return &Model{
		controller: controller,
		snapshot:   initial,
		now:        time.Now(),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		progress:   bar,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.clockTick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		m.snapshot = msg.Snapshot
		m.progress.FullColor = string(KindColor(msg.Snapshot.Kind))
		return m, nil
	case MsgSessionComplete:
		completed := msg.Completed
		m.notice = &completed
		return m, nil
	case MsgClock:
		m.now = msg.Now
		if m.quitting {
			return m, nil
		}
		return m, m.clockTick()
	case MsgShutdown:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		width := msg.Width - appPadding*2
		if width > defaultProgressWidth {
			width = defaultProgressWidth
		}
		if width < 10 {
			width = 10
		}
		m.progress.Width = width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.notice = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, m.shutdown()
	case key.Matches(msg, m.keys.Toggle):
		return m, m.command(m.controller.Toggle)
	case key.Matches(msg, m.keys.Reset):
		return m, m.command(m.controller.Reset)
	case key.Matches(msg, m.keys.Skip):
		return m, m.command(m.controller.Skip)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// command runs a scheduler action off the event loop.
func (m *Model) command(action func()) tea.Cmd {
	return func() tea.Msg {
		action()
		return nil
	}
}

func (m *Model) shutdown() tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		controller.Shutdown()
		return MsgShutdown{}
	}
}

func (m *Model) clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(now time.Time) tea.Msg {
		return MsgClock{Now: now}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Caption.Render("Current Time"))
	b.WriteString("\n")
	b.WriteString(m.styles.Clock.Render(m.now.Format("15:04:05")))
	b.WriteString("\n")
	b.WriteString(m.styles.Separator.Render(strings.Repeat("─", m.progress.Width)))
	b.WriteString("\n\n")

	heading := KindStyle(m.snapshot.Kind).Render(m.snapshot.Kind.Label())
	if !m.snapshot.Running {
		heading = lipgloss.JoinHorizontal(lipgloss.Top, heading, " ", m.styles.Paused.Render(pausedText(m.snapshot)))
	}
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(m.styles.Counter.Render(fmt.Sprintf("Pomodoros: %d", m.snapshot.CompletedWorkSessions)))
	b.WriteString("\n")
	b.WriteString(m.styles.Timer.Render(m.snapshot.Remaining()))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.snapshot.Progress()))
	b.WriteString("\n\n")

	if m.notice != nil {
		b.WriteString(m.styles.Notice.Render(m.notice.CompletionTitle() + " " + m.notice.CompletionMessage()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return m.styles.App.Render(b.String())
}

func pausedText(snapshot session.Snapshot) string {
	if snapshot.Fresh() {
		return "(ready)"
	}
	return "(paused)"
}
