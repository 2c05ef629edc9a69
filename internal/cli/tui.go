package cli

import (
	"fmt"

	"pomodoro/internal/platform"
	"pomodoro/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func launchTUI(cmd *cobra.Command, rt *runtime) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	sched := rt.scheduler
	model := tui.New(sched, sched.Snapshot())
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	sched.AddObserver(tui.NewObserver(program))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
