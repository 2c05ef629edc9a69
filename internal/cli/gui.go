package cli

import (
	"fmt"

	"pomodoro/internal/platform"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/window"
	"pomodoro/resources"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"
)

func launchGUI(_ *cobra.Command, rt *runtime) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))
	sched := rt.scheduler
	initial := sched.Snapshot()

	mainWindow := window.New(fyneApp, sched, initial)
	sched.AddObserver(mainWindow)
	mainWindow.SetOnClose(func() {
		rt.logger.Info("window closed", "completed_work_sessions", sched.Snapshot().CompletedWorkSessions)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:   mainWindow.Focus,
			OnToggle: sched.Toggle,
			OnReset:  sched.Reset,
			OnSkip:   sched.Skip,
			OnQuit:   mainWindow.Close,
		}, initial)
		sched.AddObserver(trayManager)
	} else {
		rt.logger.Warn("system tray unsupported on this platform")
	}

	mainWindow.ShowAndRun()
	return nil
}
