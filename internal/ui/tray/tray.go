package tray

import (
	"fmt"

	"pomodoro/internal/core/session"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
)

const menuTitle = "Pomodoro"

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow   func()
	OnToggle func()
	OnReset  func()
	OnSkip   func()
	OnQuit   func()
}

// Manager handles system tray state.
type Manager struct {
	app        App
	callbacks  Callbacks
	dispatch   func(func())
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	icon       fyne.Resource
}

// New creates a tray manager showing the initial snapshot.
func New(app App, callbacks Callbacks, initial session.Snapshot) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		dispatch:  fyne.Do,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", func() { call(manager.callbacks.OnToggle) })

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) }),
		fyne.NewMenuItem("Skip", func() { call(manager.callbacks.OnSkip) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", func() { call(manager.callbacks.OnShow) }),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	)

	manager.render(initial)
	return manager
}

// OnTick implements scheduler.Observer.
func (manager *Manager) OnTick(snapshot session.Snapshot) {
	manager.dispatch(func() {
		manager.render(snapshot)
	})
}

// OnSessionComplete implements scheduler.Observer. The window owns completion notices.
func (manager *Manager) OnSessionComplete(session.Kind) {}

func (manager *Manager) render(snapshot session.Snapshot) {
	manager.statusItem.Label = statusText(snapshot)
	if snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}

	if icon := resources.StatusIcon(snapshot.Kind, snapshot.Running); icon != manager.icon {
		manager.icon = icon
		manager.app.SetSystemTrayIcon(icon)
	}
	manager.app.SetSystemTrayMenu(manager.menu)
}

func statusText(snapshot session.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.Kind.Label(), snapshot.Remaining())
	if !snapshot.Running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
