// Package window renders the timer in a fyne desktop window.
package window

import (
	"fmt"
	"sync"
	"time"

	"pomodoro/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	windowWidth  = float32(500)
	windowHeight = float32(450)
)

// Controller is the command surface the window drives.
type Controller interface {
	Toggle()
	Reset()
	Skip()
	Shutdown()
}

// Window is the main timer window.
type Window struct {
	app        fyne.App
	window     fyne.Window
	controller Controller

	// dispatch runs UI updates on the fyne main goroutine.
	dispatch func(func())
	now      func() time.Time

	clockLabel   *canvas.Text
	statusLabel  *canvas.Text
	counterLabel *canvas.Text
	timerLabel   *canvas.Text
	progress     *widget.ProgressBar
	toggleButton *widget.Button
	resetButton  *widget.Button
	skipButton   *widget.Button
	closeButton  *widget.Button

	closeOnce sync.Once
	stopClock chan struct{}
	onClose   func()
}

// New creates the window showing the initial snapshot.
func New(app fyne.App, controller Controller, initial session.Snapshot) *Window {
	window := app.NewWindow("Pomodoro Timer")
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	clockLabel := canvas.NewText("--:--:--", textColor)
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Bold: true}
	clockLabel.TextSize = 18

	currentTimeCaption := canvas.NewText("Current Time", mutedColor)
	currentTimeCaption.Alignment = fyne.TextAlignCenter
	currentTimeCaption.TextSize = 14

	statusLabel := canvas.NewText("", workColor)
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	statusLabel.TextSize = 16

	counterLabel := canvas.NewText("", mutedColor)
	counterLabel.Alignment = fyne.TextAlignCenter
	counterLabel.TextSize = 12

	timerLabel := canvas.NewText("", textColor)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = 48

	separator := canvas.NewRectangle(separatorColor)
	separator.SetMinSize(fyne.NewSize(windowWidth-40, 2))

	w := &Window{
		app:          app,
		window:       window,
		controller:   controller,
		dispatch:     fyne.Do,
		now:          time.Now,
		clockLabel:   clockLabel,
		statusLabel:  statusLabel,
		counterLabel: counterLabel,
		timerLabel:   timerLabel,
		progress:     widget.NewProgressBar(),
		stopClock:    make(chan struct{}),
	}
	w.progress.TextFormatter = func() string { return "" }

	w.toggleButton = widget.NewButton("Start", controller.Toggle)
	w.toggleButton.Importance = widget.SuccessImportance
	w.resetButton = widget.NewButton("Reset", controller.Reset)
	w.resetButton.Importance = widget.WarningImportance
	w.skipButton = widget.NewButton("Skip", controller.Skip)
	w.skipButton.Importance = widget.HighImportance
	w.closeButton = widget.NewButton("Close", w.Close)
	w.closeButton.Importance = widget.DangerImportance

	buttons := container.NewGridWithColumns(3, w.toggleButton, w.resetButton, w.skipButton)
	content := container.NewVBox(
		currentTimeCaption,
		clockLabel,
		container.NewCenter(separator),
		statusLabel,
		counterLabel,
		timerLabel,
		w.progress,
		buttons,
		container.NewCenter(w.closeButton),
	)
	background := canvas.NewRectangle(backgroundColor)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.SetCloseIntercept(w.Close)

	w.render(initial)
	w.renderClock(w.now())
	return w
}

// SetOnClose registers a handler run once after the window closes.
func (w *Window) SetOnClose(handler func()) {
	w.onClose = handler
}

// ShowAndRun displays the window and runs the fyne event loop.
func (w *Window) ShowAndRun() {
	go w.runClock()
	w.window.ShowAndRun()
}

// Focus brings the window to front.
func (w *Window) Focus() {
	w.window.Show()
	w.window.RequestFocus()
}

// Close shuts the timer down and quits the application.
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		close(w.stopClock)
		w.controller.Shutdown()
		if w.onClose != nil {
			w.onClose()
		}
		w.app.Quit()
	})
}

// OnTick implements scheduler.Observer.
func (w *Window) OnTick(snapshot session.Snapshot) {
	w.dispatch(func() {
		w.render(snapshot)
	})
}

// OnSessionComplete implements scheduler.Observer.
func (w *Window) OnSessionComplete(completed session.Kind) {
	w.dispatch(func() {
		w.app.SendNotification(fyne.NewNotification(completed.CompletionTitle(), completed.CompletionMessage()))
		dialog.ShowInformation(completed.CompletionTitle(), completed.CompletionMessage(), w.window)
	})
}

func (w *Window) render(snapshot session.Snapshot) {
	w.statusLabel.Text = snapshot.Kind.Label()
	w.statusLabel.Color = kindColor(snapshot.Kind)
	w.statusLabel.Refresh()

	w.counterLabel.Text = fmt.Sprintf("Pomodoros: %d", snapshot.CompletedWorkSessions)
	w.counterLabel.Refresh()

	w.timerLabel.Text = snapshot.Remaining()
	w.timerLabel.Refresh()

	w.progress.SetValue(snapshot.Progress())

	w.toggleButton.SetText(toggleText(snapshot))
	if snapshot.Running {
		w.toggleButton.Importance = widget.WarningImportance
	} else {
		w.toggleButton.Importance = widget.SuccessImportance
	}
	w.toggleButton.Refresh()
}

func (w *Window) renderClock(now time.Time) {
	w.clockLabel.Text = now.Format("15:04:05")
	w.clockLabel.Refresh()
}

func (w *Window) runClock() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopClock:
			return
		case now := <-ticker.C:
			w.dispatch(func() {
				w.renderClock(now)
			})
		}
	}
}

// toggleText returns the start/pause button caption for a snapshot.
func toggleText(snapshot session.Snapshot) string {
	switch {
	case snapshot.Running:
		return "Pause"
	case snapshot.Fresh():
		return "Start"
	default:
		return "Resume"
	}
}
