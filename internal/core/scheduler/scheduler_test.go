package scheduler

import (
	"sync"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

type manualTicker struct {
	ch       chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func (ticker *manualTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *manualTicker) Stop() {
	ticker.stopOnce.Do(func() { close(ticker.stopped) })
}

type manualTickers struct {
	created chan *manualTicker
}

func newManualTickers() *manualTickers {
	return &manualTickers{created: make(chan *manualTicker, 16)}
}

func (tickers *manualTickers) factory(time.Duration) Ticker {
	ticker := &manualTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
	tickers.created <- ticker
	return ticker
}

func (tickers *manualTickers) next(t *testing.T) *manualTicker {
	t.Helper()
	select {
	case ticker := <-tickers.created:
		return ticker
	case <-time.After(waitTimeout):
		t.Fatal("no ticker armed")
		return nil
	}
}

func (tickers *manualTickers) requireNone(t *testing.T) {
	t.Helper()
	select {
	case <-tickers.created:
		t.Fatal("unexpected ticker armed")
	default:
	}
}

type recorder struct {
	ticks     chan session.Snapshot
	completed chan session.Kind
}

func newRecorder() *recorder {
	return &recorder{
		ticks:     make(chan session.Snapshot, 4096),
		completed: make(chan session.Kind, 16),
	}
}

func (rec *recorder) OnTick(snapshot session.Snapshot) {
	rec.ticks <- snapshot
}

func (rec *recorder) OnSessionComplete(kind session.Kind) {
	rec.completed <- kind
}

func (rec *recorder) nextTick(t *testing.T) session.Snapshot {
	t.Helper()
	select {
	case snapshot := <-rec.ticks:
		return snapshot
	case <-time.After(waitTimeout):
		t.Fatal("no tick notification")
		return session.Snapshot{}
	}
}

func (rec *recorder) requireQuiet(t *testing.T) {
	t.Helper()
	select {
	case snapshot := <-rec.ticks:
		t.Fatalf("unexpected tick notification: %+v", snapshot)
	case kind := <-rec.completed:
		t.Fatalf("unexpected completion: %s", kind)
	default:
	}
}

// fireTick delivers one tick and waits until the scheduler has applied it.
func fireTick(t *testing.T, ticker *manualTicker, rec *recorder) session.Snapshot {
	t.Helper()
	select {
	case ticker.ch <- time.Now():
	case <-time.After(waitTimeout):
		t.Fatal("tick loop not receiving")
	}
	return rec.nextTick(t)
}

func waitStopped(t *testing.T, ticker *manualTicker) {
	t.Helper()
	select {
	case <-ticker.stopped:
	case <-time.After(waitTimeout):
		t.Fatal("ticker not stopped")
	}
}

func newTestScheduler(t *testing.T, config model.ClockConfig) (*Scheduler, *manualTickers, *recorder) {
	t.Helper()
	tickers := newManualTickers()
	scheduler, err := New(config, Options{NewTicker: tickers.factory})
	require.NoError(t, err)
	t.Cleanup(scheduler.Shutdown)

	rec := newRecorder()
	scheduler.AddObserver(rec)
	return scheduler, tickers, rec
}

func smallConfig() model.ClockConfig {
	return model.ClockConfig{
		WorkSeconds:      3,
		BreakSeconds:     2,
		LongBreakSeconds: 4,
		LongBreakCycle:   2,
		TickInterval:     time.Second,
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	config := smallConfig()
	config.WorkSeconds = 0

	scheduler, err := New(config, Options{})
	assert.Nil(t, scheduler)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestScheduler_StartNotifiesAndArmsOneTicker(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, smallConfig())

	scheduler.Start()
	snapshot := rec.nextTick(t)
	assert.True(t, snapshot.Running)
	assert.Equal(t, 3, snapshot.RemainingSeconds)
	tickers.next(t)

	scheduler.Start()
	tickers.requireNone(t)
	rec.requireQuiet(t)
}

func TestScheduler_CountdownAndCompletion(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, smallConfig())

	scheduler.Start()
	rec.nextTick(t)
	ticker := tickers.next(t)

	for _, expected := range []int{2, 1, 0} {
		snapshot := fireTick(t, ticker, rec)
		assert.Equal(t, expected, snapshot.RemainingSeconds)
		assert.True(t, snapshot.Running)
	}

	snapshot := fireTick(t, ticker, rec)
	assert.Equal(t, session.KindShortBreak, snapshot.Kind)
	assert.Equal(t, 2, snapshot.RemainingSeconds)
	assert.False(t, snapshot.Running)
	assert.Equal(t, 1, snapshot.CompletedWorkSessions)

	select {
	case kind := <-rec.completed:
		assert.Equal(t, session.KindWork, kind)
	case <-time.After(waitTimeout):
		t.Fatal("no completion notification")
	}

	waitStopped(t, ticker)
	assert.Equal(t, snapshot, scheduler.Snapshot())
	rec.requireQuiet(t)
}

func TestScheduler_ScenarioA(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, model.DefaultClockConfig())

	scheduler.Start()
	rec.nextTick(t)
	ticker := tickers.next(t)

	for i := 0; i < 1500; i++ {
		fireTick(t, ticker, rec)
	}
	assert.Equal(t, 0, scheduler.Snapshot().RemainingSeconds)

	snapshot := fireTick(t, ticker, rec)
	assert.Equal(t, session.KindWork, <-rec.completed)
	assert.Equal(t, session.KindShortBreak, snapshot.Kind)
	assert.Equal(t, 300, snapshot.RemainingSeconds)
	assert.False(t, snapshot.Running)
	assert.Equal(t, 1, snapshot.CompletedWorkSessions)
}

func TestScheduler_LongBreakAfterCycle(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, smallConfig())

	completeSession := func() session.Snapshot {
		scheduler.Start()
		rec.nextTick(t)
		ticker := tickers.next(t)
		for {
			snapshot := fireTick(t, ticker, rec)
			if !snapshot.Running {
				<-rec.completed
				return snapshot
			}
		}
	}

	assert.Equal(t, session.KindShortBreak, completeSession().Kind)
	assert.Equal(t, session.KindWork, completeSession().Kind)

	snapshot := completeSession()
	assert.Equal(t, session.KindLongBreak, snapshot.Kind)
	assert.Equal(t, 4, snapshot.RemainingSeconds)
	assert.Equal(t, 2, snapshot.CompletedWorkSessions)
}

func TestScheduler_ScenarioD_PauseResumeKeepsRemaining(t *testing.T) {
	config := smallConfig()
	config.WorkSeconds = 20
	scheduler, tickers, rec := newTestScheduler(t, config)

	scheduler.Start()
	rec.nextTick(t)
	ticker := tickers.next(t)
	for i := 0; i < 10; i++ {
		fireTick(t, ticker, rec)
	}

	scheduler.Pause()
	paused := rec.nextTick(t)
	assert.False(t, paused.Running)
	assert.Equal(t, 10, paused.RemainingSeconds)
	waitStopped(t, ticker)

	scheduler.Start()
	resumed := rec.nextTick(t)
	assert.True(t, resumed.Running)
	assert.Equal(t, 10, resumed.RemainingSeconds)

	next := tickers.next(t)
	assert.Equal(t, 9, fireTick(t, next, rec).RemainingSeconds)
}

func TestScheduler_PauseIsIdempotent(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, smallConfig())

	scheduler.Start()
	rec.nextTick(t)
	tickers.next(t)

	scheduler.Pause()
	first := rec.nextTick(t)

	scheduler.Pause()
	rec.requireQuiet(t)
	assert.Equal(t, first, scheduler.Snapshot())
}

func TestScheduler_PauseWhilePausedIsNoop(t *testing.T) {
	scheduler, _, rec := newTestScheduler(t, smallConfig())

	scheduler.Pause()

	rec.requireQuiet(t)
	assert.False(t, scheduler.Snapshot().Running)
}

func TestScheduler_Toggle(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, smallConfig())

	scheduler.Toggle()
	assert.True(t, rec.nextTick(t).Running)
	ticker := tickers.next(t)

	scheduler.Toggle()
	assert.False(t, rec.nextTick(t).Running)
	waitStopped(t, ticker)
}

func TestScheduler_ResetCancelsLoop(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, smallConfig())

	scheduler.Skip()
	rec.nextTick(t)
	scheduler.Start()
	rec.nextTick(t)
	ticker := tickers.next(t)
	fireTick(t, ticker, rec)

	scheduler.Reset()
	snapshot := rec.nextTick(t)
	assert.Equal(t, session.KindWork, snapshot.Kind)
	assert.Equal(t, 3, snapshot.RemainingSeconds)
	assert.False(t, snapshot.Running)
	assert.Equal(t, 1, snapshot.CompletedWorkSessions)
	waitStopped(t, ticker)
}

func TestScheduler_SkipDoesNotNotifyCompletion(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, smallConfig())

	scheduler.Start()
	rec.nextTick(t)
	ticker := tickers.next(t)

	scheduler.Skip()
	snapshot := rec.nextTick(t)
	assert.Equal(t, session.KindShortBreak, snapshot.Kind)
	assert.False(t, snapshot.Running)
	assert.Equal(t, 1, snapshot.CompletedWorkSessions)
	waitStopped(t, ticker)

	scheduler.Skip()
	snapshot = rec.nextTick(t)
	assert.Equal(t, session.KindWork, snapshot.Kind)
	assert.Equal(t, 1, snapshot.CompletedWorkSessions)
	rec.requireQuiet(t)
}

func TestScheduler_ShutdownStopsEverything(t *testing.T) {
	scheduler, tickers, rec := newTestScheduler(t, smallConfig())

	scheduler.Start()
	rec.nextTick(t)
	ticker := tickers.next(t)

	scheduler.Shutdown()
	waitStopped(t, ticker)

	scheduler.Start()
	scheduler.Reset()
	scheduler.Skip()
	scheduler.Toggle()
	scheduler.Shutdown()

	tickers.requireNone(t)
	rec.requireQuiet(t)
}

func TestHooks_IgnoresNilFuncs(t *testing.T) {
	var ticks int
	hooks := Hooks{Tick: func(session.Snapshot) { ticks++ }}

	hooks.OnTick(session.Snapshot{})
	hooks.OnSessionComplete(session.KindWork)

	assert.Equal(t, 1, ticks)
}

func TestScheduler_SystemTicker(t *testing.T) {
	config := smallConfig()
	config.WorkSeconds = 1
	config.TickInterval = 5 * time.Millisecond

	scheduler, err := New(config, Options{})
	require.NoError(t, err)
	defer scheduler.Shutdown()

	done := make(chan session.Kind, 1)
	scheduler.AddObserver(Hooks{SessionComplete: func(kind session.Kind) { done <- kind }})
	scheduler.Start()

	select {
	case kind := <-done:
		assert.Equal(t, session.KindWork, kind)
	case <-time.After(waitTimeout):
		t.Fatal("session did not complete")
	}
	assert.Equal(t, session.KindShortBreak, scheduler.Snapshot().Kind)
}
