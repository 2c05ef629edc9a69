package scheduler

import "time"

// Ticker is the repeating timer that drives the countdown.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker firing every interval.
type TickerFactory func(interval time.Duration) Ticker

type systemTicker struct {
	ticker *time.Ticker
}

// NewSystemTicker wraps time.NewTicker.
func NewSystemTicker(interval time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(interval)}
}

func (ticker *systemTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *systemTicker) Stop() {
	ticker.ticker.Stop()
}
