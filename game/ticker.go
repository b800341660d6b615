package game

import "time"

// Ticker throttles physics steps to a fixed interval.
// When frames arrive late the remainder is carried so the average rate holds,
// but a late frame still gets only one step.
type Ticker struct {
	Interval time.Duration

	last    time.Time
	started bool
}

// NewTicker creates a ticker firing at most once per interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{Interval: interval}
}

// Due reports whether a step should run at now, and if so advances the ticker.
// The first call is always due.
func (t *Ticker) Due(now time.Time) bool {
	if !t.started {
		t.started = true
		t.last = now
		return true
	}

	delta := now.Sub(t.last)
	if delta <= t.Interval {
		return false
	}
	if t.Interval > 0 {
		t.last = now.Add(-(delta % t.Interval))
	} else {
		t.last = now
	}
	return true
}

// Reset makes the next call to Due fire immediately.
func (t *Ticker) Reset() {
	t.started = false
}
