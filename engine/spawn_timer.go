package engine

import (
	"time"
)

// SpawnTimer owns the spawner ticker; at most one ticker is live at a time
type SpawnTimer struct {
	ticker   *time.Ticker
	interval time.Duration
}

// NewSpawnTimer starts a timer; interval <= 0 creates it disabled
func NewSpawnTimer(interval time.Duration) *SpawnTimer {
	t := &SpawnTimer{}
	t.Reset(interval)
	return t
}

// Reset stops the running ticker before starting one at the new interval
func (t *SpawnTimer) Reset(interval time.Duration) {
	t.Stop()
	t.interval = interval
	if interval > 0 {
		t.ticker = time.NewTicker(interval)
	}
}

// C returns the tick channel; nil while disabled so a select never fires on it
func (t *SpawnTimer) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}
	return t.ticker.C
}

func (t *SpawnTimer) Interval() time.Duration {
	return t.interval
}

func (t *SpawnTimer) Enabled() bool {
	return t.ticker != nil
}

// Stop releases the ticker; safe to call repeatedly
func (t *SpawnTimer) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}
