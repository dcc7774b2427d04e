package colvalue

import (
	"sync/atomic"
	"time"
)

type Clock interface {
	NowInMillis() int64
}

type SystemClock struct{}

func (s *SystemClock) NowInMillis() int64 {
	return time.Now().UnixMilli()
}

// ManualClock only moves when advanced.
type ManualClock struct {
	millis atomic.Int64
}

func NewManualClock(start time.Time) *ManualClock {
	c := &ManualClock{}
	c.millis.Store(start.UnixMilli())
	return c
}

func (m *ManualClock) NowInMillis() int64 {
	return m.millis.Load()
}

func (m *ManualClock) Advance(d time.Duration) {
	m.millis.Add(d.Milliseconds())
}
