package animate

import (
	"sync"
	"time"
)

// manualTicker delivers ticks only when the test sends them.
type manualClock struct {
	now    time.Time
	ticker *manualTicker
	made   chan struct{}
}

type manualTicker struct {
	c       chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func newManualClock(now time.Time) *manualClock {
	return &manualClock{now: now, made: make(chan struct{})}
}

func (m *manualClock) Now() time.Time { return m.now }

func (m *manualClock) NewTicker(time.Duration) Ticker {
	m.ticker = &manualTicker{c: make(chan time.Time), stopped: make(chan struct{})}
	close(m.made)
	return m.ticker
}

func (t *manualTicker) C() <-chan time.Time { return t.c }
func (t *manualTicker) Stop()               { t.once.Do(func() { close(t.stopped) }) }

// steppingClock ticks as fast as the reader consumes, advancing by step each time.
type steppingClock struct {
	start time.Time
	step  time.Duration
}

type steppingTicker struct {
	c    chan time.Time
	stop chan struct{}
	once sync.Once
}

func (s steppingClock) Now() time.Time { return s.start }

func (s steppingClock) NewTicker(time.Duration) Ticker {
	t := &steppingTicker{c: make(chan time.Time), stop: make(chan struct{})}
	go func() {
		now := s.start
		for {
			now = now.Add(s.step)
			select {
			case t.c <- now:
			case <-t.stop:
				return
			}
		}
	}()
	return t
}

func (t *steppingTicker) C() <-chan time.Time { return t.c }
func (t *steppingTicker) Stop()               { t.once.Do(func() { close(t.stop) }) }
