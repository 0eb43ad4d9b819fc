package animate

import (
	"context"
	"math"
	"sync"
	"time"
)

const (
	DefaultCountUpDuration = 1500 * time.Millisecond
	DefaultThreshold       = 0.3
	// FrameInterval is the tick rate of streamed animations.
	FrameInterval = 16 * time.Millisecond
)

type countState int

const (
	countWaiting countState = iota
	countRunning
	countDone
	countCancelled
)

// CountFrame is one rendered step of a count-up.
type CountFrame struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
	Done  bool    `json:"done"`
}

// CountUp animates a number from 0 to its end value once it becomes visible.
// It runs at most once: after it completes, visibility changes are ignored.
type CountUp struct {
	parts     NumberParts
	duration  time.Duration
	threshold float64

	mu    sync.Mutex
	state countState
	start time.Time
	last  float64
}

// NewCountUp uses DefaultCountUpDuration and DefaultThreshold for zero arguments.
func NewCountUp(parts NumberParts, duration time.Duration, threshold float64) *CountUp {
	if duration <= 0 {
		duration = DefaultCountUpDuration
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &CountUp{parts: parts, duration: duration, threshold: threshold}
}

// Visible reports the visible fraction of the element. The first call with
// ratio >= threshold starts the animation at now and returns true.
func (c *CountUp) Visible(ratio float64, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != countWaiting || ratio < c.threshold {
		return false
	}
	c.state = countRunning
	c.start = now
	return true
}

// Frame returns the value at now. Values never decrease.
func (c *CountUp) Frame(now time.Time) CountFrame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == countRunning {
		progress := math.Min(float64(now.Sub(c.start))/float64(c.duration), 1)
		if v := math.Floor(c.parts.End * progress); v > c.last {
			c.last = v
		}
		if progress >= 1 {
			c.state = countDone
		}
	}
	return CountFrame{Value: c.last, Text: c.parts.Format(c.last), Done: c.state == countDone}
}

// Cancel stops a running or waiting count-up; the last value is kept.
func (c *CountUp) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != countDone {
		c.state = countCancelled
	}
}

func (c *CountUp) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == countDone || c.state == countCancelled
}

// Stream drives c on clock, emitting a frame per tick until it is done.
// Cancelling ctx cancels the count-up.
func (c *CountUp) Stream(ctx context.Context, clock Clock, emit func(CountFrame) error) error {
	err := Run(ctx, clock, FrameInterval, func(now time.Time) (bool, error) {
		f := c.Frame(now)
		if err := emit(f); err != nil {
			return false, err
		}
		return f.Done || c.Finished(), nil
	})
	if err != nil {
		c.Cancel()
	}
	return err
}
