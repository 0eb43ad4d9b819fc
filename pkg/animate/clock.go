package animate

import (
	"context"
	"time"
)

// Clock is the tick source for animations. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realClock struct{}

// SystemClock is the wall clock.
var SystemClock Clock = realClock{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker { return realTicker{time.NewTicker(d)} }

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// Run calls step on every tick until step reports done, step fails or ctx ends.
// The ticker is always released before Run returns.
func Run(ctx context.Context, clock Clock, interval time.Duration, step func(now time.Time) (bool, error)) error {
	t := clock.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C():
			done, err := step(now)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}
