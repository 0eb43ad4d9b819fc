package animate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestCountUp_StartsAtThresholdOnce(t *testing.T) {
	cu := NewCountUp(NumberParts{End: 1458}, 0, 0)

	require.False(t, cu.Visible(0.29, t0))
	require.Equal(t, 0.0, cu.Frame(t0.Add(time.Second)).Value, "not started yet")

	require.True(t, cu.Visible(0.3, t0))
	require.False(t, cu.Visible(1, t0.Add(time.Second)), "one-shot")

	require.Equal(t, 729.0, cu.Frame(t0.Add(750*time.Millisecond)).Value)
	f := cu.Frame(t0.Add(1500 * time.Millisecond))
	require.Equal(t, CountFrame{Value: 1458, Text: "1458", Done: true}, f)

	require.False(t, cu.Visible(1, t0.Add(2*time.Second)))
	require.Equal(t, 1458.0, cu.Frame(t0.Add(3*time.Second)).Value)
}

func TestCountUp_Monotonic(t *testing.T) {
	cu := NewCountUp(ParseNumberParts("$50000"), time.Second, 0)
	require.True(t, cu.Visible(1, t0))

	late := cu.Frame(t0.Add(600 * time.Millisecond))
	early := cu.Frame(t0.Add(100 * time.Millisecond))
	require.Equal(t, late.Value, early.Value)
	require.Equal(t, "$30000", early.Text)
}

func TestCountUp_CancelKeepsLastValue(t *testing.T) {
	cu := NewCountUp(NumberParts{End: 100}, time.Second, 0)
	require.True(t, cu.Visible(1, t0))
	require.Equal(t, 50.0, cu.Frame(t0.Add(500*time.Millisecond)).Value)

	cu.Cancel()
	f := cu.Frame(t0.Add(2 * time.Second))
	require.Equal(t, 50.0, f.Value)
	require.False(t, f.Done)
	require.True(t, cu.Finished())
}

func TestCountUp_StreamToCompletion(t *testing.T) {
	defer goleak.VerifyNone(t)

	cu := NewCountUp(NumberParts{End: 89}, time.Second, 0)
	require.True(t, cu.Visible(1, t0))

	var frames []CountFrame
	err := cu.Stream(context.Background(), steppingClock{start: t0, step: 100 * time.Millisecond}, func(f CountFrame) error {
		frames = append(frames, f)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, frames, 10)
	require.Equal(t, CountFrame{Value: 89, Text: "89", Done: true}, frames[len(frames)-1])
	for i := 1; i < len(frames); i++ {
		require.GreaterOrEqual(t, frames[i].Value, frames[i-1].Value)
	}
}

func TestCountUp_StreamCancelReleasesTicker(t *testing.T) {
	defer goleak.VerifyNone(t)

	cu := NewCountUp(NumberParts{End: 100}, time.Second, 0)
	require.True(t, cu.Visible(1, t0))

	clock := newManualClock(t0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cu.Stream(ctx, clock, func(CountFrame) error { return nil })
	}()

	<-clock.made
	clock.ticker.c <- t0.Add(200 * time.Millisecond)
	cancel()

	require.ErrorIs(t, <-done, context.Canceled)
	<-clock.ticker.stopped
	require.True(t, cu.Finished())
	require.Equal(t, 20.0, cu.Frame(t0.Add(time.Hour)).Value)
}
