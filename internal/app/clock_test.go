package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClockAccumulatesSubTickFrames(t *testing.T) {
	c := NewClock(100, 0.25) // dt = 10ms
	require.Equal(t, 0, c.Advance(0.004))
	require.Equal(t, 0, c.Advance(0.004))
	// 12ms accumulated: one tick fires, 2ms carries over.
	require.Equal(t, 1, c.Advance(0.004))
	require.Equal(t, 0, c.Advance(0.004))
}

func TestClockRunsMultipleTicksPerLongFrame(t *testing.T) {
	c := NewClock(100, 0.25)
	require.Equal(t, 3, c.Advance(0.035))
	require.Equal(t, 1, c.Advance(0.005)) // 5ms + 5ms carry
}

func TestClockResynchronizesAfterStall(t *testing.T) {
	c := NewClock(600, 0.25)
	// A 10 second stall must not replay 6000 ticks.
	require.Equal(t, 1, c.Advance(10))
	// And the debt must be gone afterwards.
	require.Equal(t, 0, c.Advance(0.0001))
}

func TestClockDT(t *testing.T) {
	c := NewClock(600, 0.25)
	require.InDelta(t, 1.0/600, float64(c.DT()), 1e-9)
}
