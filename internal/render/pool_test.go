package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func countingPool(t *testing.T) (*Pool, *int) {
	t.Helper()
	allocs := 0
	p := newPoolWithAlloc(64, func(size int32) (*CaptureSet, error) {
		allocs++
		return &CaptureSet{Size: size}, nil
	})
	return p, &allocs
}

func TestPoolReusesReleasedSets(t *testing.T) {
	p, allocs := countingPool(t)

	var held []*CaptureSet
	for i := 0; i < 5; i++ {
		s, err := p.Acquire()
		require.NoError(t, err)
		held = append(held, s)
	}
	require.Equal(t, 5, *allocs)

	for _, s := range held {
		p.Release(s)
	}

	// Re-acquiring after release must not allocate, in any churn order.
	for i := 0; i < 5; i++ {
		_, err := p.Acquire()
		require.NoError(t, err)
	}
	require.Equal(t, 5, *allocs, "churn must not grow the pool past its peak")
	require.Equal(t, 5, p.Allocated())
}

func TestPoolIsLIFO(t *testing.T) {
	p, _ := countingPool(t)
	a, _ := p.Acquire()
	b, _ := p.Acquire()

	p.Release(a)
	p.Release(b)

	got, err := p.Acquire()
	require.NoError(t, err)
	require.Same(t, b, got, "most recently released set is reused first")
	got, err = p.Acquire()
	require.NoError(t, err)
	require.Same(t, a, got)
}

func TestPoolGrowsToInterleavedPeak(t *testing.T) {
	p, allocs := countingPool(t)

	a, _ := p.Acquire()
	b, _ := p.Acquire()
	p.Release(a)
	c, _ := p.Acquire() // reuses a
	require.Same(t, a, c)
	p.Release(b)
	p.Release(c)
	_, _ = p.Acquire()
	_, _ = p.Acquire()
	d, _ := p.Acquire() // peak rises to 3 here
	require.NotNil(t, d)

	require.Equal(t, 3, *allocs)
	require.Equal(t, 3, p.Allocated())
}

func TestReleaseNilIsNoop(t *testing.T) {
	p, _ := countingPool(t)
	p.Release(nil)
	require.Equal(t, 0, p.FreeCount())
}
