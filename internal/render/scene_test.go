package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/jelloface/bouncy/internal/physics"
)

func testScene(t *testing.T) (*Scene, *int) {
	t.Helper()
	p, allocs := countingPool(t)
	return NewScene(p), allocs
}

func body() *physics.Body {
	return physics.NewBody(mgl32.Vec3{}, mgl32.Vec3{}, 0.4)
}

func TestAddBallAcquiresOneSet(t *testing.T) {
	s, allocs := testScene(t)
	b, err := s.AddBall(body(), mgl32.Vec3{1, 0, 0})
	require.NoError(t, err)
	require.NotNil(t, b.capture)
	require.Equal(t, 1, *allocs)
}

func TestRemoveBallReturnsSetToPool(t *testing.T) {
	s, allocs := testScene(t)
	a, _ := s.AddBall(body(), mgl32.Vec3{1, 0, 0})
	set := a.capture

	s.RemoveBall(a)
	require.Nil(t, a.capture)
	require.Empty(t, s.Balls)

	// The next ball reuses the retired set instead of allocating.
	b, err := s.AddBall(body(), mgl32.Vec3{0, 1, 0})
	require.NoError(t, err)
	require.Same(t, set, b.capture)
	require.Equal(t, 1, *allocs)
}

func TestChurnIsBoundedByPeak(t *testing.T) {
	s, allocs := testScene(t)
	for round := 0; round < 10; round++ {
		var balls []*Ball
		for i := 0; i < 4; i++ {
			b, err := s.AddBall(body(), mgl32.Vec3{})
			require.NoError(t, err)
			balls = append(balls, b)
		}
		for _, b := range balls {
			s.RemoveBall(b)
		}
	}
	require.Equal(t, 4, *allocs)
}

func TestCloseReleasesEverything(t *testing.T) {
	s, _ := testScene(t)
	pool := s.pool
	for i := 0; i < 3; i++ {
		_, err := s.AddBall(body(), mgl32.Vec3{})
		require.NoError(t, err)
	}
	s.Close()
	require.Empty(t, s.Balls)
	require.Equal(t, 3, pool.FreeCount(), "every set must be back in the pool")
}

func TestRemoveUnknownBallIsNoop(t *testing.T) {
	s, _ := testScene(t)
	a, _ := s.AddBall(body(), mgl32.Vec3{})
	stray := &Ball{Body: body()}
	s.RemoveBall(stray)
	require.Len(t, s.Balls, 1)
	require.Same(t, a, s.Balls[0])
}
