package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func testBounds() Bounds {
	return Bounds{
		Min: [3]float32{-12, 0, -12},
		Max: [3]float32{12, 2, 12},
	}
}

// A ball launched upward against gravity must stay inside the arena, and its
// vertical velocity must flip sign exactly once per ceiling or floor contact.
func TestCeilingBounceScenario(t *testing.T) {
	w := NewWorld(testBounds(), 4)
	b := NewBody(mgl32.Vec3{0, 0.1, 0}, mgl32.Vec3{0, 5, 0}, 0.1)
	w.AddBody(b)

	const dt = 0.01
	flips := 0
	prevSign := sign(b.Velocity.Y())
	for i := 0; i < 5000; i++ {
		w.Step(dt)
		// One tick of overshoot is tolerated, never more.
		require.LessOrEqual(t, b.Position.Y(), w.Bounds.Max[1]+5*dt,
			"tick %d: ball escaped through the ceiling", i)
		require.GreaterOrEqual(t, b.Position.Y(), w.Bounds.Min[1]-5*dt,
			"tick %d: ball escaped through the floor", i)
		if s := sign(b.Velocity.Y()); s != prevSign && s != 0 {
			flips++
			require.True(t, b.Bounced, "tick %d: y-velocity flipped without a bounce", i)
			prevSign = s
		}
	}
	require.Greater(t, flips, 2, "expected repeated bouncing")
}

func sign(v float32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Two balls on a head-on course swap velocities exactly at the tick they
// touch, and are not re-collided once separating.
func TestHeadOnCollisionSwapsVelocities(t *testing.T) {
	w := NewWorld(testBounds(), 0)
	a := NewBody(mgl32.Vec3{-1, 1, 0}, mgl32.Vec3{2, 0, 0}, 0.25)
	b := NewBody(mgl32.Vec3{1, 1, 0}, mgl32.Vec3{-2, 0, 0}, 0.25)
	w.AddBody(a)
	w.AddBody(b)

	const dt = 0.01
	collided := false
	for i := 0; i < 200; i++ {
		va, vb := a.Velocity, b.Velocity
		w.Step(dt)
		if a.Bounced && b.Bounced && !collided {
			collided = true
			require.Equal(t, vb, a.Velocity, "a must take b's pre-collision velocity")
			require.Equal(t, va, b.Velocity, "b must take a's pre-collision velocity")
			// Kinetic energy (unit masses) is exactly preserved by a swap.
			require.Equal(t, va.Dot(va)+vb.Dot(vb), a.Velocity.Dot(a.Velocity)+b.Velocity.Dot(b.Velocity))
			// The next tick they are separating: no second collision.
			w.Step(dt)
			require.False(t, a.Bounced)
			require.False(t, b.Bounced)
			break
		}
	}
	require.True(t, collided, "balls never collided")
}

func TestBounceIsSymmetric(t *testing.T) {
	mk := func() (*Body, *Body) {
		a := NewBody(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 0.5)
		b := NewBody(mgl32.Vec3{0.8, 1, 0}, mgl32.Vec3{-1, 0, 0}, 0.5)
		return a, b
	}

	a1, b1 := mk()
	require.True(t, bounceBodies(a1, b1))
	require.True(t, a1.Bounced)
	require.True(t, b1.Bounced)

	a2, b2 := mk()
	require.True(t, bounceBodies(b2, a2), "collision must be order-independent")
	require.Equal(t, a1.Velocity, a2.Velocity)
	require.Equal(t, b1.Velocity, b2.Velocity)
}

func TestSeparatingOverlapDoesNotBounce(t *testing.T) {
	a := NewBody(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-1, 0, 0}, 0.5)
	b := NewBody(mgl32.Vec3{0.8, 1, 0}, mgl32.Vec3{1, 0, 0}, 0.5)
	require.False(t, bounceBodies(a, b))
	require.Equal(t, mgl32.Vec3{-1, 0, 0}, a.Velocity)
	require.False(t, a.Bounced)
}

// A body that bounced off a wall in pass 1 is immune to pair collisions for
// the remainder of the same tick.
func TestWallBounceGrantsTickImmunity(t *testing.T) {
	w := NewWorld(testBounds(), 0)
	// a crosses the +x wall this tick; b overlaps a and is closing.
	a := NewBody(mgl32.Vec3{11.9, 1, 0}, mgl32.Vec3{3, 0, 0}, 0.3)
	b := NewBody(mgl32.Vec3{11.4, 1, 0}, mgl32.Vec3{4, 0, 0}, 0.3)
	w.AddBody(a)
	w.AddBody(b)

	vb := b.Velocity
	w.Step(0.01)
	require.True(t, a.Bounced, "a must have reflected off the wall")
	require.Equal(t, vb, b.Velocity, "b must be untouched while a is immune")
}

func TestBoundsClampPullsBodyInside(t *testing.T) {
	w := NewWorld(testBounds(), 0)
	b := NewBody(mgl32.Vec3{12.5, 1, 0}, mgl32.Vec3{1, 0, 0}, 0.4)
	require.True(t, w.bounceBounds(b))
	require.Equal(t, float32(12-0.4), b.Position.X())
	require.Equal(t, float32(-1), b.Velocity.X())
	require.True(t, b.Bounced)
}

func TestCornerHitReflectsBothAxes(t *testing.T) {
	w := NewWorld(testBounds(), 0)
	b := NewBody(mgl32.Vec3{12.2, 1, 12.2}, mgl32.Vec3{1, 0, 2}, 0.4)
	require.True(t, w.bounceBounds(b))
	require.Equal(t, float32(-1), b.Velocity.X())
	require.Equal(t, float32(-2), b.Velocity.Z())
}
