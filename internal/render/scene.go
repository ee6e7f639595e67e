package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/jelloface/bouncy/internal/physics"
)

// Ball pairs a physics body with its color and its exclusively-owned capture
// set. The set is acquired from the scene's pool at construction and returned
// on removal; the ball never outlives it.
type Ball struct {
	Body    *physics.Body
	Color   mgl32.Vec3
	capture *CaptureSet
}

// Scene is the collection of live balls plus the pool their capture sets come
// from. The pool is injected so independent scenes (and tests) get
// independent pools.
type Scene struct {
	Balls []*Ball
	pool  *Pool
}

// NewScene returns an empty scene drawing capture sets from pool.
func NewScene(pool *Pool) *Scene {
	return &Scene{pool: pool}
}

// AddBall creates a ball for body, acquiring a capture set from the pool.
func (s *Scene) AddBall(body *physics.Body, color mgl32.Vec3) (*Ball, error) {
	set, err := s.pool.Acquire()
	if err != nil {
		return nil, fmt.Errorf("add ball: %w", err)
	}
	b := &Ball{Body: body, Color: color, capture: set}
	s.Balls = append(s.Balls, b)
	return b, nil
}

// RemoveBall retires b, returning its capture set to the pool. Removing a
// ball that is not in the scene is a no-op.
func (s *Scene) RemoveBall(b *Ball) {
	for i, x := range s.Balls {
		if x == b {
			s.Balls = append(s.Balls[:i], s.Balls[i+1:]...)
			s.pool.Release(b.capture)
			b.capture = nil
			return
		}
	}
}

// Close retires every ball, releasing all capture sets back to the pool. Used
// on teardown so the sets stay reusable if another scene shares the pool.
func (s *Scene) Close() {
	for _, b := range s.Balls {
		s.pool.Release(b.capture)
		b.capture = nil
	}
	s.Balls = nil
}
