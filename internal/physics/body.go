package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Body is one bouncing sphere: position and velocity are mutated only by
// World.Step, radius is fixed after construction.
//
// Bounced is a transient per-tick flag. Step resets it at the start of every
// tick and both collision routines set it; once set, the body takes no
// further collision response that tick.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Radius   float32
	Bounced  bool
}

// NewBody returns a body with the given position, velocity and radius.
// Radius must be positive; zero or negative falls back to 1.
func NewBody(position, velocity mgl32.Vec3, radius float32) *Body {
	if radius <= 0 {
		radius = 1
	}
	return &Body{
		Position: position,
		Velocity: velocity,
		Radius:   radius,
	}
}
