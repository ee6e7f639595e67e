package physics

// World holds a set of bodies inside a fixed axis-aligned box and advances
// them with a fixed-timestep step: wall reflection, forward Euler gravity
// integration, then pairwise velocity-swap collisions.
//
// The physics is deliberately simple rather than rigorous. Wall contact is
// checked against the pre-integration position, a body that has bounced once
// is immune for the rest of the tick, and ball-ball collisions swap the two
// velocity vectors outright (exact only for equal masses). These choices keep
// each tick cheap and reproducible and are part of the contract, not bugs to
// fix.
type World struct {
	Bounds  Bounds
	Gravity float32
	Bodies  []*Body
}

// Bounds is the arena box: Min and Max per axis (0=X, 1=Y, 2=Z).
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// NewWorld returns a world with the given bounds and gravity and no bodies.
func NewWorld(bounds Bounds, gravity float32) *World {
	return &World{
		Bounds:  bounds,
		Gravity: gravity,
	}
}

// AddBody appends a body to the world. Order is irrelevant to the outcome of
// a tick except for which of several simultaneous pair collisions wins.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Step advances every body by dt seconds.
//
// Pass 1 clears the per-tick bounce flags, reflects bodies off the arena
// walls, then integrates gravity and position. Pass 2 resolves each unordered
// pair of bodies that overlap and are closing, skipping any body already
// flagged this tick.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		b.Bounced = false
	}
	for _, b := range w.Bodies {
		w.bounceBounds(b)
		b.Velocity[1] -= w.Gravity * dt
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
	}
	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			a, b := w.Bodies[i], w.Bodies[j]
			if a.Bounced || b.Bounced {
				continue
			}
			bounceBodies(a, b)
		}
	}
}

// bounceBounds reflects b off any arena face its radius-extended position has
// crossed, but only when the velocity component still points outward, so a
// body already heading back in is left alone. The crossed component is
// negated and the position clamped to the face minus the radius. Each axis is
// handled independently; a corner hit reflects on all crossed axes in the
// same tick. Sets the bounce flag and reports whether anything was hit.
func (w *World) bounceBounds(b *Body) bool {
	hit := false
	for axis := 0; axis < 3; axis++ {
		if b.Position[axis]+b.Radius > w.Bounds.Max[axis] && b.Velocity[axis] > 0 {
			b.Velocity[axis] = -b.Velocity[axis]
			b.Position[axis] = w.Bounds.Max[axis] - b.Radius
			hit = true
		}
		if b.Position[axis]-b.Radius < w.Bounds.Min[axis] && b.Velocity[axis] < 0 {
			b.Velocity[axis] = -b.Velocity[axis]
			b.Position[axis] = w.Bounds.Min[axis] + b.Radius
			hit = true
		}
	}
	if hit {
		b.Bounced = true
	}
	return hit
}

// bounceBodies resolves one potential collision between a and b. They collide
// when their centers are closer than the sum of the radii and they are moving
// toward each other; an overlapping pair that is already separating is left
// alone so it cannot be knocked back onto a collision course. On collision
// the two velocity vectors are swapped exactly and both bounce flags set.
// Reports whether a collision happened.
func bounceBodies(a, b *Body) bool {
	disp := b.Position.Sub(a.Position)
	distSq := disp.Dot(disp)
	radii := a.Radius + b.Radius
	if distSq >= radii*radii {
		return false
	}
	if disp.Dot(a.Velocity.Sub(b.Velocity)) <= 0 {
		return false
	}
	a.Velocity, b.Velocity = b.Velocity, a.Velocity
	a.Bounced = true
	b.Bounced = true
	return true
}
