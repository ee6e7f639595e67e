package app

// Clock converts variable presentation frame time into a whole number of
// fixed physics ticks. Frames shorter than one tick yield zero ticks and the
// remainder accumulates; frames longer than several ticks replay them.
type Clock struct {
	dt     float64
	acc    float64
	maxLag float64
}

// NewClock returns a clock running at ticksPerSecond. maxLag bounds catch-up:
// when the accumulated debt exceeds it (a stall, a dragged window, a
// debugger), the clock resynchronizes to now and runs a single tick instead
// of replaying the backlog.
func NewClock(ticksPerSecond, maxLag float64) *Clock {
	return &Clock{
		dt:     1 / ticksPerSecond,
		maxLag: maxLag,
	}
}

// DT returns the fixed tick duration in seconds.
func (c *Clock) DT() float32 { return float32(c.dt) }

// Advance adds elapsed wall time and returns how many fixed ticks to run.
func (c *Clock) Advance(elapsed float64) int {
	c.acc += elapsed
	if c.acc > c.maxLag {
		c.acc = c.dt
	}
	n := 0
	for c.acc >= c.dt {
		c.acc -= c.dt
		n++
	}
	return n
}
