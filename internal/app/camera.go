package app

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	moveSpeed   = 8.0   // units per second
	lookSpeed   = 0.002 // radians per mouse pixel
	pitchLimit  = 1.55  // just short of straight up/down
	defaultYaw  = -math32.Pi / 2
)

// Camera is a free-fly viewpoint: WASD to move in the view plane, mouse to
// look, space/left-shift for vertical motion. The cursor is captured by the
// window, so mouse deltas arrive continuously.
type Camera struct {
	Position mgl32.Vec3
	yaw      float32
	pitch    float32

	lastX, lastY float64
	tracking     bool
}

// NewCamera returns a camera at position looking toward -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	return &Camera{Position: position, yaw: defaultYaw}
}

// Update applies one frame of input.
func (c *Camera) Update(win *glfw.Window, dt float32) {
	x, y := win.GetCursorPos()
	if !c.tracking {
		// First frame: seed the cursor position so the camera doesn't jump.
		c.lastX, c.lastY = x, y
		c.tracking = true
	}
	c.yaw += float32(x-c.lastX) * lookSpeed
	c.pitch -= float32(y-c.lastY) * lookSpeed
	c.lastX, c.lastY = x, y
	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}

	front := c.front()
	right := front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	step := moveSpeed * dt

	if win.GetKey(glfw.KeyW) == glfw.Press {
		c.Position = c.Position.Add(front.Mul(step))
	}
	if win.GetKey(glfw.KeyS) == glfw.Press {
		c.Position = c.Position.Sub(front.Mul(step))
	}
	if win.GetKey(glfw.KeyD) == glfw.Press {
		c.Position = c.Position.Add(right.Mul(step))
	}
	if win.GetKey(glfw.KeyA) == glfw.Press {
		c.Position = c.Position.Sub(right.Mul(step))
	}
	if win.GetKey(glfw.KeySpace) == glfw.Press {
		c.Position = c.Position.Add(mgl32.Vec3{0, step, 0})
	}
	if win.GetKey(glfw.KeyLeftShift) == glfw.Press {
		c.Position = c.Position.Sub(mgl32.Vec3{0, step, 0})
	}
}

func (c *Camera) front() mgl32.Vec3 {
	cosPitch := math32.Cos(c.pitch)
	return mgl32.Vec3{
		math32.Cos(c.yaw) * cosPitch,
		math32.Sin(c.pitch),
		math32.Sin(c.yaw) * cosPitch,
	}
}

// View returns the camera's view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front()), mgl32.Vec3{0, 1, 0})
}
