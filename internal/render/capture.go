package render

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Capture face indices, in OpenGL cubemap face order.
const (
	FacePlusX = iota
	FaceMinusX
	FacePlusY
	FaceMinusY
	FacePlusZ
	FaceMinusZ
	FaceCount
)

var faceDirs = [FaceCount]mgl32.Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// The usual up vector, -Y, is parallel to the view direction on the ±Y faces
// and would make the look-at basis degenerate, so those two faces use Z-axis
// ups instead. These are the standard cubemap capture conventions; changing
// any of them skews the reflection seams.
var faceUps = [FaceCount]mgl32.Vec3{
	{0, -1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
	{0, -1, 0}, {0, -1, 0},
}

// FaceDir returns the viewing direction of a capture face.
func FaceDir(face int) mgl32.Vec3 { return faceDirs[face] }

// FaceUp returns the up vector used for a capture face.
func FaceUp(face int) mgl32.Vec3 { return faceUps[face] }

// FaceView returns the view matrix looking out of origin through the given
// capture face.
func FaceView(origin mgl32.Vec3, face int) mgl32.Mat4 {
	return mgl32.LookAtV(origin, origin.Add(faceDirs[face]), faceUps[face])
}

// FaceProjection returns the capture projection: exactly 90° vertical field
// of view at aspect 1, so the six faces tile the full sphere of directions.
// The near plane sits just inside the ball's own surface so the ball cannot
// clip its surroundings out of its own reflection.
func FaceProjection(radius, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(90), 1, 0.1*radius, far)
}

// CaptureBall redraws the scene into all six faces of b's capture set, as
// seen from b's current position, with b itself skipped. Called once per ball
// per presented frame, after physics and before the screen draw, so every
// reflection is at most one frame stale. Leaves the default framebuffer
// bound; the caller restores its own viewport.
func (r *Renderer) CaptureBall(scene *Scene, b *Ball) {
	proj := FaceProjection(b.Body.Radius, r.farPlane)
	for face := 0; face < FaceCount; face++ {
		gl.BindFramebuffer(gl.FRAMEBUFFER, b.capture.FBOs[face])
		gl.Viewport(0, 0, b.capture.Size, b.capture.Size)
		view := FaceView(b.Body.Position, face)
		r.DrawScene(view, proj, b.Body.Position, scene, b)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}
