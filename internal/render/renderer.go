package render

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jelloface/bouncy/internal/assets"
)

// Core-to-shell radius ratio of a ball: the opaque reflective core sits at
// 0.707 of the full radius, the translucent rim shell at the full radius.
const coreRadiusRatio = 0.707

// reflectivity is the mirror share of a core fragment's color.
const reflectivity = 0.55

// Sphere mesh resolution.
const (
	sphereSectors = 36
	sphereRings   = 18
)

// Renderer owns all shared GL state: the two meshes, the three shader
// programs with their uniform locations, and the background cubemap. All
// initialization happens here, up front, so there is no hidden first-use
// state; construction requires a current GL context.
type Renderer struct {
	sphere mesh
	cube   mesh
	skyTex uint32

	ball ballProgram
	rim  rimProgram
	sky  skyProgram

	farPlane float32
}

type ballProgram struct {
	id                                           uint32
	view, proj, origin, radius, color, eye, refl int32
}

type rimProgram struct {
	id                                      uint32
	view, proj, origin, radius, color, eye int32
}

type skyProgram struct {
	id         uint32
	view, proj int32
}

// NewRenderer compiles the shader programs, uploads the sphere and skybox
// geometry, and uploads the background cubemap. farPlane is the scene draw
// distance, shared by the screen and capture projections.
func NewRenderer(sky *assets.Skybox, farPlane float32) (*Renderer, error) {
	r := &Renderer{farPlane: farPlane}

	prog, err := newProgram(ballVS, ballFS)
	if err != nil {
		return nil, fmt.Errorf("ball shader: %w", err)
	}
	r.ball = ballProgram{
		id:     prog,
		view:   uniform(prog, "view"),
		proj:   uniform(prog, "proj"),
		origin: uniform(prog, "origin"),
		radius: uniform(prog, "radius"),
		color:  uniform(prog, "color"),
		eye:    uniform(prog, "eye"),
		refl:   uniform(prog, "reflectivity"),
	}
	gl.UseProgram(prog)
	gl.Uniform1i(uniform(prog, "reflectionMap"), 0)

	prog, err = newProgram(ballVS, rimFS)
	if err != nil {
		return nil, fmt.Errorf("rim shader: %w", err)
	}
	r.rim = rimProgram{
		id:     prog,
		view:   uniform(prog, "view"),
		proj:   uniform(prog, "proj"),
		origin: uniform(prog, "origin"),
		radius: uniform(prog, "radius"),
		color:  uniform(prog, "color"),
		eye:    uniform(prog, "eye"),
	}

	prog, err = newProgram(skyVS, skyFS)
	if err != nil {
		return nil, fmt.Errorf("sky shader: %w", err)
	}
	r.sky = skyProgram{
		id:   prog,
		view: uniform(prog, "view"),
		proj: uniform(prog, "proj"),
	}
	gl.UseProgram(prog)
	gl.Uniform1i(uniform(prog, "sky"), 0)

	r.sphere = uploadMesh(sphereVertices(sphereSectors, sphereRings))
	r.cube = uploadMesh(cubeVertices())

	tex, err := uploadCubemap(sky)
	if err != nil {
		return nil, fmt.Errorf("skybox upload: %w", err)
	}
	r.skyTex = tex

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	if err := glErr("renderer init"); err != nil {
		return nil, err
	}
	return r, nil
}

// DrawScene draws the background and every ball except skip into whatever
// framebuffer is currently bound. eye is the viewpoint in world space (the
// camera for the screen pass, the captured ball's center for capture passes).
// Opaque core passes run first, then the translucent rim passes with depth
// writes off; rim draw order is not depth-sorted, an accepted approximation.
func (r *Renderer) DrawScene(view, proj mgl32.Mat4, eye mgl32.Vec3, scene *Scene, skip *Ball) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.drawSky(view, proj)

	balls := ballsToDraw(scene, skip)

	gl.UseProgram(r.ball.id)
	gl.UniformMatrix4fv(r.ball.view, 1, false, &view[0])
	gl.UniformMatrix4fv(r.ball.proj, 1, false, &proj[0])
	gl.Uniform3f(r.ball.eye, eye.X(), eye.Y(), eye.Z())
	gl.Uniform1f(r.ball.refl, reflectivity)
	for _, b := range balls {
		pos := b.Body.Position
		gl.Uniform3f(r.ball.origin, pos.X(), pos.Y(), pos.Z())
		gl.Uniform1f(r.ball.radius, b.Body.Radius*coreRadiusRatio)
		gl.Uniform3f(r.ball.color, b.Color.X(), b.Color.Y(), b.Color.Z())
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, b.capture.Cubemap)
		r.sphere.draw()
	}

	gl.UseProgram(r.rim.id)
	gl.UniformMatrix4fv(r.rim.view, 1, false, &view[0])
	gl.UniformMatrix4fv(r.rim.proj, 1, false, &proj[0])
	gl.Uniform3f(r.rim.eye, eye.X(), eye.Y(), eye.Z())
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	for _, b := range balls {
		pos := b.Body.Position
		gl.Uniform3f(r.rim.origin, pos.X(), pos.Y(), pos.Z())
		gl.Uniform1f(r.rim.radius, b.Body.Radius)
		gl.Uniform3f(r.rim.color, b.Color.X(), b.Color.Y(), b.Color.Z())
		r.sphere.draw()
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// ballsToDraw returns the balls a pass renders: everything in the scene
// except skip. Capture passes pass the captured ball, so a ball never draws
// into its own reflection; the screen pass passes nil.
func ballsToDraw(scene *Scene, skip *Ball) []*Ball {
	balls := make([]*Ball, 0, len(scene.Balls))
	for _, b := range scene.Balls {
		if b == skip {
			continue
		}
		balls = append(balls, b)
	}
	return balls
}

// drawSky draws the background cube around the viewer. The view translation
// is stripped so the sky never parallaxes, and depth writes are off so all
// foreground geometry overdraws it.
func (r *Renderer) drawSky(view, proj mgl32.Mat4) {
	skyView := view.Mat3().Mat4()

	gl.UseProgram(r.sky.id)
	gl.UniformMatrix4fv(r.sky.view, 1, false, &skyView[0])
	gl.UniformMatrix4fv(r.sky.proj, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.skyTex)
	gl.DepthMask(false)
	r.cube.draw()
	gl.DepthMask(true)
}

// FarPlane returns the scene draw distance.
func (r *Renderer) FarPlane() float32 { return r.farPlane }

// Destroy releases the renderer's own GL resources. Capture sets are owned by
// the pool and are not touched here.
func (r *Renderer) Destroy() {
	r.sphere.destroy()
	r.cube.destroy()
	gl.DeleteTextures(1, &r.skyTex)
	gl.DeleteProgram(r.ball.id)
	gl.DeleteProgram(r.rim.id)
	gl.DeleteProgram(r.sky.id)
}

// uploadCubemap uploads the six face images as an immutable background
// cubemap.
func uploadCubemap(sky *assets.Skybox) (uint32, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	size := int32(sky.Size)
	for i, face := range sky.Faces {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA8,
			size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	if err := glErr("background cubemap"); err != nil {
		return 0, err
	}
	return tex, nil
}
