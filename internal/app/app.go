package app

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/jelloface/bouncy/internal/assets"
	"github.com/jelloface/bouncy/internal/config"
	"github.com/jelloface/bouncy/internal/debug"
	"github.com/jelloface/bouncy/internal/physics"
	"github.com/jelloface/bouncy/internal/render"
)

// Default gradient sky colors used when no skybox directory is configured.
var (
	skyZenith  = color.RGBA{R: 25, G: 60, B: 160, A: 255}
	skyHorizon = color.RGBA{R: 170, G: 200, B: 230, A: 255}
	skyGround  = color.RGBA{R: 60, G: 55, B: 50, A: 255}
)

const gradientSkySize = 256

// App wires the window, physics world, render pipeline and camera together
// and runs the frame loop. Everything is single-threaded: physics, the
// per-ball capture passes and the screen draw run strictly in sequence each
// frame.
type App struct {
	cfg   *config.Config
	log   *zap.Logger
	win   *glfw.Window
	world *physics.World
	scene *render.Scene
	rend  *render.Renderer
	cam   *Camera
	clock *Clock
	stats *debug.Stats
}

// New builds the whole application. Any failure here (context, shaders,
// assets, capture sets) is a setup defect and fatal to the caller.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	win, err := newWindow(cfg.Window)
	if err != nil {
		return nil, err
	}

	var sky *assets.Skybox
	if dir := cfg.Render.SkyboxDir; dir != "" {
		sky, err = assets.LoadSkybox(dir)
		if err != nil {
			return nil, err
		}
		log.Info("skybox loaded", zap.String("dir", dir), zap.Int("size", sky.Size))
	} else {
		sky = assets.GradientSky(gradientSkySize, skyZenith, skyHorizon, skyGround)
	}

	rend, err := render.NewRenderer(sky, cfg.Render.FarPlane)
	if err != nil {
		return nil, err
	}

	bounds := physics.Bounds{
		Min: [3]float32{cfg.Arena.MinX, cfg.Arena.MinY, cfg.Arena.MinZ},
		Max: [3]float32{cfg.Arena.MaxX, cfg.Arena.MaxY, cfg.Arena.MaxZ},
	}
	world := physics.NewWorld(bounds, cfg.Physics.Gravity)
	scene := render.NewScene(render.NewPool(cfg.Render.CaptureSize))

	a := &App{
		cfg:   cfg,
		log:   log,
		win:   win,
		world: world,
		scene: scene,
		rend:  rend,
		cam:   NewCamera(mgl32.Vec3{0, 6, 20}),
		clock: NewClock(cfg.Physics.TicksPerSecond, cfg.Physics.MaxCatchUp),
		stats: debug.NewStats(log),
	}
	if err := a.seedBalls(); err != nil {
		return nil, err
	}
	log.Info("scene ready",
		zap.Int("balls", len(scene.Balls)),
		zap.Int32("capture_size", cfg.Render.CaptureSize))
	return a, nil
}

// seedBalls populates the arena with the configured number of balls at
// deterministic pseudo-random positions, velocities and colors.
func (a *App) seedBalls() error {
	rng := rand.New(rand.NewSource(a.cfg.Balls.Seed))
	radius := a.cfg.Balls.Radius
	b := a.world.Bounds

	span := func(min, max float32) float32 {
		return min + (max-min)*rng.Float32()
	}
	for i := 0; i < a.cfg.Balls.Count; i++ {
		pos := mgl32.Vec3{
			span(b.Min[0]+radius, b.Max[0]-radius),
			span(b.Min[1]+radius, b.Min[1]+8),
			span(b.Min[2]+radius, b.Max[2]-radius),
		}
		vel := mgl32.Vec3{
			span(-3, 3),
			span(0, 5),
			span(-3, 3),
		}
		col := mgl32.Vec3{
			span(0.2, 1),
			span(0.2, 1),
			span(0.2, 1),
		}
		body := physics.NewBody(pos, vel, radius)
		a.world.AddBody(body)
		if _, err := a.scene.AddBall(body, col); err != nil {
			return fmt.Errorf("seed ball %d: %w", i, err)
		}
	}
	return nil
}

// Run drives the frame loop until the window closes or escape is pressed.
// Per frame: input, zero-or-more fixed physics ticks, one capture pass per
// ball, then the screen draw.
func (a *App) Run() error {
	defer glfw.Terminate()
	defer a.rend.Destroy()
	defer a.scene.Close()

	last := glfw.GetTime()
	for !a.win.ShouldClose() {
		now := glfw.GetTime()
		frame := now - last
		last = now

		glfw.PollEvents()
		if a.win.GetKey(glfw.KeyEscape) == glfw.Press {
			a.win.SetShouldClose(true)
		}
		a.cam.Update(a.win, float32(frame))

		ticks := a.clock.Advance(frame)
		for i := 0; i < ticks; i++ {
			a.world.Step(a.clock.DT())
		}

		// Refresh every ball's reflection before the frame that samples it.
		for _, b := range a.scene.Balls {
			a.rend.CaptureBall(a.scene, b)
		}

		w, h := a.win.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		proj := mgl32.Perspective(
			mgl32.DegToRad(a.cfg.Render.FOVDegrees),
			float32(w)/float32(h), 0.1, a.rend.FarPlane())
		a.rend.DrawScene(a.cam.View(), proj, a.cam.Position, a.scene, nil)
		a.win.SwapBuffers()

		a.stats.Frame(ticks, a.world.Bodies)
	}
	a.log.Info("shutting down")
	return nil
}
