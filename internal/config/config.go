package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds everything the demo reads at startup. Values not present in
// the file keep their defaults, so a partial config is fine.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Arena   ArenaConfig   `toml:"arena"`
	Physics PhysicsConfig `toml:"physics"`
	Balls   BallsConfig   `toml:"balls"`
	Render  RenderConfig  `toml:"render"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// ArenaConfig is the static axis-aligned box the balls bounce inside.
// The default top is effectively open (MaxY is huge) so balls can be
// launched upward without ceiling contact.
type ArenaConfig struct {
	MinX float32 `toml:"min_x"`
	MaxX float32 `toml:"max_x"`
	MinY float32 `toml:"min_y"`
	MaxY float32 `toml:"max_y"`
	MinZ float32 `toml:"min_z"`
	MaxZ float32 `toml:"max_z"`
}

type PhysicsConfig struct {
	TicksPerSecond float64 `toml:"ticks_per_second"`
	Gravity        float32 `toml:"gravity"`
	// MaxCatchUp bounds how far behind the fixed-tick clock may fall before
	// it resynchronizes instead of replaying ticks (seconds).
	MaxCatchUp float64 `toml:"max_catch_up"`
}

type BallsConfig struct {
	Count  int     `toml:"count"`
	Radius float32 `toml:"radius"`
	// Seed drives the initial positions, velocities and colors. Fixed so
	// repeated runs produce the same scene.
	Seed int64 `toml:"seed"`
}

type RenderConfig struct {
	// CaptureSize is the square edge of each reflection cubemap face.
	CaptureSize int32   `toml:"capture_size"`
	FarPlane    float32 `toml:"far_plane"`
	FOVDegrees  float32 `toml:"fov_degrees"`
	// SkyboxDir holds six face images (px nx py ny pz nz .png). Empty means
	// the procedural gradient sky.
	SkyboxDir string `toml:"skybox_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path and overlays it on the defaults. A missing file is not an
// error: the demo is meant to run out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration: a 12×12 open-topped arena,
// 600 physics ticks per second and gravity 4.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "bouncy",
			VSync:  true,
		},
		Arena: ArenaConfig{
			MinX: -12, MaxX: 12,
			MinY: 0, MaxY: 1e30,
			MinZ: -12, MaxZ: 12,
		},
		Physics: PhysicsConfig{
			TicksPerSecond: 600,
			Gravity:        4,
			MaxCatchUp:     0.25,
		},
		Balls: BallsConfig{
			Count:  8,
			Radius: 0.4,
			Seed:   1,
		},
		Render: RenderConfig{
			CaptureSize: 512,
			FarPlane:    100,
			FOVDegrees:  60,
			SkyboxDir:   "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
