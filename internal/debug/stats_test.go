package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/jelloface/bouncy/internal/physics"
)

func TestMeanSpeed(t *testing.T) {
	bodies := []physics.Body{
		{Velocity: mgl32.Vec3{3, 0, 4}}, // 5
		{Velocity: mgl32.Vec3{0, 1, 0}}, // 1
	}
	require.InDelta(t, 3, meanSpeed(bodies), 1e-6)
}

func TestMeanSpeedEmpty(t *testing.T) {
	require.Equal(t, float32(0), meanSpeed(nil))
}
