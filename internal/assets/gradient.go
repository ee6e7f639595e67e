package assets

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// GradientSky builds a procedural sky cubemap so the demo runs without any
// asset files: zenith color straight up, ground color straight down, horizon
// in between. Per-pixel directions follow the GL cubemap addressing
// convention, so the gradient is seamless across face edges.
func GradientSky(size int, zenith, horizon, ground color.RGBA) *Skybox {
	sb := &Skybox{Size: size}
	for face := 0; face < 6; face++ {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				d := faceDirection(face, x, y, size)
				img.SetRGBA(x, y, skyColor(d[1], zenith, horizon, ground))
			}
		}
		sb.Faces[face] = img
	}
	return sb
}

// faceDirection maps a pixel on a cubemap face to its normalized world-space
// sampling direction.
func faceDirection(face, x, y, size int) [3]float32 {
	// s,t in [-1,1], pixel centers.
	s := 2*(float32(x)+0.5)/float32(size) - 1
	t := 2*(float32(y)+0.5)/float32(size) - 1

	var d [3]float32
	switch face {
	case 0: // +x
		d = [3]float32{1, -t, -s}
	case 1: // -x
		d = [3]float32{-1, -t, s}
	case 2: // +y
		d = [3]float32{s, 1, t}
	case 3: // -y
		d = [3]float32{s, -1, -t}
	case 4: // +z
		d = [3]float32{s, -t, 1}
	default: // -z
		d = [3]float32{-s, -t, -1}
	}
	n := math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	d[0] /= n
	d[1] /= n
	d[2] /= n
	return d
}

// skyColor blends between horizon and zenith above the horizon, horizon and
// ground below it, by the direction's vertical component.
func skyColor(dy float32, zenith, horizon, ground color.RGBA) color.RGBA {
	if dy >= 0 {
		return lerpRGBA(horizon, zenith, dy)
	}
	return lerpRGBA(horizon, ground, -dy)
}

func lerpRGBA(a, b color.RGBA, t float32) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 255,
	}
}
