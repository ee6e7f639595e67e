package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/clone"
)

// Skybox holds the six background cubemap faces, in GL face order
// (+x, -x, +y, -y, +z, -z), all square and all the same size.
type Skybox struct {
	Faces [6]*image.RGBA
	Size  int
}

// faceNames are the files expected inside a skybox directory.
var faceNames = [6]string{"px.png", "nx.png", "py.png", "ny.png", "pz.png", "nz.png"}

// LoadSkybox reads the six face images from dir. Every face must decode, be
// square, and match the first face's size; any violation is an error naming
// the offending file. Rows are kept in image order: cubemap faces are
// addressed top-row-down, unlike 2D textures, so no vertical flip.
func LoadSkybox(dir string) (*Skybox, error) {
	sb := &Skybox{}
	for i, name := range faceNames {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("skybox face %s: %w", path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("skybox face %s: %w", path, err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != bounds.Dy() {
			return nil, fmt.Errorf("skybox face %s: must be square, got %dx%d",
				path, bounds.Dx(), bounds.Dy())
		}
		if i == 0 {
			sb.Size = bounds.Dx()
		} else if bounds.Dx() != sb.Size {
			return nil, fmt.Errorf("skybox face %s: size %d does not match first face size %d",
				path, bounds.Dx(), sb.Size)
		}
		sb.Faces[i] = clone.AsRGBA(img)
	}
	return sb, nil
}
