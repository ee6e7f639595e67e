package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// mesh is an uploaded position-only triangle mesh. Both meshes in this demo
// (unit sphere, unit cube) carry a single vec3 attribute at location 0.
type mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

func uploadMesh(verts []float32, indices []uint16) mesh {
	var m mesh
	m.count = int32(len(indices))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

func (m mesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

func (m *mesh) destroy() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

// sphereVertices builds a unit UV sphere: `rings-1` latitude rings of
// `sectors` vertices each, plus the two poles. Each vertex is its own normal.
// Vertex count stays well under the uint16 index limit at the default
// resolution (36×18).
func sphereVertices(sectors, rings int) ([]float32, []uint16) {
	ringCount := rings - 1
	verts := make([]float32, 0, (ringCount*sectors+2)*3)

	for h := 1; h < rings; h++ {
		phi := math32.Pi*float32(h)/float32(rings) - math32.Pi/2
		cosPhi, sinPhi := math32.Cos(phi), math32.Sin(phi)
		for w := 0; w < sectors; w++ {
			theta := 2 * math32.Pi * float32(w) / float32(sectors)
			verts = append(verts,
				math32.Cos(theta)*cosPhi, sinPhi, math32.Sin(theta)*cosPhi)
		}
	}
	bottom := uint16(ringCount * sectors)
	top := bottom + 1
	verts = append(verts, 0, -1, 0)
	verts = append(verts, 0, 1, 0)

	id := func(r, w int) uint16 { return uint16(r*sectors + w%sectors) }

	var indices []uint16
	for r := 0; r < ringCount-1; r++ {
		for w := 0; w < sectors; w++ {
			a, b := id(r, w), id(r, w+1)
			c, d := id(r+1, w+1), id(r+1, w)
			indices = append(indices, a, b, c, a, c, d)
		}
	}
	for w := 0; w < sectors; w++ {
		indices = append(indices, bottom, id(0, w+1), id(0, w))
		indices = append(indices, top, id(ringCount-1, w), id(ringCount-1, w+1))
	}
	return verts, indices
}

// cubeVertices builds a unit cube for the skybox. Position doubles as the
// sampling direction, so eight corners are enough.
func cubeVertices() ([]float32, []uint16) {
	verts := []float32{
		-1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1, -1,
		-1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1,
	}
	indices := []uint16{
		0, 1, 2, 0, 2, 3,
		4, 6, 5, 4, 7, 6,
		0, 3, 7, 0, 7, 4,
		1, 5, 6, 1, 6, 2,
		3, 2, 6, 3, 6, 7,
		0, 4, 5, 0, 5, 1,
	}
	return verts, indices
}
