package render

import "github.com/taigrr/tinyrender/pkg/math3d"

// recorder is a Target that remembers every write in order.
type recorder struct {
	w, h   int
	order  []math3d.Vec2i
	pixels map[math3d.Vec2i]Color
	oob    int
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h, pixels: make(map[math3d.Vec2i]Color)}
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

func (r *recorder) Set(x, y int, c Color) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		r.oob++
	}
	p := math3d.V2i(x, y)
	r.order = append(r.order, p)
	r.pixels[p] = c
}

// testMesh implements MeshSource over plain slices.
type testMesh struct {
	verts []math3d.Vec3
	faces [][3]int
}

func (m *testMesh) VertexCount() int         { return len(m.verts) }
func (m *testMesh) Vertex(i int) math3d.Vec3 { return m.verts[i] }
func (m *testMesh) FaceCount() int           { return len(m.faces) }
func (m *testMesh) Face(i int) [3]int        { return m.faces[i] }

// coloredMesh adds per-face colors to testMesh.
type coloredMesh struct {
	testMesh
	colors map[int]Color
}

func (m *coloredMesh) FaceColor(i int) (Color, bool) {
	c, ok := m.colors[i]
	return c, ok
}

// singleFace returns a one-triangle mesh with the given vertices.
func singleFace(v0, v1, v2 math3d.Vec3) *testMesh {
	return &testMesh{
		verts: []math3d.Vec3{v0, v1, v2},
		faces: [][3]int{{0, 1, 2}},
	}
}
