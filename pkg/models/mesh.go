// Package models provides triangle mesh loading and representation for
// tinyrender.
package models

import (
	"image/color"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// Mesh is a triangle mesh: vertex positions, faces indexing into them and
// optional materials.
type Mesh struct {
	Name      string
	Vertices  []math3d.Vec3
	Faces     []Face
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is the subset of a glTF PBR material the flat shader uses.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
}

// Color converts the base color to 8-bit RGBA.
func (m Material) Color() color.RGBA {
	return color.RGBA{
		R: unitToByte(m.BaseColor[0]),
		G: unitToByte(m.BaseColor[1]),
		B: unitToByte(m.BaseColor[2]),
		A: unitToByte(m.BaseColor[3]),
	}
}

func unitToByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddFace appends a face without a material.
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}, Material: -1})
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Face returns the vertex indices for face i.
func (m *Mesh) Face(i int) [3]int {
	return m.Faces[i].V
}

// FaceMaterial returns the material index for face i.
// Returns -1 if no material assigned.
func (m *Mesh) FaceMaterial(i int) int {
	return m.Faces[i].Material
}

// FaceColor returns the base color of the material assigned to face i.
// It reports false for faces without a material.
func (m *Mesh) FaceColor(i int) (color.RGBA, bool) {
	mat := m.Material(m.Faces[i].Material)
	if mat == nil {
		return color.RGBA{}, false
	}
	return mat.Color(), true
}

// Material returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) Material(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// MaterialCount returns the number of materials.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// FitUnitCube centers the mesh at the origin and scales it uniformly so its
// largest extent spans [-1, 1]. A mesh with zero extent is only centered.
func (m *Mesh) FitUnitCube() {
	m.CalculateBounds()
	size := m.Size()
	extent := max(size.X, size.Y, size.Z)

	mat := math3d.Translate(m.Center().Negate())
	if extent > 0 {
		mat = math3d.ScaleUniform(2 / extent).Mul(mat)
	}
	m.Transform(mat)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Materials: make([]Material, len(m.Materials)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Materials, m.Materials)
	return clone
}

// Validate reports the first face that references a vertex outside the mesh.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, v := range f.V {
			if v < 0 || v >= n {
				return &IndexError{Face: i, Index: v, Vertices: n}
			}
		}
	}
	return nil
}
