package models

import (
	"math"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// NewUVSphere builds a unit sphere centered at the origin from stacks
// latitude bands and slices longitude segments. Faces wind counter-clockwise
// when seen from outside, so the half facing +z is lit by a light along -z.
// stacks is raised to at least 2 and slices to at least 3.
func NewUVSphere(stacks, slices int) *Mesh {
	stacks = max(stacks, 2)
	slices = max(slices, 3)

	mesh := NewMesh("sphere")
	mesh.Vertices = append(mesh.Vertices, math3d.V3(0, 1, 0))
	for i := 1; i < stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		y, r := math.Cos(phi), math.Sin(phi)
		for j := range slices {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			mesh.Vertices = append(mesh.Vertices, math3d.V3(r*math.Sin(theta), y, r*math.Cos(theta)))
		}
	}
	bottom := len(mesh.Vertices)
	mesh.Vertices = append(mesh.Vertices, math3d.V3(0, -1, 0))

	ring := func(i, j int) int { return 1 + (i-1)*slices + j%slices }

	for j := range slices {
		mesh.AddFace(0, ring(1, j), ring(1, j+1))
	}
	for i := 1; i < stacks-1; i++ {
		for j := range slices {
			a0, a1 := ring(i, j), ring(i, j+1)
			b0, b1 := ring(i+1, j), ring(i+1, j+1)
			mesh.AddFace(a0, b0, b1)
			mesh.AddFace(a0, b1, a1)
		}
	}
	for j := range slices {
		mesh.AddFace(ring(stacks-1, j), bottom, ring(stacks-1, j+1))
	}

	mesh.CalculateBounds()
	return mesh
}
