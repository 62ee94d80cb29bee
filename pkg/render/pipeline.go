package render

import (
	"github.com/taigrr/tinyrender/pkg/math3d"
)

// MeshSource is the read-only view of a triangle mesh the pipeline consumes.
// Face indices must be valid vertex indices; the pipeline does not check.
type MeshSource interface {
	VertexCount() int
	Vertex(i int) math3d.Vec3
	FaceCount() int
	Face(i int) [3]int
}

// FaceColorSource is optionally implemented by meshes that carry a base
// color per face (for example from glTF materials).
type FaceColorSource interface {
	FaceColor(i int) (Color, bool)
}

// DrawStats counts what happened to the faces of a pass.
type DrawStats struct {
	Faces      int // Faces visited
	Drawn      int // Faces shaded and handed to the triangle filler
	Culled     int // Faces turned away from the light
	Degenerate int // Visible faces with zero screen height
	Pixels     int // Pixel writes issued by the triangle filler
}

// Rasterizer drives meshes through projection, shading and scan filling into
// a single target. A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	target Target
	Stats  DrawStats // Accumulated since the last ResetStats
}

// NewRasterizer creates a rasterizer drawing into t.
func NewRasterizer(t Target) *Rasterizer {
	return &Rasterizer{target: t}
}

// Target returns the target the rasterizer draws into.
func (r *Rasterizer) Target() Target {
	return r.target
}

// ResetStats clears the accumulated statistics.
func (r *Rasterizer) ResetStats() {
	r.Stats = DrawStats{}
}

// Project maps a world position with x and y nominally in [-1, 1] onto the
// target's pixel grid: ((x+1)·W/2, (y+1)·H/2), truncated. z is ignored and no
// fitting is performed, so meshes must already be normalized.
func (r *Rasterizer) Project(v math3d.Vec3) math3d.Vec2i {
	return project(v, r.target.Width(), r.target.Height())
}

func project(v math3d.Vec3, width, height int) math3d.Vec2i {
	return math3d.V2i(
		int((v.X+1)*float64(width)/2),
		int((v.Y+1)*float64(height)/2),
	)
}

// DrawMeshFlat renders every face of mesh in mesh order with flat shading
// under a directional light. Faces with non-positive intensity are culled.
// There is no depth test: later faces overwrite earlier ones.
//
// When mesh implements FaceColorSource, a face's own color replaces base.
func (r *Rasterizer) DrawMeshFlat(mesh MeshSource, base Color, lightDir math3d.Vec3) {
	if r.target.Width() == 0 || r.target.Height() == 0 {
		Logger().Warn("flat pass on empty target", "faces", mesh.FaceCount())
	}

	colors, _ := mesh.(FaceColorSource)
	pass := DrawStats{}

	for i := 0; i < mesh.FaceCount(); i++ {
		pass.Faces++
		face := mesh.Face(i)

		var world [3]math3d.Vec3
		var screen [3]math3d.Vec2i
		for j := range 3 {
			world[j] = mesh.Vertex(face[j])
			screen[j] = r.Project(world[j])
		}

		faceBase := base
		if colors != nil {
			if c, ok := colors.FaceColor(i); ok {
				faceBase = c
			}
		}

		lit, visible := ShadeFace(world[0], world[1], world[2], lightDir, faceBase)
		if !visible {
			pass.Culled++
			continue
		}
		if screen[0].Y == screen[1].Y && screen[0].Y == screen[2].Y {
			pass.Degenerate++
			continue
		}

		pass.Drawn++
		pass.Pixels += DrawTriangle(r.target, screen[0], screen[1], screen[2], lit)
	}

	r.Stats.add(pass)
	Logger().Debug("flat pass",
		"faces", pass.Faces,
		"drawn", pass.Drawn,
		"culled", pass.Culled,
		"degenerate", pass.Degenerate,
		"pixels", pass.Pixels,
	)
}

func (s *DrawStats) add(o DrawStats) {
	s.Faces += o.Faces
	s.Drawn += o.Drawn
	s.Culled += o.Culled
	s.Degenerate += o.Degenerate
	s.Pixels += o.Pixels
}
