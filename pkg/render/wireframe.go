package render

import (
	"github.com/taigrr/tinyrender/pkg/math3d"
)

// DrawMeshWireframe draws the three edges of every face with the line
// rasterizer. No shading or culling is applied.
func (r *Rasterizer) DrawMeshWireframe(mesh MeshSource, c Color) {
	pass := DrawStats{}
	for i := 0; i < mesh.FaceCount(); i++ {
		pass.Faces++
		face := mesh.Face(i)
		for j := range 3 {
			a := r.Project(mesh.Vertex(face[j]))
			b := r.Project(mesh.Vertex(face[(j+1)%3]))
			DrawLine(r.target, a, b, c)
		}
		pass.Drawn++
	}
	r.Stats.add(pass)
	Logger().Debug("wireframe pass", "faces", pass.Faces)
}

// DrawAxes draws the screen-space X and Y axes through the projected
// origin, red for X and green for Y.
func (r *Rasterizer) DrawAxes() {
	o := r.Project(math3d.Zero3())
	w, h := r.target.Width(), r.target.Height()
	DrawLine(r.target, math3d.V2i(0, o.Y), math3d.V2i(w-1, o.Y), ColorRed)
	DrawLine(r.target, math3d.V2i(o.X, 0), math3d.V2i(o.X, h-1), ColorGreen)
}
