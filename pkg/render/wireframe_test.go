package render

import (
	"testing"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

func TestDrawMeshWireframe(t *testing.T) {
	fb := NewFramebuffer(101, 101)
	r := NewRasterizer(fb)
	// Winding that flat shading would cull; wireframe ignores it.
	mesh := singleFace(math3d.V3(-1, -1, 0), math3d.V3(0, 1, 0), math3d.V3(1, -1, 0))

	r.DrawMeshWireframe(mesh, ColorGreen)

	if r.Stats.Faces != 1 || r.Stats.Culled != 0 {
		t.Errorf("stats = %+v", r.Stats)
	}
	// Projected corners: (0,0), (50,101), (101,0).
	for _, p := range []math3d.Vec2i{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}, {X: 25, Y: 50}} {
		if got := fb.Get(p.X, p.Y); got != ColorGreen {
			t.Errorf("edge pixel %v = %v, want green", p, got)
		}
	}
	if got := fb.Get(50, 30); got != (Color{}) {
		t.Errorf("interior pixel = %v, want untouched", got)
	}
}

func TestDrawAxes(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	r := NewRasterizer(fb)
	r.DrawAxes()

	if got := fb.Get(0, 5); got != ColorRed {
		t.Errorf("x axis = %v, want red", got)
	}
	if got := fb.Get(5, 0); got != ColorGreen {
		t.Errorf("y axis = %v, want green", got)
	}
	if got := fb.Get(5, 5); got != ColorGreen {
		t.Errorf("origin = %v, want green drawn last", got)
	}
	if got := fb.Get(1, 1); got != (Color{}) {
		t.Errorf("off-axis pixel = %v, want untouched", got)
	}
}
