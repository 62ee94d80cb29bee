package render

import (
	"testing"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

func TestProject(t *testing.T) {
	fb := NewFramebuffer(800, 600)
	r := NewRasterizer(fb)

	tests := []struct {
		name string
		v    math3d.Vec3
		want math3d.Vec2i
	}{
		{"bottom-left", math3d.V3(-1, -1, 0), math3d.V2i(0, 0)},
		{"center", math3d.V3(0, 0, 0), math3d.V2i(400, 300)},
		{"top-right", math3d.V3(1, 1, 0), math3d.V2i(800, 600)},
		{"z ignored", math3d.V3(0, 0, 123), math3d.V2i(400, 300)},
		{"truncates", math3d.V3(-0.9999, 0.0001, 0), math3d.V2i(0, 300)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Project(tc.v); got != tc.want {
				t.Errorf("Project(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestDrawMeshFlatSingleFace(t *testing.T) {
	fb := NewFramebuffer(800, 800)
	fb.Clear(ColorBlack)
	r := NewRasterizer(fb)
	mesh := singleFace(math3d.V3(-1, -1, 0), math3d.V3(1, -1, 0), math3d.V3(0, 1, 0))

	r.DrawMeshFlat(mesh, ColorWhite, towardViewer)

	want := DrawStats{Faces: 1, Drawn: 1}
	if r.Stats.Faces != want.Faces || r.Stats.Drawn != want.Drawn || r.Stats.Culled != 0 {
		t.Errorf("stats = %+v", r.Stats)
	}
	if r.Stats.Pixels == 0 {
		t.Error("no pixels written")
	}

	// Screen vertices are (0,0), (800,0) and (400,800): the base sits on
	// row 0 until the image is flipped to a top-left origin.
	if got := fb.Get(400, 0); got != ColorWhite {
		t.Errorf("base center before flip = %v, want white", got)
	}
	fb.FlipVertical()
	if got := fb.Get(400, 699); got != ColorWhite {
		t.Errorf("lower middle = %v, want white", got)
	}
	if got := fb.Get(400, 799); got != ColorWhite {
		t.Errorf("base center = %v, want white", got)
	}
	if got := fb.Get(10, 699); got != ColorBlack {
		t.Errorf("outside left edge = %v, want background", got)
	}
	if got := fb.Get(0, 0); got != ColorBlack {
		t.Errorf("top-left corner = %v, want background", got)
	}
}

func TestDrawMeshFlatCulled(t *testing.T) {
	fb := NewFramebuffer(100, 100)
	r := NewRasterizer(fb)
	mesh := singleFace(math3d.V3(-1, -1, 0), math3d.V3(0, 1, 0), math3d.V3(1, -1, 0))

	r.DrawMeshFlat(mesh, ColorWhite, towardViewer)

	if r.Stats.Culled != 1 || r.Stats.Drawn != 0 || r.Stats.Pixels != 0 {
		t.Errorf("stats = %+v, want one culled face", r.Stats)
	}
	for i, p := range fb.Pixels {
		if p != (Color{}) {
			t.Fatalf("pixel %d written by a culled face", i)
		}
	}
}

func TestDrawMeshFlatDegenerateOnScreen(t *testing.T) {
	// Lit in world space but all three vertices land on one scanline.
	fb := NewFramebuffer(800, 800)
	r := NewRasterizer(fb)
	mesh := singleFace(math3d.V3(-1, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0.001, 0))

	r.DrawMeshFlat(mesh, ColorWhite, towardViewer)

	if r.Stats.Degenerate != 1 || r.Stats.Drawn != 0 || r.Stats.Pixels != 0 {
		t.Errorf("stats = %+v, want one degenerate face", r.Stats)
	}
}

func TestDrawMeshFlatFaceColor(t *testing.T) {
	fb := NewFramebuffer(100, 100)
	r := NewRasterizer(fb)
	mesh := &coloredMesh{
		testMesh: testMesh{
			verts: []math3d.Vec3{
				math3d.V3(-1, -1, 0), math3d.V3(0, -1, 0), math3d.V3(-1, 0, 0),
				math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0),
			},
			faces: [][3]int{{0, 1, 2}, {3, 4, 5}},
		},
		colors: map[int]Color{1: ColorRed},
	}

	r.DrawMeshFlat(mesh, ColorWhite, towardViewer)

	if got := fb.Get(10, 10); got != ColorWhite {
		t.Errorf("face without a color = %v, want base", got)
	}
	if got := fb.Get(60, 60); got != ColorRed {
		t.Errorf("face with a color = %v, want red", got)
	}
}

func TestDrawMeshFlatPainterOrder(t *testing.T) {
	fb := NewFramebuffer(100, 100)
	r := NewRasterizer(fb)
	mesh := &coloredMesh{
		testMesh: testMesh{
			verts: []math3d.Vec3{
				math3d.V3(-1, -1, 0.5), math3d.V3(1, -1, 0.5), math3d.V3(0, 1, 0.5),
				math3d.V3(-1, -1, -0.5), math3d.V3(1, -1, -0.5), math3d.V3(0, 1, -0.5),
			},
			faces: [][3]int{{3, 4, 5}, {0, 1, 2}},
		},
		colors: map[int]Color{0: ColorRed, 1: ColorBlue},
	}

	r.DrawMeshFlat(mesh, ColorWhite, towardViewer)

	// No depth test: the face drawn last wins even though it is farther.
	if got := fb.Get(50, 20); got != ColorBlue {
		t.Errorf("overlap = %v, want the later face", got)
	}
}

func TestRasterizerStatsAccumulate(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	r := NewRasterizer(fb)
	if r.Target() != Target(fb) {
		t.Fatal("Target does not return the framebuffer")
	}
	mesh := singleFace(math3d.V3(-1, -1, 0), math3d.V3(1, -1, 0), math3d.V3(0, 1, 0))

	r.DrawMeshFlat(mesh, ColorWhite, towardViewer)
	first := r.Stats.Pixels
	r.DrawMeshFlat(mesh, ColorWhite, towardViewer)
	if r.Stats.Faces != 2 || r.Stats.Pixels != 2*first {
		t.Errorf("stats = %+v after two passes", r.Stats)
	}

	r.ResetStats()
	if r.Stats != (DrawStats{}) {
		t.Errorf("stats = %+v after reset", r.Stats)
	}
}

func TestDrawMeshFlatEmptyTarget(t *testing.T) {
	r := NewRasterizer(NewFramebuffer(0, 0))
	mesh := singleFace(math3d.V3(-1, -1, 0), math3d.V3(1, -1, 0), math3d.V3(0, 1, 0))
	r.DrawMeshFlat(mesh, ColorWhite, towardViewer)
	if r.Stats.Pixels != 0 {
		t.Errorf("pixels = %d on an empty target", r.Stats.Pixels)
	}
}

func BenchmarkDrawMeshFlat(b *testing.B) {
	fb := NewFramebuffer(800, 800)
	r := NewRasterizer(fb)
	mesh := &testMesh{}
	const n = 32
	for y := range n {
		for x := range n {
			x0 := float64(x)/n*2 - 1
			y0 := float64(y)/n*2 - 1
			d := 2.0 / n
			base := len(mesh.verts)
			mesh.verts = append(mesh.verts,
				math3d.V3(x0, y0, 0), math3d.V3(x0+d, y0, 0), math3d.V3(x0, y0+d, 0))
			mesh.faces = append(mesh.faces, [3]int{base, base + 1, base + 2})
		}
	}
	for b.Loop() {
		r.DrawMeshFlat(mesh, ColorWhite, towardViewer)
	}
}
