package render

import (
	"testing"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

func TestDrawLinePixelCount(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 math3d.Vec2i
	}{
		{"horizontal", math3d.V2i(0, 0), math3d.V2i(10, 0)},
		{"vertical", math3d.V2i(0, 0), math3d.V2i(0, 10)},
		{"diagonal", math3d.V2i(0, 0), math3d.V2i(10, 10)},
		{"shallow", math3d.V2i(0, 0), math3d.V2i(10, 3)},
		{"steep descending", math3d.V2i(2, 9), math3d.V2i(5, 0)},
		{"shallow long", math3d.V2i(13, 20), math3d.V2i(80, 40)},
		{"steep long", math3d.V2i(20, 13), math3d.V2i(40, 80)},
		{"shallow reversed", math3d.V2i(80, 40), math3d.V2i(13, 20)},
		{"negative slope", math3d.V2i(0, 50), math3d.V2i(60, 10)},
		{"single point", math3d.V2i(5, 5), math3d.V2i(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecorder(100, 100)
			DrawLine(r, tc.p0, tc.p1, ColorWhite)

			want := max(abs(tc.p1.X-tc.p0.X), abs(tc.p1.Y-tc.p0.Y)) + 1
			if len(r.order) != want {
				t.Errorf("writes = %d, want %d", len(r.order), want)
			}
			if len(r.pixels) != want {
				t.Errorf("distinct pixels = %d, want %d", len(r.pixels), want)
			}
			if _, ok := r.pixels[tc.p0]; !ok {
				t.Errorf("start point %v not drawn", tc.p0)
			}
			if _, ok := r.pixels[tc.p1]; !ok {
				t.Errorf("end point %v not drawn", tc.p1)
			}
		})
	}
}

func TestDrawLineConnected(t *testing.T) {
	lines := [][2]math3d.Vec2i{
		{math3d.V2i(13, 20), math3d.V2i(80, 40)},
		{math3d.V2i(20, 13), math3d.V2i(40, 80)},
		{math3d.V2i(80, 40), math3d.V2i(13, 20)},
		{math3d.V2i(0, 99), math3d.V2i(99, 0)},
	}
	for _, l := range lines {
		r := newRecorder(100, 100)
		DrawLine(r, l[0], l[1], ColorWhite)
		for i := 1; i < len(r.order); i++ {
			a, b := r.order[i-1], r.order[i]
			if dx, dy := abs(a.X-b.X), abs(a.Y-b.Y); max(dx, dy) != 1 {
				t.Errorf("line %v: gap between %v and %v", l, a, b)
			}
		}
	}
}

func TestDrawLineSymmetric(t *testing.T) {
	pairs := [][2]math3d.Vec2i{
		{math3d.V2i(13, 20), math3d.V2i(80, 40)},
		{math3d.V2i(20, 13), math3d.V2i(40, 80)},
		{math3d.V2i(0, 0), math3d.V2i(7, 7)},
		{math3d.V2i(3, 90), math3d.V2i(50, 2)},
	}
	for _, p := range pairs {
		fwd := newRecorder(100, 100)
		rev := newRecorder(100, 100)
		DrawLine(fwd, p[0], p[1], ColorWhite)
		DrawLine(rev, p[1], p[0], ColorWhite)
		if len(fwd.pixels) != len(rev.pixels) {
			t.Fatalf("%v: %d pixels forward, %d reversed", p, len(fwd.pixels), len(rev.pixels))
		}
		for px := range fwd.pixels {
			if _, ok := rev.pixels[px]; !ok {
				t.Errorf("%v: pixel %v only drawn forward", p, px)
			}
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 math3d.Vec2i
		want   int
	}{
		{"crosses left edge", math3d.V2i(-10, 5), math3d.V2i(20, 5), 10},
		{"crosses top edge", math3d.V2i(3, -5), math3d.V2i(3, 4), 5},
		{"fully outside", math3d.V2i(-10, -10), math3d.V2i(-1, -3), 0},
		{"through both edges", math3d.V2i(-5, -5), math3d.V2i(15, 15), 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecorder(10, 10)
			DrawLine(r, tc.p0, tc.p1, ColorRed)
			if r.oob != 0 {
				t.Errorf("%d out-of-bounds writes", r.oob)
			}
			if len(r.order) != tc.want {
				t.Errorf("writes = %d, want %d", len(r.order), tc.want)
			}
		})
	}
}

func TestDrawLineColor(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	DrawLine(fb, math3d.V2i(0, 0), math3d.V2i(9, 0), ColorGreen)
	for x := range 10 {
		if got := fb.Get(x, 0); got != ColorGreen {
			t.Errorf("(%d,0) = %v, want green", x, got)
		}
	}
	if got := fb.Get(0, 1); got != (Color{}) {
		t.Errorf("(0,1) = %v, want untouched", got)
	}
}

func BenchmarkDrawLine(b *testing.B) {
	fb := NewFramebuffer(800, 800)
	p0, p1 := math3d.V2i(13, 20), math3d.V2i(780, 400)
	for b.Loop() {
		DrawLine(fb, p0, p1, ColorWhite)
	}
}
