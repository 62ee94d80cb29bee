package render

import "github.com/taigrr/tinyrender/pkg/math3d"

// DrawLine draws a line from p0 to p1 using integer error accumulation.
//
// The sweep always runs along the dominant axis, so the line has exactly one
// pixel per step on that axis and max(|dx|, |dy|)+1 pixels in total. Pixels
// that fall outside t are skipped.
func DrawLine(t Target, p0, p1 math3d.Vec2i, c Color) {
	steep := false
	if abs(p0.X-p1.X) < abs(p0.Y-p1.Y) {
		p0, p1 = p0.Transpose(), p1.Transpose()
		steep = true
	}
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	derror2 := abs(dy) * 2
	ystep := 1
	if dy < 0 {
		ystep = -1
	}

	w, h := t.Width(), t.Height()
	error2 := 0
	y := p0.Y
	for x := p0.X; x <= p1.X; x++ {
		px, py := x, y
		if steep {
			px, py = y, x
		}
		if px >= 0 && px < w && py >= 0 && py < h {
			t.Set(px, py, c)
		}
		error2 += derror2
		if error2 > dx {
			y += ystep
			error2 -= dx * 2
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
