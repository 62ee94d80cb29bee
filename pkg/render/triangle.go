package render

import "github.com/taigrr/tinyrender/pkg/math3d"

// DrawTriangle fills the triangle p0, p1, p2 with a single color using a
// scanline sweep from the lowest to the highest vertex, and returns the
// number of pixels written.
//
// A triangle whose vertices all share one y coordinate has no scanlines and
// draws nothing. Edge positions are truncated toward zero, so boundary
// pixels may differ by one from the exact edge. The top scanline (y of the
// highest vertex) is not filled. Rows and columns outside t are clipped.
func DrawTriangle(t Target, p0, p1, p2 math3d.Vec2i, c Color) int {
	if p0.Y == p1.Y && p0.Y == p2.Y {
		return 0
	}
	p0, p1, p2 = sortByY(p0, p1, p2)

	w, h := t.Width(), t.Height()
	written := 0
	totalHeight := p2.Y - p0.Y
	for i := range totalHeight {
		y := p0.Y + i
		if y < 0 || y >= h {
			continue
		}
		left, right := scanlineSpan(p0, p1, p2, i)
		left = max(left, 0)
		right = min(right, w-1)
		for x := left; x <= right; x++ {
			t.Set(x, y, c)
			written++
		}
	}
	return written
}

// sortByY returns the three points ordered by ascending y. Points with equal
// y keep their relative order.
func sortByY(p0, p1, p2 math3d.Vec2i) (math3d.Vec2i, math3d.Vec2i, math3d.Vec2i) {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	return p0, p1, p2
}

// scanlineSpan returns the inclusive [left, right] x range covered on
// scanline p0.Y+i of a triangle already sorted by y. The long edge p0→p2 is
// interpolated by alpha; the short edge (p0→p1 below p1, p1→p2 above it) by
// beta.
func scanlineSpan(p0, p1, p2 math3d.Vec2i, i int) (left, right int) {
	totalHeight := p2.Y - p0.Y
	lowerHeight := p1.Y - p0.Y
	upper := i > lowerHeight || p1.Y == p0.Y

	segmentHeight := lowerHeight
	if upper {
		segmentHeight = p2.Y - p1.Y
	}

	alpha := float64(i) / float64(totalHeight)
	a := p0.Add(p2.Sub(p0).Scale(alpha))

	var b math3d.Vec2i
	if upper {
		beta := float64(i-lowerHeight) / float64(segmentHeight)
		b = p1.Add(p2.Sub(p1).Scale(beta))
	} else {
		beta := float64(i) / float64(segmentHeight)
		b = p0.Add(p1.Sub(p0).Scale(beta))
	}

	if a.X > b.X {
		a, b = b, a
	}
	return a.X, b.X
}
