package render

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) Color {
	return color.RGBA{r, g, b, a}
}

// ScaleColor multiplies the RGB channels of c by k, clamping each channel to
// [0, 255]. Alpha is left unchanged.
func ScaleColor(c Color, k float64) Color {
	return Color{
		R: scaleChannel(c.R, k),
		G: scaleChannel(c.G, k),
		B: scaleChannel(c.B, k),
		A: c.A,
	}
}

func scaleChannel(v uint8, k float64) uint8 {
	f := float64(v) * k
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}

// ParseRGB parses an "R,G,B" triple such as "255,128,0" into an opaque color.
func ParseRGB(s string) (Color, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("parse color %q: channel %d out of range", s, v)
		}
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}
