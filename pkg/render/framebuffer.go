// Package render implements the tinyrender software rasterizer: a
// framebuffer, a Bresenham line rasterizer, a scanline triangle filler,
// per-face flat shading and the driver that runs a mesh through them.
package render

import (
	"image"
)

// Target is a pixel grid the rasterizers can draw into.
type Target interface {
	Width() int
	Height() int
	Set(x, y int, c Color)
}

// Framebuffer is a fixed-size grid of pixels. Row 0 is the top row until
// FlipVertical is called.
type Framebuffer struct {
	width  int
	height int
	Pixels []Color // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// All pixels start as transparent black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		Pixels: make([]Color, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// Set sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (fb *Framebuffer) Set(x, y int, c Color) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.Pixels[y*fb.width+x] = c
}

// Get returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) Get(x, y int) Color {
	if !fb.inBounds(x, y) {
		return Color{}
	}
	return fb.Pixels[y*fb.width+x]
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// FlipVertical reverses the row order in place, moving the origin between
// the top-left and bottom-left corners.
func (fb *Framebuffer) FlipVertical() {
	w := fb.width
	tmp := make([]Color, w)
	for top, bot := 0, fb.height-1; top < bot; top, bot = top+1, bot-1 {
		a := fb.Pixels[top*w : (top+1)*w]
		b := fb.Pixels[bot*w : (bot+1)*w]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.width+x])
		}
	}
	return img
}
