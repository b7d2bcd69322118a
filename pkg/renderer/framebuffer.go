package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Framebuffer holds linear, unclamped colors in row-major order with row 0
// at the top of the image
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec4
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec4, width*height),
	}
}

// At returns the color at image coordinates (x, y), y down from the top
func (fb *Framebuffer) At(x, y int) core.Vec4 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores a color at image coordinates (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec4) {
	fb.Pixels[y*fb.Width+x] = c
}

// SetTraced stores a color for traced pixel (ix, iy), where iy counts up
// from the bottom. Traced row iy lands on image row Height-iy-1.
func (fb *Framebuffer) SetTraced(ix, iy int, c core.Vec4) {
	fb.Set(ix, fb.Height-iy-1, c)
}
