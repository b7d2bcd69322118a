package output

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ToImage converts a framebuffer into an 8-bit RGBA image. Alpha is
// always opaque.
func ToImage(fb *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: Quantize(c.X),
				G: Quantize(c.Y),
				B: Quantize(c.Z),
				A: 255,
			})
		}
	}
	return img
}
