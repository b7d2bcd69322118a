package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// EncodePPM writes the framebuffer as a binary PPM (P6) with maxval 255
func EncodePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	row := make([]byte, fb.Width*3)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			row[x*3+0] = Quantize(c.X)
			row[x*3+1] = Quantize(c.Y)
			row[x*3+2] = Quantize(c.Z)
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("failed to write PPM row %d: %w", y, err)
		}
	}

	return bw.Flush()
}
