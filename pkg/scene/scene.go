package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var (
	ErrMissingResolution = errors.New("scene resolution must be positive")
	ErrInvalidViewport   = errors.New("scene viewport is degenerate")
)

// Viewport is the image plane in camera space. The camera sits at the
// origin looking down -Z and the plane lies at distance Near.
type Viewport struct {
	Left, Right float64
	Top, Bottom float64
	Near        float64
}

// Resolution is the output image size in pixels
type Resolution struct {
	Width, Height int
}

// Scene contains all the elements needed for rendering.
// A Scene is read-only once built and may be shared between goroutines.
type Scene struct {
	Viewport   Viewport
	Resolution Resolution
	Spheres    []*geometry.Sphere // scanned in order by the intersector
	Lights     []lights.Light
	Background core.Vec4 // returned by primary rays that miss
	Ambient    core.Vec4 // ambient light intensity
	Output     string    // requested output file, may be empty
}

// Validate checks the parts of a scene the renderer cannot work without
func (s *Scene) Validate() error {
	if s.Resolution.Width <= 0 || s.Resolution.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrMissingResolution, s.Resolution.Width, s.Resolution.Height)
	}
	if s.Viewport.Near <= 0 {
		return fmt.Errorf("%w: near must be positive, got %g", ErrInvalidViewport, s.Viewport.Near)
	}
	if s.Viewport.Left == s.Viewport.Right || s.Viewport.Top == s.Viewport.Bottom {
		return fmt.Errorf("%w: zero width or height", ErrInvalidViewport)
	}
	return nil
}

// Sphere returns the sphere referenced by an intersection index
func (s *Scene) Sphere(index int) *geometry.Sphere {
	return s.Spheres[index]
}

// Intersect returns the nearest sphere hit along the ray
func (s *Scene) Intersect(ray core.Ray) geometry.Intersection {
	return geometry.IntersectNearest(ray, s.Spheres)
}
