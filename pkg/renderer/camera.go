package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays. It sits at the origin looking down -Z
// with the image plane at distance Near.
type Camera struct {
	origin     core.Vec4
	viewport   scene.Viewport
	resolution scene.Resolution
}

// NewCamera creates a camera for a scene's viewport and resolution
func NewCamera(viewport scene.Viewport, resolution scene.Resolution) *Camera {
	return &Camera{
		origin:     core.NewPoint(0, 0, 0),
		viewport:   viewport,
		resolution: resolution,
	}
}

// PrimaryRay returns the ray through pixel (ix, iy), where iy counts up
// from the bottom row. Pixels sample the viewport from its left/bottom
// edge with no half-pixel offset.
func (c *Camera) PrimaryRay(ix, iy int) core.Ray {
	v := c.viewport
	u := float64(ix) / float64(c.resolution.Width)
	w := float64(iy) / float64(c.resolution.Height)

	direction := core.NewDirection(
		v.Left+u*(v.Right-v.Left),
		v.Bottom+w*(v.Top-v.Bottom),
		-v.Near,
	)
	return core.NewRay(c.origin, direction)
}
