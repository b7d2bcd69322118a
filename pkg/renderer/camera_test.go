package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCamera_PrimaryRay(t *testing.T) {
	viewport := scene.Viewport{Left: -2, Right: 2, Top: 1, Bottom: -1, Near: 1.5}
	camera := NewCamera(viewport, scene.Resolution{Width: 4, Height: 2})

	tests := []struct {
		name      string
		ix, iy    int
		direction core.Vec4
	}{
		{"bottom-left pixel samples the viewport corner", 0, 0, core.NewDirection(-2, -1, -1.5)},
		{"no half-pixel offset", 1, 0, core.NewDirection(-1, -1, -1.5)},
		{"last column stops short of right edge", 3, 1, core.NewDirection(1, 0, -1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.PrimaryRay(tt.ix, tt.iy)
			if ray.Direction != tt.direction {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
			if ray.Origin != core.NewPoint(0, 0, 0) {
				t.Errorf("Expected origin at camera, got %v", ray.Origin)
			}
			if !ray.IsPrimary() {
				t.Errorf("Expected primary ray, got level %d", ray.ReflectionLevel)
			}
		})
	}
}

func TestFramebuffer_SetTracedFlipsRows(t *testing.T) {
	fb := NewFramebuffer(3, 4)
	color := core.NewColor(1, 2, 3)

	fb.SetTraced(2, 0, color)
	if fb.At(2, 3) != color {
		t.Errorf("Expected traced row 0 at image row 3, got %v", fb.At(2, 3))
	}
	if fb.Pixels[3*3+2] != color {
		t.Errorf("Expected row-major storage at index 11")
	}

	fb.SetTraced(0, 3, color)
	if fb.At(0, 0) != color {
		t.Errorf("Expected traced top row at image row 0, got %v", fb.At(0, 0))
	}
}
