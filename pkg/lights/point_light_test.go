package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_ShadowRay(t *testing.T) {
	light := NewPointLight("key", core.NewPoint(0, 10, 0), core.NewColor(2, 2, 2))

	tests := []struct {
		name      string
		point     core.Vec4
		level     int
		direction core.Vec4
	}{
		{"straight up from origin", core.NewPoint(0, 0, 0), 0, core.NewDirection(0, 1, 0)},
		{"diagonal", core.NewPoint(10, 0, 0), 1, core.NewDirection(-1/math.Sqrt2, 1/math.Sqrt2, 0)},
		{"level is inherited", core.NewPoint(0, 5, 0), 2, core.NewDirection(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := light.ShadowRay(tt.point, tt.level)

			if ray.Origin != tt.point {
				t.Errorf("Expected origin %v, got %v", tt.point, ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
			if ray.ReflectionLevel != tt.level {
				t.Errorf("Expected level %d, got %d", tt.level, ray.ReflectionLevel)
			}
		})
	}
}

func TestPointLight_IntensityIsUnclamped(t *testing.T) {
	light := NewPointLight("hot", core.NewPoint(0, 0, 0), core.NewColor(5, 0.5, 10))
	if light.Intensity() != core.NewColor(5, 0.5, 10) {
		t.Errorf("Expected unclamped color, got %v", light.Intensity())
	}
	if light.Type() != LightTypePoint {
		t.Errorf("Expected point light type, got %s", light.Type())
	}
}
