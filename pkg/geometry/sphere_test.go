package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-9

func vecClose(a, b core.Vec4) bool {
	return a.Subtract(b).Length() <= tolerance
}

func mustSphere(t *testing.T, position, scale core.Vec4) *Sphere {
	t.Helper()
	sphere, err := NewSphere("s", position, scale, core.NewColor(1, 0, 0), Material{Ambient: 0.1, Diffuse: 0.5})
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return sphere
}

func TestNewSphere_CachesInverseTransform(t *testing.T) {
	sphere := mustSphere(t, core.NewPoint(1, 2, 3), core.NewDirection(2, 4, 0.5))

	expected := core.NewMat4Rows([4][4]float64{
		{0.5, 0, 0, 0},
		{0, 0.25, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 1},
	})
	if !sphere.InverseTransform().ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected inverse %v, got %v", expected, sphere.InverseTransform())
	}
}

func TestNewSphere_RejectsZeroScale(t *testing.T) {
	_, err := NewSphere("flat", core.NewPoint(0, 0, 0), core.NewDirection(1, 0, 1), core.NewColor(1, 1, 1), Material{})
	if err == nil {
		t.Fatal("Expected error for zero scale component")
	}
}

func TestSphere_NormalUnderNonUniformScale(t *testing.T) {
	sphere := mustSphere(t, core.NewPoint(0, 0, 0), core.NewDirection(2, 1, 1))

	tests := []struct {
		name     string
		ray      core.Ray
		point    core.Vec4
		expected core.Vec4
	}{
		{
			name:     "stretched axis",
			ray:      core.NewRayAtLevel(core.NewPoint(5, 0, 0), core.NewDirection(-1, 0, 0), 1),
			point:    core.NewPoint(2, 0, 0),
			expected: core.NewDirection(1, 0, 0),
		},
		{
			name:     "unscaled axis",
			ray:      core.NewRayAtLevel(core.NewPoint(0, 5, 0), core.NewDirection(0, -1, 0), 1),
			point:    core.NewPoint(0, 1, 0),
			expected: core.NewDirection(0, 1, 0),
		},
		{
			name:     "off axis uses inverse transpose",
			ray:      core.NewRayAtLevel(core.NewPoint(math.Sqrt2, 5, 0), core.NewDirection(0, -1, 0), 1),
			point:    core.NewPoint(math.Sqrt2, math.Sqrt(0.5), 0),
			expected: core.NewDirection(1/math.Sqrt(5), 2/math.Sqrt(5), 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := IntersectNearest(tt.ray, []*Sphere{sphere})
			if !hit.Hit() {
				t.Fatal("Expected hit, but got miss")
			}
			if !vecClose(hit.Point, tt.point) {
				t.Errorf("Expected point %v, got %v", tt.point, hit.Point)
			}
			if !vecClose(hit.Normal, tt.expected) {
				t.Errorf("Expected normal %v, got %v", tt.expected, hit.Normal)
			}
			if hit.Normal.W != 0 {
				t.Errorf("Expected normal W=0, got %f", hit.Normal.W)
			}
		})
	}
}
