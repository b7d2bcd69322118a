package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong coefficients of a surface.
// Coefficients are nominally in [0,1] but are not clamped.
type Material struct {
	Ambient          float64
	Diffuse          float64
	Specular         float64
	Reflective       float64
	SpecularExponent float64
}

// Sphere is a unit sphere scaled per axis and moved to Position.
// The inverse scale transform is computed once by NewSphere.
type Sphere struct {
	ID       string
	Position core.Vec4 // world position (W=1)
	Scale    core.Vec4 // per-axis scale (W=0)
	Color    core.Vec4
	Material Material

	inverseTransform core.Mat4
	normalTransform  core.Mat4
}

// NewSphere creates a new sphere and caches its inverse transform.
// A zero scale component has no inverse and is rejected.
func NewSphere(id string, position, scale, color core.Vec4, material Material) (*Sphere, error) {
	inverse, ok := core.ScaleMatrix(scale.X, scale.Y, scale.Z).Inverse()
	if !ok {
		return nil, fmt.Errorf("sphere %q: scale (%g, %g, %g) is not invertible", id, scale.X, scale.Y, scale.Z)
	}

	return &Sphere{
		ID:               id,
		Position:         position.WithW(1),
		Scale:            scale.WithW(0),
		Color:            color,
		Material:         material,
		inverseTransform: inverse,
		normalTransform:  inverse.Transpose().Mul(inverse),
	}, nil
}

// InverseTransform returns the cached inverse of the scale transform
func (s *Sphere) InverseTransform() core.Mat4 {
	return s.inverseTransform
}

// localRay maps a ray into the sphere's unit-sphere space.
// S is the offset from the ray origin to the center, C the direction.
func (s *Sphere) localRay(ray core.Ray) (S, C core.Vec4) {
	S = s.inverseTransform.MulVec(s.Position.Subtract(ray.Origin))
	C = s.inverseTransform.MulVec(ray.Direction)
	return S, C
}

// normalAt returns the unit world-space normal at a surface point.
// Internal hits get the inward normal.
func (s *Sphere) normalAt(point core.Vec4, internal bool) core.Vec4 {
	normal := point.Subtract(s.Position)
	if internal {
		normal = normal.Negate()
	}
	normal = s.normalTransform.MulVec(normal)
	normal.W = 0
	return normal.Normalize()
}
