package integrator

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear, unclamped color seen along a ray
	RayColor(ray core.Ray) core.Vec4
}
