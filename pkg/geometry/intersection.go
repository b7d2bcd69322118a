package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NoHit is the hit parameter of an empty Intersection
const NoHit = -1.0

// Intersection describes the nearest sphere hit along a ray.
// When D == NoHit the remaining fields other than Ray are meaningless
// and SphereIndex is -1.
type Intersection struct {
	Ray         core.Ray
	D           float64   // ray parameter of the hit
	Point       core.Vec4 // world-space hit point
	Internal    bool      // ray started inside the sphere
	SphereIndex int       // index into the scanned sphere slice
	Normal      core.Vec4 // unit normal, flipped for internal hits
}

// Hit reports whether the intersection found a sphere
func (i Intersection) Hit() bool {
	return i.D != NoHit
}

// validHitTime rejects hits too close to the ray origin. Primary rays
// additionally clip everything nearer than MinHitTime.
func validHitTime(t float64, ray core.Ray) bool {
	if t <= core.MinReflectHitTime {
		return false
	}
	if ray.IsPrimary() && t <= core.MinHitTime {
		return false
	}
	return true
}

// hitTime solves the ray/unit-sphere quadratic in local space and returns
// the accepted root. The near root is preferred; if it is rejected the far
// root is tried once and the hit is marked internal.
func (s *Sphere) hitTime(ray core.Ray) (t float64, internal, ok bool) {
	S, C := s.localRay(ray)

	// |C|²t² - 2(S·C)t + |S|² - 1 = 0
	a := C.Dot(C)
	b := S.Dot(C)
	c := S.Dot(S) - 1

	discriminant := b*b - a*c
	switch {
	case discriminant < 0:
		return 0, false, false
	case discriminant == 0:
		t = b / a
	default:
		root := math.Sqrt(discriminant)
		t1 := (b - root) / a
		t2 := (b + root) / a

		t = math.Min(t1, t2)
		if !validHitTime(t, ray) {
			t = math.Max(t1, t2)
			internal = true
		}
	}

	if !validHitTime(t, ray) {
		return 0, false, false
	}
	return t, internal, true
}

// IntersectNearest scans every sphere and returns the nearest valid hit.
// Ties keep the sphere scanned first.
func IntersectNearest(ray core.Ray, spheres []*Sphere) Intersection {
	result := Intersection{
		Ray:         ray,
		D:           NoHit,
		SphereIndex: -1,
	}

	for i, sphere := range spheres {
		t, internal, ok := sphere.hitTime(ray)
		if !ok {
			continue
		}
		if result.D == NoHit || t < result.D {
			result.D = t
			result.SphereIndex = i
			result.Internal = internal
		}
	}

	if result.Hit() {
		sphere := spheres[result.SphereIndex]
		result.Point = ray.At(result.D)
		result.Normal = sphere.normalAt(result.Point, result.Internal)
	}

	return result
}

// Occluded reports whether any sphere blocks the ray
func Occluded(ray core.Ray, spheres []*Sphere) bool {
	for _, sphere := range spheres {
		if _, _, ok := sphere.hitTime(ray); ok {
			return true
		}
	}
	return false
}
