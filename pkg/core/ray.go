package core

// Ray is a half-line with a reflection depth counter.
// ReflectionLevel is 0 for camera rays and grows by one per mirror bounce.
type Ray struct {
	Origin          Vec4
	Direction       Vec4
	ReflectionLevel int
}

// NewRay creates a new primary ray
func NewRay(origin, direction Vec4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtLevel creates a ray carrying the given reflection level
func NewRayAtLevel(origin, direction Vec4, level int) Ray {
	return Ray{Origin: origin, Direction: direction, ReflectionLevel: level}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec4 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsPrimary reports whether the ray was cast from the camera
func (r Ray) IsPrimary() bool {
	return r.ReflectionLevel == 0
}
