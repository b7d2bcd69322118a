package core

import "math"

// Vec4 is a homogeneous coordinate. Points carry W=1, directions W=0.
// Colors reuse X, Y, Z as R, G, B and ignore W.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a position (W=1)
func NewPoint(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// NewDirection creates a direction (W=0)
func NewDirection(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

// NewColor creates an RGB color. W is set to 1 the same way loaded
// points are, and is never read by shading or output.
func NewColor(r, g, b float64) Vec4 {
	return Vec4{X: r, Y: g, Z: b, W: 1}
}

// Add returns the sum of two vectors
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Subtract returns the difference of two vectors
func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Multiply returns the vector scaled by a scalar
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec4) MultiplyVec(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Negate returns the negative of the vector
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the four component dot product
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude of the vector
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec4) LengthSquared() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector has no direction; it normalizes to the zero vector
// so that degenerate input stays deterministic instead of producing NaN.
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length == 0 {
		return Vec4{}
	}
	return Vec4{v.X / length, v.Y / length, v.Z / length, v.W / length}
}

// WithW returns a copy of v with the W component replaced
func (v Vec4) WithW(w float64) Vec4 {
	v.W = w
	return v
}

// IsZero reports whether every component is exactly zero
func (v Vec4) IsZero() bool {
	return v == Vec4{}
}
