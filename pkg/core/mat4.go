package core

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4x4 homogeneous transform
type Mat4 struct {
	m mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4{m: mgl64.Ident4()}
}

// ScaleMatrix returns a non-uniform scale transform
func ScaleMatrix(sx, sy, sz float64) Mat4 {
	return Mat4{m: mgl64.Scale3D(sx, sy, sz)}
}

// NewMat4Rows builds a matrix from row-major values
func NewMat4Rows(rows [4][4]float64) Mat4 {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, rows[r][c])
		}
	}
	return Mat4{m: m}
}

// At returns the element at the given row and column
func (a Mat4) At(row, col int) float64 {
	return a.m.At(row, col)
}

// Mul returns the matrix product a·b
func (a Mat4) Mul(b Mat4) Mat4 {
	return Mat4{m: a.m.Mul4(b.m)}
}

// MulVec returns the matrix-vector product a·v
func (a Mat4) MulVec(v Vec4) Vec4 {
	r := a.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, v.W})
	return Vec4{X: r[0], Y: r[1], Z: r[2], W: r[3]}
}

// Transpose returns the transposed matrix
func (a Mat4) Transpose() Mat4 {
	return Mat4{m: a.m.Transpose()}
}

// Inverse returns the inverse matrix. ok is false for a singular matrix.
func (a Mat4) Inverse() (inv Mat4, ok bool) {
	if a.m.Det() == 0 {
		return Mat4{}, false
	}
	return Mat4{m: a.m.Inv()}, true
}

// ApproxEqual compares two matrices element-wise within epsilon
func (a Mat4) ApproxEqual(b Mat4, epsilon float64) bool {
	return a.m.ApproxEqualThreshold(b.m, epsilon)
}
