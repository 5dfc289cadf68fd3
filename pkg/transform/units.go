package transform

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
)

// Unit is one primitive affine operation. The variant set is closed:
// Translate, Scale, RotateX/Y/Z, Shear and Identity.
type Unit interface {
	// Matrix returns the 4x4 matrix for this unit
	Matrix() core.Matrix
}

// Translate moves points by (X, Y, Z). Vectors (W=0) are unaffected.
type Translate struct {
	X, Y, Z float64
}

// Matrix returns the translation matrix
func (t Translate) Matrix() core.Matrix {
	return core.Matrix{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	}
}

// Scale scales each axis by its factor. A zero factor produces a matrix
// that cannot be inverted.
type Scale struct {
	X, Y, Z float64
}

// Matrix returns the scaling matrix
func (s Scale) Matrix() core.Matrix {
	return core.Matrix{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateX rotates around the x axis by Radians
type RotateX struct {
	Radians float64
}

// Matrix returns the x-rotation matrix
func (r RotateX) Matrix() core.Matrix {
	cos, sin := math.Cos(r.Radians), math.Sin(r.Radians)
	return core.Matrix{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateY rotates around the y axis by Radians
type RotateY struct {
	Radians float64
}

// Matrix returns the y-rotation matrix
func (r RotateY) Matrix() core.Matrix {
	cos, sin := math.Cos(r.Radians), math.Sin(r.Radians)
	return core.Matrix{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateZ rotates around the z axis by Radians
type RotateZ struct {
	Radians float64
}

// Matrix returns the z-rotation matrix
func (r RotateZ) Matrix() core.Matrix {
	cos, sin := math.Cos(r.Radians), math.Sin(r.Radians)
	return core.Matrix{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Shear skews each coordinate in proportion to the other two. XY reads as
// "x moved in proportion to y".
type Shear struct {
	XY, XZ, YX, YZ, ZX, ZY float64
}

// Matrix returns the shearing matrix
func (s Shear) Matrix() core.Matrix {
	return core.Matrix{
		1, s.XY, s.XZ, 0,
		s.YX, 1, s.YZ, 0,
		s.ZX, s.ZY, 1, 0,
		0, 0, 0, 1,
	}
}

// Identity leaves tuples unchanged
type Identity struct{}

// Matrix returns the identity matrix
func (Identity) Matrix() core.Matrix {
	return core.Identity()
}
