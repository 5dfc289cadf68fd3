package core

import "math"

// Epsilon is the tolerance used for every floating-point comparison in the
// tracer. Geometry, colors and matrices all compare through it so that a
// single constant controls numeric slack everywhere.
const Epsilon = 1e-4

// FloatEquals compares two floats with Epsilon tolerance
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous 4-component vector. W distinguishes points (W=1)
// from directions (W=0); the arithmetic is shared between the two.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple with all four components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (W=1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a direction vector (W=0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return FloatEquals(t.W, 1)
}

// IsVector reports whether the tuple is a direction vector
func (t Tuple) IsVector() bool {
	return FloatEquals(t.W, 0)
}

// Add returns the sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar. A near-zero divisor is an
// error rather than a silent infinity.
func (t Tuple) Divide(scalar float64) (Tuple, error) {
	if math.Abs(scalar) < Epsilon {
		return Tuple{}, ErrDivideByZero
	}
	return t.Multiply(1 / scalar), nil
}

// Dot returns the four-component dot product
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the three-component cross product as a vector
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction. A near-zero tuple
// normalizes to the zero tuple.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	if mag < Epsilon {
		return Tuple{}
	}
	return t.Multiply(1 / mag)
}

// Equals compares two tuples component-wise with Epsilon tolerance
func (t Tuple) Equals(other Tuple) bool {
	return FloatEquals(t.X, other.X) &&
		FloatEquals(t.Y, other.Y) &&
		FloatEquals(t.Z, other.Z) &&
		FloatEquals(t.W, other.W)
}

// Reflect reflects the vector v across the normal n
func Reflect(v, n Tuple) Tuple {
	return v.Subtract(n.Multiply(2 * n.Dot(v)))
}
