package geometry

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
)

// Plane is the infinite xz-plane through the local origin
type Plane struct {
	Shape
}

// NewPlane creates a plane with an identity transform
func NewPlane() *Plane {
	return &Plane{Shape: NewShape()}
}

// LocalNormalAt is the constant (0, 1, 0) everywhere on the plane
func (p *Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}

// LocalIntersect returns the single crossing of the ray with y=0. Rays
// parallel to the plane never hit, even when coplanar.
func (p *Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}
