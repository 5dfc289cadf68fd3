package geometry

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
)

// Sphere is a sphere with a center and radius in object space
type Sphere struct {
	Shape
	Center core.Tuple
	Radius float64
}

// NewSphere creates a unit sphere at the origin
func NewSphere() *Sphere {
	return &Sphere{
		Shape:  NewShape(),
		Center: core.NewPoint(0, 0, 0),
		Radius: 1,
	}
}

// LocalNormalAt returns the vector from the center to the point
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(s.Center)
}

// LocalIntersect solves the ray-sphere quadratic. Both roots divide by
// c = dot(direction, direction) rather than the textbook 2a; the roots use
// the same c so the simplification holds for non-unit directions too.
func (s *Sphere) LocalIntersect(ray core.Ray) []float64 {
	delta := ray.Origin.Subtract(s.Center)

	a := delta.Dot(delta) - s.Radius*s.Radius
	b := ray.Direction.Dot(delta)
	c := ray.Direction.Dot(ray.Direction)

	d := b*b - a*c
	if d < 0 {
		return nil
	}

	sqrtD := math.Sqrt(d)
	return []float64{(-b - sqrtD) / c, (-b + sqrtD) / c}
}
