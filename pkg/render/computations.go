package render

import (
	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/geometry"
)

// Computations is the per-hit bundle of derived values the shading step
// needs. It is built once per visible intersection and discarded after the
// pixel is shaded.
type Computations struct {
	T         float64
	Object    geometry.Drawable
	Point     core.Tuple
	OverPoint core.Tuple
	Eye       core.Tuple
	Normal    core.Tuple
	Inside    bool
}

// PrepareComputations derives the shading inputs for an intersection. When
// the eye looks at the inside of the shape the normal is flipped and Inside
// is set. OverPoint nudges the hit along the normal by Epsilon so shadow
// rays cannot re-intersect their own surface (the acne problem).
func PrepareComputations(i geometry.Intersection, ray core.Ray) (Computations, error) {
	point := ray.Position(i.T)
	eye := ray.Direction.Negate()

	normal, err := geometry.NormalAt(i.Object, point)
	if err != nil {
		return Computations{}, err
	}

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	return Computations{
		T:         i.T,
		Object:    i.Object,
		Point:     point,
		OverPoint: point.Add(normal.Multiply(core.Epsilon)),
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
	}, nil
}
