package geometry

import (
	"sort"

	"github.com/smalkov/raytracer/pkg/core"
)

// Intersection pairs a ray parameter with the shape it was found on. Shapes
// are referenced, not owned: many intersections may point at the same shape,
// whose lifetime belongs to the world.
type Intersection struct {
	T      float64
	Object Drawable
}

// Intersections is a collection of intersections kept sorted ascending by T
type Intersections []Intersection

// NewIntersections pairs each t-value with the shape and returns the sorted
// collection
func NewIntersections(obj Drawable, ts ...float64) Intersections {
	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: obj})
	}
	xs.Sort()
	return xs
}

// Combine merges intersection lists into one sorted collection
func Combine(lists ...Intersections) Intersections {
	var xs Intersections
	for _, list := range lists {
		xs = append(xs, list...)
	}
	xs.Sort()
	return xs
}

// Sort orders the collection ascending by T. The comparison treats NaN as
// equal to everything, so a degenerate t-value can never panic the sort,
// and equal t-values keep their insertion order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Contains reports whether any intersection has the given t-value, compared
// with Epsilon tolerance
func (xs Intersections) Contains(t float64) bool {
	for _, x := range xs {
		if core.FloatEquals(x.T, t) {
			return true
		}
	}
	return false
}

// Hit returns the visible intersection: the one with the smallest
// non-negative T. An empty or all-negative collection has no hit.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		return x, true
	}
	return Intersection{}, false
}
