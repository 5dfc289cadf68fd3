package material

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/transform"
)

// Pattern maps surface points to colors
type Pattern interface {
	// At returns the pattern color at a point
	At(point core.Tuple) core.Color
}

// StripePattern alternates between two colors along the x axis in
// one-unit-wide bands
type StripePattern struct {
	A, B    core.Color
	inverse core.Matrix
}

// NewStripePattern creates a stripe pattern with an identity transform
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{A: a, B: b, inverse: core.Identity()}
}

// SetTransform sets the pattern-space transform. The inverse is cached here
// so lookups stay error-free.
func (s *StripePattern) SetTransform(t *transform.Transformation) error {
	inv, err := t.Inverse()
	if err != nil {
		return err
	}
	s.inverse = inv
	return nil
}

// At returns A in even bands and B in odd ones
func (s *StripePattern) At(point core.Tuple) core.Color {
	local := s.inverse.MultiplyTuple(point)
	if math.Mod(math.Floor(local.X), 2) == 0 {
		return s.A
	}
	return s.B
}

// GradientPattern blends linearly from A to B across each unit of the
// x axis
type GradientPattern struct {
	A, B    core.Color
	inverse core.Matrix
}

// NewGradientPattern creates a gradient pattern with an identity transform
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{A: a, B: b, inverse: core.Identity()}
}

// SetTransform sets the pattern-space transform, caching its inverse
func (g *GradientPattern) SetTransform(t *transform.Transformation) error {
	inv, err := t.Inverse()
	if err != nil {
		return err
	}
	g.inverse = inv
	return nil
}

// At interpolates between A and B on the fractional part of x
func (g *GradientPattern) At(point core.Tuple) core.Color {
	local := g.inverse.MultiplyTuple(point)
	fraction := local.X - math.Floor(local.X)
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}
