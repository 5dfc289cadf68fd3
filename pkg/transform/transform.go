// Package transform composes ordered sequences of primitive affine
// operations into a single cached 4x4 matrix.
package transform

import (
	"fmt"

	"github.com/smalkov/raytracer/pkg/core"
)

// Transformation is an ordered sequence of units with a cached composed
// matrix. Applying the composed matrix to a tuple is equivalent to applying
// the units one at a time in the order they were added. Units can only be
// appended, so the cache is always valid.
type Transformation struct {
	units  []Unit
	matrix core.Matrix
}

// New creates a transformation from the given units, applied in argument
// order. With no arguments the transformation is the identity.
func New(units ...Unit) *Transformation {
	t := &Transformation{matrix: core.Identity()}
	for _, u := range units {
		t.Add(u)
	}
	return t
}

// Add appends a unit. The cache folds the new unit in from the left so the
// first-added unit is applied first.
func (t *Transformation) Add(u Unit) {
	t.units = append(t.units, u)
	t.matrix = u.Matrix().Multiply(t.matrix)
}

// Len returns the number of units added so far
func (t *Transformation) Len() int {
	return len(t.units)
}

// Matrix returns the cached composed matrix
func (t *Transformation) Matrix() core.Matrix {
	return t.matrix
}

// Inverse returns the inverse of the composed matrix. A degenerate unit
// (such as a zero scale factor) makes the composition non-invertible.
func (t *Transformation) Inverse() (core.Matrix, error) {
	inv, err := t.matrix.Inverse()
	if err != nil {
		return core.Matrix{}, fmt.Errorf("transformation of %d units: %w", len(t.units), err)
	}
	return inv, nil
}
