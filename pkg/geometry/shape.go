// Package geometry provides the drawable shape abstraction and the
// ray-intersection machinery built on top of it.
package geometry

import (
	"fmt"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/material"
	"github.com/smalkov/raytracer/pkg/transform"
)

// Drawable is the capability set every shape variant provides. The local
// methods work in object space; the world-space wrappers Intersect and
// NormalAt apply the shape's inverse transform around them.
type Drawable interface {
	// Transform returns the shape's transformation
	Transform() *transform.Transformation
	// SetTransform replaces the shape's transformation
	SetTransform(t *transform.Transformation)
	// Material returns a mutable reference to the shape's material
	Material() *material.Material
	// SetMaterial replaces the shape's material
	SetMaterial(m material.Material)
	// LocalNormalAt returns the surface normal at an object-space point
	LocalNormalAt(point core.Tuple) core.Tuple
	// LocalIntersect returns the sorted t-values where an object-space ray
	// meets the shape
	LocalIntersect(ray core.Ray) []float64
}

// Shape is the base state shared by every concrete shape: a transformation
// and a material. Concrete shapes embed it and add their geometry.
type Shape struct {
	transform *transform.Transformation
	material  material.Material
}

// NewShape returns base shape state with an identity transform and the
// default material
func NewShape() Shape {
	return Shape{
		transform: transform.New(),
		material:  material.New(),
	}
}

// Transform returns the shape's transformation
func (s *Shape) Transform() *transform.Transformation {
	return s.transform
}

// SetTransform replaces the shape's transformation
func (s *Shape) SetTransform(t *transform.Transformation) {
	s.transform = t
}

// Material returns a mutable reference to the shape's material
func (s *Shape) Material() *material.Material {
	return &s.material
}

// SetMaterial replaces the shape's material
func (s *Shape) SetMaterial(m material.Material) {
	s.material = m
}

// Intersect maps a world-space ray into the shape's object space and
// delegates to LocalIntersect. Fails when the transform is not invertible.
func Intersect(d Drawable, worldRay core.Ray) ([]float64, error) {
	inv, err := d.Transform().Inverse()
	if err != nil {
		return nil, fmt.Errorf("intersect shape: %w", err)
	}
	return d.LocalIntersect(worldRay.Transform(inv)), nil
}

// NormalAt computes the world-space surface normal at a world-space point.
// The object-space normal is mapped back through the inverse-transpose of
// the transform; W is forced to zero to discard translation leakage.
func NormalAt(d Drawable, worldPoint core.Tuple) (core.Tuple, error) {
	inv, err := d.Transform().Inverse()
	if err != nil {
		return core.Tuple{}, fmt.Errorf("normal at shape: %w", err)
	}

	objPoint := inv.MultiplyTuple(worldPoint)
	objNormal := d.LocalNormalAt(objPoint)

	worldNormal := inv.Transpose().MultiplyTuple(objNormal)
	worldNormal.W = 0
	return worldNormal.Normalize(), nil
}
