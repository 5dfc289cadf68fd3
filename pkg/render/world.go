// Package render orchestrates worlds, cameras and canvases into rendered
// images.
package render

import (
	"errors"
	"fmt"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/geometry"
	"github.com/smalkov/raytracer/pkg/lights"
)

// ErrLightCount is returned when a shading operation needs exactly one
// light source and the world has zero or several.
var ErrLightCount = errors.New("world requires exactly one light source")

// World aggregates the shapes and light sources of a scene. Shapes are
// shared references; they are mutated only during scene assembly, never
// during a render pass.
type World struct {
	Objects []geometry.Drawable
	Lights  []lights.PointLight
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add appends shapes to the world
func (w *World) Add(objs ...geometry.Drawable) {
	w.Objects = append(w.Objects, objs...)
}

// AddLight appends a light source to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// light returns the world's single light source, or ErrLightCount
func (w *World) light() (lights.PointLight, error) {
	if len(w.Lights) != 1 {
		return lights.PointLight{}, fmt.Errorf("%w: have %d", ErrLightCount, len(w.Lights))
	}
	return w.Lights[0], nil
}

// Intersect casts a ray against every shape and returns all intersections
// sorted ascending by t
func (w *World) Intersect(ray core.Ray) (geometry.Intersections, error) {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		ts, err := geometry.Intersect(obj, ray)
		if err != nil {
			return nil, err
		}
		for _, t := range ts {
			xs = append(xs, geometry.Intersection{T: t, Object: obj})
		}
	}
	xs.Sort()
	return xs, nil
}

// IsShadowed reports whether a point is cut off from the world's single
// light source by another shape. The comparison against the light distance
// is epsilon-relaxed so an occluder at the light's own position does not
// count.
func (w *World) IsShadowed(point core.Tuple) (bool, error) {
	light, err := w.light()
	if err != nil {
		return false, err
	}

	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()

	xs, err := w.Intersect(core.NewRay(point, toLight.Normalize()))
	if err != nil {
		return false, err
	}

	if h, ok := xs.Hit(); ok && h.T < distance-core.Epsilon {
		return true, nil
	}
	return false, nil
}

// ShadeHit shades a prepared hit: the shadow test runs at the over-point,
// then the light's Phong shade function produces the color
func (w *World) ShadeHit(comps Computations) (core.Color, error) {
	light, err := w.light()
	if err != nil {
		return core.Color{}, err
	}

	shadowed, err := w.IsShadowed(comps.OverPoint)
	if err != nil {
		return core.Color{}, err
	}

	return light.Shade(*comps.Object.Material(), comps.Point, comps.Eye, comps.Normal, shadowed), nil
}

// ColorAt casts a ray into the world and returns the shaded color of the
// visible hit, or the background color when nothing is hit
func (w *World) ColorAt(ray core.Ray, background core.Color) (core.Color, error) {
	xs, err := w.Intersect(ray)
	if err != nil {
		return core.Color{}, err
	}

	hit, ok := xs.Hit()
	if !ok {
		return background, nil
	}

	comps, err := PrepareComputations(hit, ray)
	if err != nil {
		return core.Color{}, err
	}
	return w.ShadeHit(comps)
}
