// Package material holds the Phong reflection model surface parameters.
package material

import "github.com/smalkov/raytracer/pkg/core"

// Material describes how a surface responds to light under the Phong
// reflection model
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	Pattern   Pattern // optional; overrides Color when set
}

// New returns the default material: white, ambient 0.1, diffuse 0.9,
// specular 0.9, shininess 200
func New() Material {
	return Material{
		Color:     core.White(),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// ColorAt returns the surface color at a point, consulting the pattern
// when one is set
func (m Material) ColorAt(point core.Tuple) core.Color {
	if m.Pattern != nil {
		return m.Pattern.At(point)
	}
	return m.Color
}
