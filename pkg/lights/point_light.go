// Package lights provides the point light source and its Phong shading
// function.
package lights

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/material"
)

// PointLight is a light source with no size at a single position
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Shade evaluates the Phong reflection model for a surface point lit by
// this light. eye and normal must be normalized. When the point is
// shadowed only the ambient term survives. No clamping happens here;
// out-of-range channels are clamped at serialization time.
func (l PointLight) Shade(m material.Material, point, eye, normal core.Tuple, inShadow bool) core.Color {
	// combine the surface color with the light's intensity
	effective := l.Intensity.Blend(m.ColorAt(point))

	// direction from the surface point to the light source
	lightV := l.Position.Subtract(point).Normalize()

	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	diffuse := core.Black()
	specular := core.Black()

	// cosine of the angle between light vector and normal; negative means
	// the light is on the other side of the surface
	lightDotNormal := lightV.Dot(normal)
	if lightDotNormal >= 0 {
		diffuse = effective.Multiply(m.Diffuse * lightDotNormal)

		// cosine of the angle between the reflected light and the eye;
		// non-positive means the reflection points away from the eye
		reflectV := core.Reflect(lightV.Negate(), normal)
		reflectDotEye := reflectV.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = l.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
