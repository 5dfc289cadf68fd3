package scene

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/geometry"
	"github.com/smalkov/raytracer/pkg/lights"
	"github.com/smalkov/raytracer/pkg/material"
	"github.com/smalkov/raytracer/pkg/render"
	"github.com/smalkov/raytracer/pkg/transform"
)

// NewPatterns builds a plane floor with a stripe pattern and three spheres
// wearing gradients
func NewPatterns(width, height int) *Scene {
	floor := geometry.NewPlane()
	floor.Material().Color = core.NewColor(1, 0.9, 0.9)
	floor.Material().Specular = 0
	floorPattern := material.NewStripePattern(
		core.NewColor(0.83, 0.83, 0.83),
		core.NewColor(0.9, 1, 1),
	)
	floor.Material().Pattern = floorPattern

	middle := geometry.NewSphere()
	middle.SetTransform(transform.New(transform.Translate{X: -0.5, Y: 1, Z: 0.5}))
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3
	middle.Material().Pattern = gradient(core.NewColor(0, 0, 1), core.NewColor(0.5, 0, 0.5))

	right := geometry.NewSphere()
	right.SetTransform(transform.New(
		transform.Scale{X: 0.5, Y: 0.5, Z: 0.5},
		transform.Translate{X: 1.5, Y: 0.5, Z: -0.5},
	))
	right.Material().Diffuse = 0.7
	right.Material().Specular = 0.3
	right.Material().Pattern = gradient(core.NewColor(1, 0, 0), core.NewColor(1, 0.65, 0))

	left := geometry.NewSphere()
	left.SetTransform(transform.New(
		transform.Scale{X: 0.33, Y: 0.33, Z: 0.33},
		transform.Translate{X: -1.5, Y: 0.33, Z: -0.75},
	))
	left.Material().Diffuse = 0.7
	left.Material().Specular = 0.3
	left.Material().Pattern = gradient(core.NewColor(0, 0.5, 0), core.NewColor(1, 1, 0))

	w := render.NewWorld()
	w.Add(floor, middle, right, left)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	camera := render.NewCamera(width, height, math.Pi/3)
	camera.SetView(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{
		Name:       "patterns",
		World:      w,
		Camera:     camera,
		Background: core.Black(),
	}
}

// gradient builds a gradient pattern stretched to cover the sphere
func gradient(a, b core.Color) material.Pattern {
	p := material.NewGradientPattern(a, b)
	// scale factors are non-zero, so the transform always inverts
	_ = p.SetTransform(transform.New(transform.Scale{X: 2, Y: 1, Z: 1}))
	return p
}
