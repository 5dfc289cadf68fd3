package scene

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/geometry"
	"github.com/smalkov/raytracer/pkg/lights"
	"github.com/smalkov/raytracer/pkg/render"
	"github.com/smalkov/raytracer/pkg/transform"
)

// NewDefaultWorld creates the canonical two-sphere test world: a white
// light up-left, an outer green-tinted sphere and an inner sphere at half
// scale
func NewDefaultWorld() *render.World {
	outer := geometry.NewSphere()
	outer.Material().Color = core.NewColor(0.8, 1.0, 0.6)
	outer.Material().Diffuse = 0.7
	outer.Material().Specular = 0.2

	inner := geometry.NewSphere()
	inner.SetTransform(transform.New(transform.Scale{X: 0.5, Y: 0.5, Z: 0.5}))

	w := render.NewWorld()
	w.Add(outer, inner)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))
	return w
}

// NewDefault builds a renderable scene around the default world
func NewDefault(width, height int) *Scene {
	camera := render.NewCamera(width, height, math.Pi/3)
	camera.SetView(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{
		Name:       "default",
		World:      NewDefaultWorld(),
		Camera:     camera,
		Background: core.Black(),
	}
}
