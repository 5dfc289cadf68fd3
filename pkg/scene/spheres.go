package scene

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/geometry"
	"github.com/smalkov/raytracer/pkg/lights"
	"github.com/smalkov/raytracer/pkg/render"
	"github.com/smalkov/raytracer/pkg/transform"
)

// NewSpheres builds the sphere room: a floor and two walls made of
// flattened spheres, three shaded spheres in the middle, one light. Shadows
// fall across the floor.
func NewSpheres(width, height int) *Scene {
	floor := geometry.NewSphere()
	floor.SetTransform(transform.New(transform.Scale{X: 10, Y: 0.01, Z: 10}))
	floor.Material().Color = core.NewColor(1, 0.9, 0.9)
	floor.Material().Specular = 0

	leftWall := geometry.NewSphere()
	leftWall.SetTransform(transform.New(
		transform.Scale{X: 10, Y: 0.01, Z: 10},
		transform.RotateX{Radians: math.Pi / 2},
		transform.RotateY{Radians: -math.Pi / 4},
		transform.Translate{Z: 5},
	))
	leftWall.SetMaterial(*floor.Material())

	rightWall := geometry.NewSphere()
	rightWall.SetTransform(transform.New(
		transform.Scale{X: 10, Y: 0.01, Z: 10},
		transform.RotateX{Radians: math.Pi / 2},
		transform.RotateY{Radians: math.Pi / 4},
		transform.Translate{Z: 5},
	))
	rightWall.SetMaterial(*floor.Material())

	middle := geometry.NewSphere()
	middle.SetTransform(transform.New(transform.Translate{X: -0.5, Y: 1, Z: 0.5}))
	middle.Material().Color = core.NewColor(0.1, 1, 0.5)
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3

	right := geometry.NewSphere()
	right.SetTransform(transform.New(
		transform.Scale{X: 0.5, Y: 0.5, Z: 0.5},
		transform.Translate{X: 1.5, Y: 0.5, Z: -0.5},
	))
	right.Material().Color = core.NewColor(0.5, 1, 0.1)
	right.Material().Diffuse = 0.7
	right.Material().Specular = 0.3

	left := geometry.NewSphere()
	left.SetTransform(transform.New(
		transform.Scale{X: 0.33, Y: 0.33, Z: 0.33},
		transform.Translate{X: -1.5, Y: 0.33, Z: -0.75},
	))
	left.Material().Color = core.NewColor(1, 0.8, 0.1)
	left.Material().Diffuse = 0.7
	left.Material().Specular = 0.3

	w := render.NewWorld()
	w.Add(floor, leftWall, rightWall, middle, right, left)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	camera := render.NewCamera(width, height, math.Pi/3)
	camera.SetView(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{
		Name:       "spheres",
		World:      w,
		Camera:     camera,
		Background: core.Black(),
	}
}
