package scene

import (
	"math"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/geometry"
	"github.com/smalkov/raytracer/pkg/render"
	"github.com/smalkov/raytracer/pkg/transform"
)

// NewClock places twelve point markers on a clock face. The markers are
// drawn directly onto the canvas through their composed transforms; no ray
// casting is involved, so the world stays empty.
func NewClock(width, height int) *Scene {
	cx := float64(width) / 2
	cy := float64(height) / 2
	radius := math.Min(cx, cy) / 2

	markers := make([]*geometry.PointMarker, 0, 12)
	for i := 0; i < 12; i++ {
		m := geometry.NewPointMarker(0, 0, 0, core.NewColor(0.5, 0.5, 0.5))
		m.SetTransform(transform.New(
			transform.Translate{X: radius},
			transform.RotateZ{Radians: float64(i) * math.Pi / 6},
			transform.Translate{X: cx, Y: cy},
		))
		markers = append(markers, m)
	}

	return &Scene{
		Name:       "clock",
		World:      render.NewWorld(),
		Camera:     render.NewCamera(width, height, math.Pi/2),
		Background: core.NewColor(0.2, 0.2, 0.2),
		Markers:    markers,
	}
}
