package geometry

import (
	"fmt"
	"math"

	"github.com/smalkov/raytracer/pkg/core"
)

// PixelWriter is the canvas surface a marker draws onto
type PixelWriter interface {
	// Write sets the pixel at (x, y); out of bounds is an error
	Write(x, y int, c core.Color) error
}

// PointMarker is a single positioned dot drawn directly onto the canvas
// through its transform. Markers are invisible to rays; they exist for
// diagram-style scenes such as the clock face.
type PointMarker struct {
	Shape
	Position core.Tuple
}

// NewPointMarker creates a marker at (x, y, z) with the given color
func NewPointMarker(x, y, z float64, col core.Color) *PointMarker {
	m := &PointMarker{
		Shape:    NewShape(),
		Position: core.NewPoint(x, y, z),
	}
	m.Material().Color = col
	return m
}

// LocalNormalAt returns the zero vector; markers have no surface
func (m *PointMarker) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 0, 0)
}

// LocalIntersect returns no intersections; markers are not ray-visible
func (m *PointMarker) LocalIntersect(core.Ray) []float64 {
	return nil
}

// Draw writes the marker's transformed position onto the canvas
func (m *PointMarker) Draw(cv PixelWriter) error {
	p := m.Transform().Matrix().MultiplyTuple(m.Position)
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	if err := cv.Write(x, y, m.Material().Color); err != nil {
		return fmt.Errorf("draw marker at (%d, %d): %w", x, y, err)
	}
	return nil
}
