package render

import (
	"fmt"
	"math"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/transform"
)

// Camera maps pixel coordinates to world-space rays given a field of view
// and a view transform
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Matrix
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera for a hsize x vsize image with the given
// field of view in radians. The view transform starts as the identity.
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fov,
		transform:   core.Identity(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// PixelSize returns the world-space size of one pixel
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// Transform returns the view transform matrix
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform replaces the view transform matrix
func (c *Camera) SetTransform(m core.Matrix) {
	c.transform = m
}

// SetView derives the view transform from the eye position, the look-at
// target and the up vector
func (c *Camera) SetView(from, to, up core.Tuple) {
	c.transform = ViewTransform(from, to, up)
}

// ViewTransform builds the matrix mapping world space into camera space:
// an orientation from {left, trueUp, -forward} composed with a translation
// by -from
func ViewTransform(from, to, up core.Tuple) core.Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := core.NewMatrix(
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(transform.Translate{X: -from.X, Y: -from.Y, Z: -from.Z}.Matrix())
}

// RayForPixel returns the world-space ray through the center of pixel
// (x, y). Fails when the view transform is not invertible.
func (c *Camera) RayForPixel(x, y int) (core.Ray, error) {
	inv, err := c.transform.Inverse()
	if err != nil {
		return core.Ray{}, fmt.Errorf("camera view transform: %w", err)
	}

	// offsets from the canvas edge to the pixel center
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// untransformed world coordinates of the pixel; the camera looks
	// toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := inv.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := inv.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction), nil
}
