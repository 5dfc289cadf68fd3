package core

import "math"

// Color is an RGB triple. Channels are unbounded reals during shading;
// clamping to displayable range happens only at serialization time.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from three channel values
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the black color
func Black() Color {
	return Color{}
}

// White returns the white color
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Divide returns the color divided by a scalar. A near-zero divisor is an
// error rather than a silent infinity.
func (c Color) Divide(scalar float64) (Color, error) {
	if math.Abs(scalar) < Epsilon {
		return Color{}, ErrDivideByZero
	}
	return c.Multiply(1 / scalar), nil
}

// Blend returns the channel-wise (Schur) product of two colors
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals compares two colors channel-wise with Epsilon tolerance
func (c Color) Equals(other Color) bool {
	return FloatEquals(c.R, other.R) &&
		FloatEquals(c.G, other.G) &&
		FloatEquals(c.B, other.B)
}

// channel converts one real-valued channel to the 0-255 integer range
func channel(v float64) int {
	if v > 1 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(math.Round(v * 255))
}

// PPM returns the three channels converted to the 0-255 integer range used
// by the PPM encoder
func (c Color) PPM() (r, g, b int) {
	return channel(c.R), channel(c.G), channel(c.B)
}
