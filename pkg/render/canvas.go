package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smalkov/raytracer/pkg/core"
)

// Canvas is a row-major pixel buffer of colors
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas with the given dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Write sets the pixel at (x, y). Writing out of bounds is a programming
// error and is reported, not recovered.
func (c *Canvas) Write(x, y int, col core.Color) error {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return fmt.Errorf("canvas write at (%d, %d) outside %dx%d", x, y, c.Width, c.Height)
	}
	c.pixels[y*c.Width+x] = col
	return nil
}

// At returns the pixel at (x, y)
func (c *Canvas) At(x, y int) (core.Color, error) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return core.Color{}, fmt.Errorf("canvas read at (%d, %d) outside %dx%d", x, y, c.Width, c.Height)
	}
	return c.pixels[y*c.Width+x], nil
}

// Reset fills every pixel with the background color
func (c *Canvas) Reset(bg core.Color) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// PPM encodes the canvas in the ASCII "P3" PPM flavor: one canvas row per
// line, channels clamped to 0-255, trailing whitespace trimmed. Identical
// pixel data always yields identical output.
func (c *Canvas) PPM() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P3\n%d %d\n255\n", c.Width, c.Height)

	var row strings.Builder
	for y := 0; y < c.Height; y++ {
		row.Reset()
		for x := 0; x < c.Width; x++ {
			r, g, b := c.pixels[y*c.Width+x].PPM()
			fmt.Fprintf(&row, "%d %d %d ", r, g, b)
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WritePPM writes the PPM encoding to w
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := io.WriteString(w, c.PPM()); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}

// SavePPM writes the PPM encoding to a file
func (c *Canvas) SavePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save ppm: %w", err)
	}
	defer f.Close()

	if err := c.WritePPM(f); err != nil {
		return err
	}
	return f.Close()
}
