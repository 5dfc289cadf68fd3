package render

import (
	"runtime"
	"sync"
	"time"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/geometry"
)

// Logger is the minimal logging surface the renderer reports through
type Logger interface {
	Printf(format string, args ...interface{})
}

// Renderer iterates every pixel, delegates to the world and camera, and
// writes the resulting colors into its canvas.
type Renderer struct {
	World      *World
	Camera     *Camera
	Background core.Color

	// NumWorkers is the number of row workers; <= 0 means one per CPU
	NumWorkers int
	// Log receives render progress when set
	Log Logger

	canvas *Canvas
}

// NewRenderer creates a renderer with a canvas sized to the camera
func NewRenderer(world *World, camera *Camera, background core.Color) *Renderer {
	r := &Renderer{
		World:      world,
		Camera:     camera,
		Background: background,
		canvas:     NewCanvas(camera.HSize, camera.VSize),
	}
	r.canvas.Reset(background)
	return r
}

// Canvas returns the render target
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Render traces one primary ray per pixel. Rows are distributed across
// workers; every pixel reads only immutable scene state and each worker
// writes disjoint canvas rows, so no locking is needed. The first error
// aborts the render.
func (r *Renderer) Render() error {
	workers := r.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()

	rows := make(chan int, r.Camera.VSize)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				if err := r.renderRow(y); err != nil {
					// keep the first error, drop the rest
					select {
					case errs <- err:
					default:
					}
					return
				}
			}
		}()
	}

	for y := 0; y < r.Camera.VSize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	select {
	case err := <-errs:
		return err
	default:
	}

	if r.Log != nil {
		r.Log.Printf("rendered %dx%d with %d workers in %v",
			r.Camera.HSize, r.Camera.VSize, workers, time.Since(start))
	}
	return nil
}

// renderRow shades every pixel of one canvas row
func (r *Renderer) renderRow(y int) error {
	for x := 0; x < r.Camera.HSize; x++ {
		ray, err := r.Camera.RayForPixel(x, y)
		if err != nil {
			return err
		}
		col, err := r.World.ColorAt(ray, r.Background)
		if err != nil {
			return err
		}
		if err := r.canvas.Write(x, y, col); err != nil {
			return err
		}
	}
	return nil
}

// DrawMarkers draws point markers directly onto the canvas, bypassing ray
// casting
func (r *Renderer) DrawMarkers(markers ...*geometry.PointMarker) error {
	for _, m := range markers {
		if err := m.Draw(r.canvas); err != nil {
			return err
		}
	}
	return nil
}
