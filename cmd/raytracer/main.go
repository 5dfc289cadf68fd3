// raytracer - offline Phong ray tracer
// Renders built-in scenes of analytic shapes to PPM image files.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/smalkov/raytracer/pkg/render"
	"github.com/smalkov/raytracer/pkg/scene"
)

var (
	sceneName string
	width     int
	height    int
	outPath   string
	workers   int
	quiet     bool
)

func main() {
	root := &cobra.Command{
		Use:   "raytracer",
		Short: "Offline Phong ray tracer",
		Long: `raytracer - offline Phong ray tracer

Casts one primary ray per pixel against a scene of analytic shapes and
shades hits with the Phong reflection model, including shadows. Output is
an ASCII PPM (P3) image.`,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a built-in scene to a PPM file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender()
		},
	}
	renderCmd.Flags().StringVar(&sceneName, "scene", "spheres", "Scene to render (see 'raytracer scenes')")
	renderCmd.Flags().IntVar(&width, "width", 1000, "Image width in pixels")
	renderCmd.Flags().IntVar(&height, "height", 500, "Image height in pixels")
	renderCmd.Flags().StringVar(&outPath, "out", "render.ppm", "Output PPM file path")
	renderCmd.Flags().IntVar(&workers, "workers", 0, "Row workers (0 = one per CPU)")
	renderCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress progress output")
	root.AddCommand(renderCmd)

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scene.Names() {
				fmt.Println(name)
			}
		},
	}
	root.AddCommand(scenesCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender() error {
	sc, err := scene.New(sceneName, width, height)
	if err != nil {
		return err
	}

	r := render.NewRenderer(sc.World, sc.Camera, sc.Background)
	r.NumWorkers = workers
	if !quiet {
		r.Log = log.New(os.Stderr, "raytracer: ", log.LstdFlags)
	}

	if err := r.Render(); err != nil {
		return fmt.Errorf("render scene %q: %w", sceneName, err)
	}
	if err := r.DrawMarkers(sc.Markers...); err != nil {
		return fmt.Errorf("render scene %q: %w", sceneName, err)
	}

	if err := r.Canvas().SavePPM(outPath); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "raytracer: saved %s\n", outPath)
	}
	return nil
}
