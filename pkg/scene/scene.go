// Package scene provides ready-made scene constructors: the default
// two-sphere test world plus the demo scenes.
package scene

import (
	"fmt"
	"sort"

	"github.com/smalkov/raytracer/pkg/core"
	"github.com/smalkov/raytracer/pkg/geometry"
	"github.com/smalkov/raytracer/pkg/render"
)

// Scene bundles everything a render needs: the world, the camera, the
// background color and any point markers drawn on top.
type Scene struct {
	Name       string
	World      *render.World
	Camera     *render.Camera
	Background core.Color
	Markers    []*geometry.PointMarker
}

// constructors maps scene names to their builders
var constructors = map[string]func(width, height int) *Scene{
	"default":  NewDefault,
	"spheres":  NewSpheres,
	"patterns": NewPatterns,
	"clock":    NewClock,
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene at the given canvas size
func New(name string, width, height int) (*Scene, error) {
	build, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(width, height), nil
}
