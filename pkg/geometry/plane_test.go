package geometry

import (
	"testing"

	"github.com/smalkov/raytracer/pkg/core"
)

func TestPlane_LocalNormalAt(t *testing.T) {
	p := NewPlane()

	points := []core.Tuple{
		core.NewPoint(0, 0, 0),
		core.NewPoint(10, 0, -10),
		core.NewPoint(-5, 0, 150),
	}
	for _, pt := range points {
		if got := p.LocalNormalAt(pt); !got.Equals(core.NewVector(0, 1, 0)) {
			t.Errorf("Normal at %+v: expected (0, 1, 0), got %+v", pt, got)
		}
	}
}

func TestPlane_LocalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		ray      core.Ray
		expected []float64
	}{
		{
			name:     "parallel ray never hits",
			ray:      core.NewRay(core.NewPoint(0, 10, 0), core.NewVector(0, 0, 1)),
			expected: nil,
		},
		{
			name:     "coplanar ray never hits",
			ray:      core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1)),
			expected: nil,
		},
		{
			name:     "ray from above",
			ray:      core.NewRay(core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)),
			expected: []float64{1},
		},
		{
			name:     "ray from below",
			ray:      core.NewRay(core.NewPoint(0, -1, 0), core.NewVector(0, 1, 0)),
			expected: []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPlane().LocalIntersect(tt.ray)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d roots, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if !core.FloatEquals(got[i], tt.expected[i]) {
					t.Errorf("Root %d: expected %f, got %f", i, tt.expected[i], got[i])
				}
			}
		})
	}
}
