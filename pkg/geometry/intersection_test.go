package geometry

import (
	"testing"

	"github.com/smalkov/raytracer/pkg/core"
)

func TestNewIntersections_Sorted(t *testing.T) {
	s := NewSphere()
	xs := NewIntersections(s, 5, -3, 2, 7)

	expected := []float64{-3, 2, 5, 7}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, want := range expected {
		if !core.FloatEquals(xs[i].T, want) {
			t.Errorf("Intersection %d: expected t=%f, got t=%f", i, want, xs[i].T)
		}
		if xs[i].Object != s {
			t.Errorf("Intersection %d references the wrong shape", i)
		}
	}
}

func TestCombine(t *testing.T) {
	a := NewSphere()
	b := NewSphere()

	xs := Combine(NewIntersections(a, 4, 6), NewIntersections(b, 1, 5))

	expected := []float64{1, 4, 5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, want := range expected {
		if !core.FloatEquals(xs[i].T, want) {
			t.Errorf("Intersection %d: expected t=%f, got t=%f", i, want, xs[i].T)
		}
	}
}

func TestIntersections_Contains(t *testing.T) {
	xs := NewIntersections(NewSphere(), 1, 2)

	if !xs.Contains(1) || !xs.Contains(2) {
		t.Errorf("Expected collection to contain 1 and 2: %v", xs)
	}
	if xs.Contains(3) {
		t.Errorf("Collection should not contain 3: %v", xs)
	}
	// tolerance comparison
	if !xs.Contains(1.00001) {
		t.Errorf("Expected 1.00001 to match within tolerance")
	}
}

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name     string
		ts       []float64
		expected float64
		ok       bool
	}{
		{
			name:     "all positive takes the smallest",
			ts:       []float64{1, 2},
			expected: 1,
			ok:       true,
		},
		{
			name:     "negative roots are skipped",
			ts:       []float64{-1, 1},
			expected: 1,
			ok:       true,
		},
		{
			name: "all negative has no hit",
			ts:   []float64{-2, -1},
			ok:   false,
		},
		{
			name:     "smallest non-negative wins regardless of order",
			ts:       []float64{5, 7, -3, 2},
			expected: 2,
			ok:       true,
		},
		{
			name:     "a surface touched at t=0 is visible",
			ts:       []float64{-1, 0},
			expected: 0,
			ok:       true,
		},
		{
			name: "empty collection has no hit",
			ts:   nil,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := NewIntersections(s, tt.ts...).Hit()
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got ok=%v", tt.ok, ok)
			}
			if ok && !core.FloatEquals(hit.T, tt.expected) {
				t.Errorf("Expected hit at t=%f, got t=%f", tt.expected, hit.T)
			}
		})
	}
}
