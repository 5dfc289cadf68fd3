package core

import (
	"errors"
	"testing"
)

func TestColor_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{
			name:     "adding colors",
			got:      NewColor(0.9, 0.6, 0.75).Add(NewColor(0.7, 0.1, 0.25)),
			expected: NewColor(1.6, 0.7, 1.0),
		},
		{
			name:     "subtracting colors",
			got:      NewColor(0.9, 0.6, 0.75).Subtract(NewColor(0.7, 0.1, 0.25)),
			expected: NewColor(0.2, 0.5, 0.5),
		},
		{
			name:     "multiplying by a scalar",
			got:      NewColor(0.2, 0.3, 0.4).Multiply(2),
			expected: NewColor(0.4, 0.6, 0.8),
		},
		{
			name:     "blending colors",
			got:      NewColor(1, 0.2, 0.4).Blend(NewColor(0.9, 1, 0.1)),
			expected: NewColor(0.9, 0.2, 0.04),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, tt.got)
			}
		})
	}
}

func TestColor_Divide(t *testing.T) {
	got, err := NewColor(0.4, 0.6, 0.8).Divide(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !got.Equals(NewColor(0.2, 0.3, 0.4)) {
		t.Errorf("Expected (0.2, 0.3, 0.4), got %+v", got)
	}

	if _, err := NewColor(1, 1, 1).Divide(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Expected ErrDivideByZero, got %v", err)
	}
}

func TestColor_PPM(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b int
	}{
		{"in-range channels round", NewColor(0.5, 0.25, 0.75), 128, 64, 191},
		{"channels above one clamp to 255", NewColor(1.5, 1, 2), 255, 255, 255},
		{"negative channels clamp to zero", NewColor(-0.5, -1, 0), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.PPM()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d, %d, %d), got (%d, %d, %d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}
