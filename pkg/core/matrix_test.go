package core

import (
	"errors"
	"testing"
)

func TestMatrix_Multiply(t *testing.T) {
	a := NewMatrix(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := NewMatrix(
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	)
	expected := NewMatrix(
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	)

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	a := NewMatrix(
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	)

	if got := a.MultiplyTuple(NewTuple(1, 2, 3, 1)); !got.Equals(NewTuple(18, 24, 33, 1)) {
		t.Errorf("Expected (18, 24, 33, 1), got %+v", got)
	}
}

func TestMatrix_Identity(t *testing.T) {
	a := NewMatrix(
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	)

	if got := a.Multiply(Identity()); !got.Equals(a) {
		t.Errorf("Multiplying by identity changed the matrix: %v", got)
	}
	if got := Identity().MultiplyTuple(NewTuple(1, 2, 3, 4)); !got.Equals(NewTuple(1, 2, 3, 4)) {
		t.Errorf("Identity changed a tuple: %+v", got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	a := NewMatrix(
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	)
	expected := NewMatrix(
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 8,
	)

	if got := a.Transpose(); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Errorf("Transposed identity is not identity: %v", got)
	}
}

func TestMatrix_Determinant(t *testing.T) {
	a := NewMatrix(
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	)

	if got := a.Determinant(); !FloatEquals(got, -4071) {
		t.Errorf("Expected determinant -4071, got %f", got)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix
		expected Matrix
	}{
		{
			name: "first known inverse",
			m: NewMatrix(
				8, -5, 9, 2,
				7, 5, 6, 1,
				-6, 0, 9, 6,
				-3, 0, -9, -4,
			),
			expected: NewMatrix(
				-0.15385, -0.15385, -0.28205, -0.53846,
				-0.07692, 0.12308, 0.02564, 0.03077,
				0.35897, 0.35897, 0.43590, 0.92308,
				-0.69231, -0.69231, -0.76923, -1.92308,
			),
		},
		{
			name: "second known inverse",
			m: NewMatrix(
				9, 3, 0, 9,
				-5, -2, -6, -3,
				-4, 9, 6, 4,
				-7, 6, 6, 2,
			),
			expected: NewMatrix(
				-0.04074, -0.07778, 0.14444, -0.22222,
				-0.07778, 0.03333, 0.36667, -0.33333,
				-0.02901, -0.14630, -0.10926, 0.12963,
				0.17778, 0.06667, -0.26667, 0.33333,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverse()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !inv.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, inv)
			}

			// multiplying by the inverse restores the identity
			if got := tt.m.Multiply(inv); !got.Equals(Identity()) {
				t.Errorf("m * m^-1 is not identity: %v", got)
			}
		})
	}
}

func TestMatrix_Inverse_Singular(t *testing.T) {
	singular := NewMatrix(
		-4, 2, -2, -3,
		9, 6, 2, 6,
		0, -5, 1, -5,
		0, 0, 0, 0,
	)

	if _, err := singular.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}
}
