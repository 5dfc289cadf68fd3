package core

import "math"

// Matrix is a 4x4 matrix stored row-major as a flat array
type Matrix [16]float64

// NewMatrix creates a matrix from sixteen row-major entries
func NewMatrix(entries ...float64) Matrix {
	var m Matrix
	copy(m[:], entries)
	return m
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the entry at the given row and column
func (m Matrix) At(row, col int) float64 {
	return m[row*4+col]
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			result[row*4+col] = sum
		}
	}
	return result
}

// MultiplyTuple applies the matrix to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0]*t.X + m[1]*t.Y + m[2]*t.Z + m[3]*t.W,
		Y: m[4]*t.X + m[5]*t.Y + m[6]*t.Z + m[7]*t.W,
		Z: m[8]*t.X + m[9]*t.Y + m[10]*t.Z + m[11]*t.W,
		W: m[12]*t.X + m[13]*t.Y + m[14]*t.Z + m[15]*t.W,
	}
}

// Transpose returns the transposed matrix
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col*4+row] = m[row*4+col]
		}
	}
	return result
}

// submatrix returns the 3x3 matrix left after removing a row and column
func (m Matrix) submatrix(row, col int) [9]float64 {
	var sub [9]float64
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			sub[i] = m[r*4+c]
			i++
		}
	}
	return sub
}

// det3 returns the determinant of a 3x3 matrix stored row-major
func det3(s [9]float64) float64 {
	return s[0]*(s[4]*s[8]-s[5]*s[7]) -
		s[1]*(s[3]*s[8]-s[5]*s[6]) +
		s[2]*(s[3]*s[7]-s[4]*s[6])
}

// cofactor returns the signed minor for the given row and column
func (m Matrix) cofactor(row, col int) float64 {
	minor := det3(m.submatrix(row, col))
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant of the matrix
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse of the matrix, or ErrSingularMatrix when the
// determinant is numerically zero (a degenerate scale being the usual cause).
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, ErrSingularMatrix
	}

	// adjugate divided by the determinant; the row/col swap transposes
	var inv Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inv[col*4+row] = m.cofactor(row, col) / det
		}
	}
	return inv, nil
}

// Equals compares two matrices element-wise with Epsilon tolerance
func (m Matrix) Equals(other Matrix) bool {
	for i := range m {
		if !FloatEquals(m[i], other[i]) {
			return false
		}
	}
	return true
}
