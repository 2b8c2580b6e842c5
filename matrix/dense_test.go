// Package matrix_test contains unit tests for Dense storage, construction
// and access in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/chromatrix/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute numeric tolerance shared by the package tests.
const tol = 1e-4

// requireNear asserts two matrices share a shape and agree elementwise
// within tol.
func requireNear(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows()) // shapes must agree on rows
	require.Equal(t, want.Cols(), got.Cols()) // shapes must agree on columns
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, want.At(i, j), got.At(i, j), tol, "element (%d,%d)", i, j)
		}
	}
}

// TestNewSquareIdentity verifies that New seeds a square matrix as the identity.
func TestNewSquareIdentity(t *testing.T) {
	m, err := matrix.New(3, 3) // create a 3x3 matrix
	require.NoError(t, err)    // assert creation succeeded

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				require.Equal(t, 1.0, m.At(i, j)) // diagonal must be 1
			} else {
				require.Equal(t, 0.0, m.At(i, j)) // off-diagonal must be 0
			}
		}
	}
}

// TestNewRectangularGeneralizedIdentity verifies the generalized identity for
// rectangular shapes: ones at (i,i) for i < min(rows, cols), zeros elsewhere.
func TestNewRectangularGeneralizedIdentity(t *testing.T) {
	m, err := matrix.New(2, 4) // create a 2x4 matrix
	require.NoError(t, err)    // assert creation succeeded

	require.Equal(t, 1.0, m.At(0, 0)) // (0,0) on the short diagonal
	require.Equal(t, 1.0, m.At(1, 1)) // (1,1) on the short diagonal
	require.Equal(t, 0.0, m.At(0, 1)) // off-diagonal is zero
	require.Equal(t, 0.0, m.At(1, 3)) // beyond the short diagonal is zero
}

// TestNewNegativeDimensions ensures New rejects negative dimensions.
func TestNewNegativeDimensions(t *testing.T) {
	_, err := matrix.New(-1, 3)                   // attempt with negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape)   // expect ErrBadShape

	_, err = matrix.New(3, -1)                    // attempt with negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape)   // expect ErrBadShape
}

// TestNewZeroDimensionCanonicalEmpty verifies a zero dimension collapses to 0x0.
func TestNewZeroDimensionCanonicalEmpty(t *testing.T) {
	m, err := matrix.New(0, 5) // zero rows
	require.NoError(t, err)    // zero dimensions are legal
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols()) // both dimensions collapse to zero

	m, err = matrix.New(5, 0) // zero columns
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows()) // both dimensions collapse to zero
	require.Equal(t, 0, m.Cols())
}

// TestZeroValueIsEmpty ensures the zero value behaves as the empty matrix.
func TestZeroValueIsEmpty(t *testing.T) {
	var m matrix.Dense            // zero value, no constructor
	require.Equal(t, 0, m.Rows()) // no rows
	require.Equal(t, 0, m.Cols()) // no columns
	require.Equal(t, "", m.String())
}

// TestNewFromRows verifies literal construction and ragged-input rejection.
func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 3.0, m.At(1, 0)) // row-major order preserved

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}}) // ragged rows
	require.ErrorIs(t, err, matrix.ErrBadShape)           // expect ErrBadShape
}

// TestSetAt validates Set followed by At on valid indices.
func TestSetAt(t *testing.T) {
	m, err := matrix.New(2, 3) // create a 2x3 matrix
	require.NoError(t, err)

	m.Set(1, 2, 7.89)                  // set element at row 1, column 2
	require.Equal(t, 7.89, m.At(1, 2)) // retrieved value matches set value
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.New(2, 2) // create a 2x2 matrix
	require.NoError(t, err)
	m.Set(0, 1, 5.0) // distinguish from the identity

	clone := m.Clone() // deep copy
	clone.Set(0, 1, 9.0)

	require.Equal(t, 5.0, m.At(0, 1))     // original remains unchanged
	require.Equal(t, 9.0, clone.At(0, 1)) // clone reflects the new value
}

// TestSwapExchangesState ensures Swap exchanges dimensions and storage without copying.
func TestSwapExchangesState(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2, 3}}) // 1x3
	require.NoError(t, err)
	b, err := matrix.NewFromRows([][]float64{{4}, {5}}) // 2x1
	require.NoError(t, err)

	a.Swap(b) // exchange internal state

	require.Equal(t, 2, a.Rows()) // a now has b's shape
	require.Equal(t, 1, a.Cols())
	require.Equal(t, 4.0, a.At(0, 0)) // ...and b's elements
	require.Equal(t, 1, b.Rows())     // b now has a's shape
	require.Equal(t, 3, b.Cols())
	require.Equal(t, 3.0, b.At(0, 2)) // ...and a's elements
}

// TestZeroClearsWithoutResizing ensures Zero wipes elements but keeps the shape.
func TestZeroClearsWithoutResizing(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	m.Zero() // clear in place

	require.Equal(t, 2, m.Rows()) // shape unchanged
	require.Equal(t, 2, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, 0.0, m.At(i, j)) // every element is zero
		}
	}
}

// TestStringOutput checks that String formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	expected := "[1, 2]\n[3, 4]\n"         // one bracketed row per line
	require.Equal(t, expected, m.String()) // String output matches
}
