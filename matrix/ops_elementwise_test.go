// Package matrix_test contains unit tests for elementwise and scalar
// arithmetic kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/chromatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddElementwise verifies the elementwise sum of two matrices.
func TestAddElementwise(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewFromRows([][]float64{{10, 20}, {30, 40}})
	require.NoError(t, err)

	sum, err := matrix.Add(a, b) // fresh-result sum
	require.NoError(t, err)

	want, _ := matrix.NewFromRows([][]float64{{11, 22}, {33, 44}})
	requireNear(t, want, sum)
	require.Equal(t, 1.0, a.At(0, 0)) // operand a is unmodified
}

// TestSubElementwise verifies the elementwise difference of two matrices.
func TestSubElementwise(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{5, 7}, {9, 11}})
	require.NoError(t, err)
	b, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	diff, err := matrix.Sub(a, b) // fresh-result difference
	require.NoError(t, err)

	want, _ := matrix.NewFromRows([][]float64{{4, 5}, {6, 7}})
	requireNear(t, want, diff)
}

// TestAddCommutativeAssociative checks A+B == B+A and (A+B)+C == A+(B+C).
func TestAddCommutativeAssociative(t *testing.T) {
	a, _ := matrix.NewFromRows([][]float64{{1.5, -2}, {0.25, 4}})
	b, _ := matrix.NewFromRows([][]float64{{3, 0.5}, {-1, 2}})
	c, _ := matrix.NewFromRows([][]float64{{-0.5, 7}, {2, -3}})

	ab, err := matrix.Add(a, b) // A+B
	require.NoError(t, err)
	ba, err := matrix.Add(b, a) // B+A
	require.NoError(t, err)
	requireNear(t, ab, ba) // commutativity

	abc1, err := matrix.Add(ab, c) // (A+B)+C
	require.NoError(t, err)
	bc, err := matrix.Add(b, c) // B+C
	require.NoError(t, err)
	abc2, err := matrix.Add(a, bc) // A+(B+C)
	require.NoError(t, err)
	requireNear(t, abc1, abc2) // associativity
}

// TestAddSubDimensionMismatch ensures differently shaped operands fail loudly.
func TestAddSubDimensionMismatch(t *testing.T) {
	a, _ := matrix.New(2, 3)
	b, _ := matrix.New(3, 2)

	_, err := matrix.Add(a, b)                            // mismatched shapes
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)  // expect sentinel

	_, err = matrix.Sub(a, b)                             // mismatched shapes
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)  // expect sentinel

	err = a.AddInPlace(b)                                 // in-place variant
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)  // same sentinel
	require.Equal(t, 1.0, a.At(0, 0))                     // a untouched on error
}

// TestAddSubNilOperand ensures nil operands are rejected with ErrNilMatrix.
func TestAddSubNilOperand(t *testing.T) {
	a, _ := matrix.New(2, 2)

	_, err := matrix.Add(a, nil) // nil right operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Sub(nil, a) // nil left operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInPlaceElementwise verifies AddInPlace/SubInPlace mutate the receiver.
func TestInPlaceElementwise(t *testing.T) {
	a, _ := matrix.NewFromRows([][]float64{{1, 1}, {1, 1}})
	b, _ := matrix.NewFromRows([][]float64{{2, 3}, {4, 5}})

	require.NoError(t, a.AddInPlace(b)) // a += b
	want, _ := matrix.NewFromRows([][]float64{{3, 4}, {5, 6}})
	requireNear(t, want, a)

	require.NoError(t, a.SubInPlace(b)) // a -= b restores the original
	want, _ = matrix.NewFromRows([][]float64{{1, 1}, {1, 1}})
	requireNear(t, want, a)
}

// TestScalarArithmetic verifies the four in-place scalar operations.
func TestScalarArithmetic(t *testing.T) {
	m, _ := matrix.NewFromRows([][]float64{{2, 4}, {6, 8}})

	m.AddScalar(1) // every element +1
	require.Equal(t, 3.0, m.At(0, 0))
	require.Equal(t, 9.0, m.At(1, 1))

	m.SubScalar(1) // undo
	m.MulScalar(0.5)
	require.Equal(t, 1.0, m.At(0, 0)) // halved
	require.Equal(t, 4.0, m.At(1, 1))

	m.DivScalar(0.5) // doubling restores the original
	require.Equal(t, 2.0, m.At(0, 0))
	require.Equal(t, 8.0, m.At(1, 1))
}

// TestScalarFreshResultViaClone checks the clone-then-mutate idiom leaves the
// source untouched.
func TestScalarFreshResultViaClone(t *testing.T) {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}})

	b := a.Clone().AddScalar(10) // fresh result: B = A + 10

	require.Equal(t, 11.0, b.At(0, 0)) // b carries the shifted values
	require.Equal(t, 1.0, a.At(0, 0))  // a is unmodified
}
