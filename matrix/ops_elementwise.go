// SPDX-License-Identifier: MIT
// Package matrix: elementwise and scalar arithmetic kernels.
// All fresh-result kernels perform strict fail-fast validation and return
// clear sentinel errors on dimension mismatches. In-place variants mutate the
// receiver and return it for chaining; scalar variants cannot fail.

package matrix

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation and the flat
// loop.
//
// Stage 1 (Validate): ValidateSameShape(a, b).
// Stage 2 (Execute): single flat loop 0..n-1 over the backing slices.
// Determinism: fixed 0..(r*c−1) traversal.
// Complexity: O(r*c) time, O(r*c) space for the result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate the result directly; shape is known valid.
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}

	// Direct elementwise combination on backing slices.
	for idx := range a.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B and returns a fresh result.
// Inputs are never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B and returns a fresh result.
// Inputs are never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// AddInPlace adds b elementwise into the receiver (m += b).
// Errors: ErrNilMatrix, ErrDimensionMismatch; on error m is unchanged.
// Complexity: O(r*c).
func (m *Dense) AddInPlace(b *Dense) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for idx := range m.data {
		m.data[idx] += b.data[idx]
	}

	return nil
}

// SubInPlace subtracts b elementwise from the receiver (m -= b).
// Errors: ErrNilMatrix, ErrDimensionMismatch; on error m is unchanged.
// Complexity: O(r*c).
func (m *Dense) SubInPlace(b *Dense) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	for idx := range m.data {
		m.data[idx] -= b.data[idx]
	}

	return nil
}

// AddScalar adds v to every element in place and returns the receiver for
// chaining (fresh-result form: m.Clone().AddScalar(v)).
// Complexity: O(r*c).
func (m *Dense) AddScalar(v float64) *Dense {
	for idx := range m.data {
		m.data[idx] += v
	}

	return m
}

// SubScalar subtracts v from every element in place; returns the receiver.
// Complexity: O(r*c).
func (m *Dense) SubScalar(v float64) *Dense {
	for idx := range m.data {
		m.data[idx] -= v
	}

	return m
}

// MulScalar multiplies every element by v in place; returns the receiver.
// Complexity: O(r*c).
func (m *Dense) MulScalar(v float64) *Dense {
	for idx := range m.data {
		m.data[idx] *= v
	}

	return m
}

// DivScalar divides every element by v in place; returns the receiver.
// Division by zero is the caller's responsibility — consistent with the
// unchecked-access contract, the result simply propagates ±Inf/NaN.
// Complexity: O(r*c).
func (m *Dense) DivScalar(v float64) *Dense {
	for idx := range m.data {
		m.data[idx] /= v
	}

	return m
}
