// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major, resizable float64 matrix with
// elementwise and scalar arithmetic, matrix products and division, structural
// transforms (transpose, minor extraction) and full cofactor algebra
// (Laplace determinant, adjugate, inversion).
//
// Design contract:
//
//   - Dense is a value-owning container: copies are deep, Swap transfers
//     ownership in O(1), and no two live matrices ever alias storage.
//   - Element access (At/Set) is UNCHECKED by design — it is used in tight
//     numeric loops and performs no bounds validation. Shape-level
//     preconditions (same shape, inner dimensions, squareness) are validated
//     loudly and reported via sentinel errors.
//   - Singularity is a routine, recoverable outcome: Inverse/Invert/Div report
//     ErrSingular instead of panicking, so callers may retry with new input.
//   - All kernels use fixed, deterministic loop orders; there is no global
//     state and no randomness anywhere in the package.
//
// Complexity: elementwise kernels are O(r*c); the product is O(r*n*c);
// determinant/adjugate/inverse use naive cofactor expansion and are O(n!)-ish
// in the recursion but are intended for the small (≤ 8×8) matrices this
// library targets, 4×4 color transforms above all.
package matrix
