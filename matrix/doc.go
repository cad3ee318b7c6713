// SPDX-License-Identifier: MIT

// Package matrix provides dense matrices over the field of rational numbers
// together with the exact linear-algebra kernels needed by absorbing-chain
// analysis.
//
// What
//
//   - Dense: a row-major r×c matrix of *big.Rat values.
//   - Constructors: NewDense (zeros), NewIdentity, NewFromRows, NewFromInt64s.
//   - Kernels: Add, Sub, Mul, Scale, Solve (A·X = B), Inverse.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSameShape,
//     ValidateMulCompatible and their composites.
//
// Why
//
//	Floating-point elimination silently accumulates rounding error. Every value
//	here is an arbitrary-precision numerator/denominator pair kept in lowest
//	terms by math/big, so a solve is either exactly right or reports
//	ErrSingular. There is no tolerance and no epsilon anywhere in the package.
//
// Value semantics
//
//	At returns a fresh copy of the stored value and Set stores a copy of its
//	argument. Callers may freely mutate what they pass in or get back without
//	aliasing the matrix storage. Kernels never mutate their operands.
//
// Errors
//
//	All failures are package sentinels (errors.go) wrapped with the operation
//	tag, e.g. "Solve: matrix: singular matrix". Match with errors.Is.
//
// Complexity
//
//   - Add/Sub/Scale: O(r·c) rational operations.
//   - Mul: O(r·n·c).
//   - Solve: O(n²·(n+m)) for an n×n system with m right-hand sides.
//
// Rational operations are not O(1): their cost grows with the bit length of
// numerators and denominators. For the intended sizes (tens to low hundreds
// of states) this is negligible.
package matrix
