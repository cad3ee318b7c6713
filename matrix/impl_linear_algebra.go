// SPDX-License-Identifier: MIT
// Package matrix provides exact linear-algebra kernels over any Matrix
// implementation: element-wise addition and subtraction, multiplication,
// scalar scaling, and Gauss–Jordan solving. All functions perform strict
// fail-fast validation and return tagged sentinel errors.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opScale   = "Scale"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (sub == false) or a − b (sub == true).
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Normalise both to *Dense.
//   - Stage 2: Single flat loop 0..r*c-1.
//
// Complexity:
//   - Time O(r*c) rational additions, Space O(r*c).
func addSub(a, b Matrix, sub bool, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		if sub {
			res.data[idx].Sub(da.data[idx], db.data[idx])
		} else {
			res.data[idx].Add(da.data[idx], db.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, true, opSub) }

// Mul computes the matrix product C = A·B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate r×c result.
//   - Stage 2: i→k→j loop skipping zero A[i,k], accumulating with one scratch Rat.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] matters for sparse
//     transition matrices, which are the common case here.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 *big.Rat
		rowOffsetA, rowOffsetB, rowOffsetR int
		prod                               = new(big.Rat)
	)
	for i = 0; i < da.r; i++ {
		rowOffsetA = i * da.c
		rowOffsetR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[rowOffsetA+k]
			if av.Sign() == 0 {
				continue
			}
			rowOffsetB = k * db.c
			for j = 0; j < db.c; j++ {
				prod.Mul(av, db.data[rowOffsetB+j])
				res.data[rowOffsetR+j].Add(res.data[rowOffsetR+j], prod)
			}
		}
	}

	return res, nil
}

// Scale returns alpha·M as a fresh Dense.
// Errors: ErrNilMatrix, ErrNilValue (alpha == nil).
func Scale(m Matrix, alpha *big.Rat) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if alpha == nil {
		return nil, matrixErrorf(opScale, ErrNilValue)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.cloneDense()
	for _, v := range res.data {
		v.Mul(v, alpha)
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical values.
// Nil operands are never equal to anything.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := toDense(a)
	if err != nil {
		return false
	}
	db, err := toDense(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if da.data[idx].Cmp(db.data[idx]) != 0 {
			return false
		}
	}

	return true
}

// Solve returns X such that A·X = B, computed by exact Gauss–Jordan elimination.
//
// Implementation:
//   - Stage 1: ValidateSolvable(a, b); clone both into private working copies.
//   - Stage 2: For each column k, pick the first row r ≥ k with A[r,k] ≠ 0,
//     swap it into place, normalise the pivot row, then eliminate column k
//     from every other row of A and the same combination from X.
//   - Stage 3: A has become I, so the working copy of B holds X.
//
// Behavior highlights:
//   - Exact: the only reason to pivot is a structural zero, so the first
//     non-zero candidate is as good as any other.
//   - Operands are never mutated.
//
// Inputs:
//   - a: n×n coefficient matrix.
//   - b: n×m right-hand sides (m ≥ 1).
//
// Returns:
//   - *Dense: n×m solution X.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (validation).
//   - ErrSingular when some column has no non-zero pivot below the diagonal,
//     i.e. A is not invertible.
//
// Determinism:
//   - Fixed pivot rule and loop order, so identical inputs give identical
//     intermediate and final values.
//
// Complexity:
//   - Time O(n²·(n+m)) rational operations, Space O(n·(n+m)).
func Solve(a, b Matrix) (*Dense, error) {
	if err := ValidateSolvable(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	A := da.cloneDense()
	X := db.cloneDense()

	n, m := A.r, X.c
	var (
		col, r, k int
		pivotRow  int
		factor    = new(big.Rat)
		inv       = new(big.Rat)
		prod      = new(big.Rat)
	)
	for col = 0; col < n; col++ {
		// Find the first non-zero pivot candidate.
		pivotRow = -1
		for r = col; r < n; r++ {
			if A.data[r*n+col].Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", col, ErrSingular))
		}
		if pivotRow != col {
			A.swapRows(pivotRow, col)
			X.swapRows(pivotRow, col)
		}

		// Normalise the pivot row so A[col,col] == 1.
		inv.Inv(A.data[col*n+col])
		for k = col; k < n; k++ {
			A.data[col*n+k].Mul(A.data[col*n+k], inv)
		}
		for k = 0; k < m; k++ {
			X.data[col*m+k].Mul(X.data[col*m+k], inv)
		}

		// Eliminate column col from all other rows.
		for r = 0; r < n; r++ {
			if r == col || A.data[r*n+col].Sign() == 0 {
				continue
			}
			factor.Set(A.data[r*n+col])
			for k = col; k < n; k++ {
				prod.Mul(factor, A.data[col*n+k])
				A.data[r*n+k].Sub(A.data[r*n+k], prod)
			}
			for k = 0; k < m; k++ {
				prod.Mul(factor, X.data[col*m+k])
				X.data[r*m+k].Sub(X.data[r*m+k], prod)
			}
		}
	}

	return X, nil
}

// Inverse returns A⁻¹ by solving A·X = I.
// Errors: as Solve; ErrSingular for non-invertible A.
func Inverse(a Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id, err := NewIdentity(a.Rows())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	x, err := Solve(a, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return x, nil
}

// swapRows exchanges rows i and j in place. Pointers are swapped, not values.
func (m *Dense) swapRows(i, j int) {
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}
}
