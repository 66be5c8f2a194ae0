// SPDX-License-Identifier: MIT

// Package expr - Transpose: lazy transposition view.
//
// Purpose:
//   - Present the child with rows and columns swapped, without materializing.
//   - Index map is the coordinate swap; no arithmetic beyond it.
//
// AI-Hints:
//   - Transposing twice yields a view that reads identically to the child;
//     Eval either one for a concrete Dense.

package expr

import "fmt"

const opNewTranspose = "NewTranspose"

// Transpose is a read-only view reading (row, col) as child (col, row).
type Transpose struct {
	src              Expr   // borrowed child expression
	srcRows, srcCols int    // child extents captured at construction
	traits           Traits // cached descriptor (transposeTraits)
}

var _ Expr = (*Transpose)(nil)

// NewTranspose builds a lazy transpose over src.
// Implementation:
//   - Stage 1: ValidateExpr (non-nil source).
//   - Stage 2: capture extents, cache the descriptor (extents swapped,
//     row-major bit toggled, cost inherited).
//
// Errors:
//   - ErrNilExpr.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewTranspose(src Expr) (*Transpose, error) {
	if err := ValidateExpr(src); err != nil {
		return nil, exprErrorf(opNewTranspose, err)
	}

	return &Transpose{
		src:     src,
		srcRows: src.Rows(),
		srcCols: src.Cols(),
		traits:  transposeTraits(src.Traits()),
	}, nil
}

// Rows returns the child's column count. Complexity: O(1).
func (t *Transpose) Rows() int { return t.srcCols }

// Cols returns the child's row count. Complexity: O(1).
func (t *Transpose) Cols() int { return t.srcRows }

// Source returns the borrowed child expression. Complexity: O(1).
func (t *Transpose) Source() Expr { return t.src }

// Traits returns the cached descriptor. Complexity: O(1).
func (t *Transpose) Traits() Traits { return t.traits }

// Coeff reads the child at swapped coordinates. Contract accessor: caller
// guarantees 0 <= row < Rows(), 0 <= col < Cols().
// Complexity: O(1) + child read cost.
func (t *Transpose) Coeff(row, col int) float64 {
	return t.src.Coeff(col, row)
}

// At returns the element at (row, col) or ErrOutOfRange (wrapped with context).
// Complexity: O(1) + child read cost.
func (t *Transpose) At(row, col int) (float64, error) {
	if err := ValidateIndex(row, col, t.Rows(), t.Cols()); err != nil {
		return 0, fmt.Errorf("Transpose.At(%d,%d): %w", row, col, err)
	}

	return t.Coeff(row, col), nil
}
