// SPDX-License-Identifier: MIT

// Package expr - Scale: lazy scalar-multiply view.
//
// Purpose:
//   - Present alpha·child element-for-element, without materializing.
//   - Identity index map: the only work per read is one multiplication, which
//     is exactly what the cached cost reports (child cost + CostMul).
//
// AI-Hints:
//   - NewScale rejects non-finite alpha up front; a NaN factor would silently
//     poison every downstream read otherwise.

package expr

import (
	"fmt"
	"math"
)

const opNewScale = "NewScale"

// Scale is a read-only view reading (row, col) as alpha * child(row, col).
type Scale struct {
	src              Expr    // borrowed child expression
	alpha            float64 // finite scalar factor
	srcRows, srcCols int     // child extents captured at construction
	traits           Traits  // cached descriptor (scaleTraits)
}

var _ Expr = (*Scale)(nil)

// NewScale builds a lazy scalar multiply over src.
// Implementation:
//   - Stage 1: ValidateExpr (non-nil source).
//   - Stage 2: reject NaN/±Inf alpha (numeric policy at the boundary).
//   - Stage 3: capture extents, cache the descriptor (shape unchanged,
//     traversal flags kept, cost grows by one multiply).
//
// Errors:
//   - ErrNilExpr, ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewScale(src Expr, alpha float64) (*Scale, error) {
	if err := ValidateExpr(src); err != nil {
		return nil, exprErrorf(opNewScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, exprErrorf(opNewScale, ErrNaNInf)
	}

	return &Scale{
		src:     src,
		alpha:   alpha,
		srcRows: src.Rows(),
		srcCols: src.Cols(),
		traits:  scaleTraits(src.Traits()),
	}, nil
}

// Rows returns the child's row count. Complexity: O(1).
func (s *Scale) Rows() int { return s.srcRows }

// Cols returns the child's column count. Complexity: O(1).
func (s *Scale) Cols() int { return s.srcCols }

// Alpha returns the scalar factor. Complexity: O(1).
func (s *Scale) Alpha() float64 { return s.alpha }

// Source returns the borrowed child expression. Complexity: O(1).
func (s *Scale) Source() Expr { return s.src }

// Traits returns the cached descriptor. Complexity: O(1).
func (s *Scale) Traits() Traits { return s.traits }

// Coeff returns alpha times the child element. Contract accessor: caller
// guarantees 0 <= row < Rows(), 0 <= col < Cols().
// Complexity: O(1) + child read cost.
func (s *Scale) Coeff(row, col int) float64 {
	return s.alpha * s.src.Coeff(row, col)
}

// At returns the element at (row, col) or ErrOutOfRange (wrapped with context).
// Complexity: O(1) + child read cost.
func (s *Scale) At(row, col int) (float64, error) {
	if err := ValidateIndex(row, col, s.Rows(), s.Cols()); err != nil {
		return 0, fmt.Errorf("Scale.At(%d,%d): %w", row, col, err)
	}

	return s.Coeff(row, col), nil
}
