// SPDX-License-Identifier: MIT

// Package expr - Replicate: the tiled-replication view.
//
// Purpose:
//   - Present a source expression tiled rowFactor×colFactor times as one
//     read-only expression, without copying a single element.
//   - Map a replicated index back to the source index via modulo arithmetic,
//     with factor==1 fast paths that skip the modulo on that axis.
//   - Offer two construction forms (declared-fixed and dynamic factors) that
//     share a single runtime-checked path.
//
// AI-Hints:
//   - The view borrows its child; materialize with Eval when an independent
//     Dense is needed.
//   - Composition collapses arithmetically: replicating a Replicate by
//     (rf2,cf2) reads identically to one Replicate by (rf1·rf2, cf1·cf2).
//   - Child extents are captured at construction (expressions are immutable),
//     so Coeff performs no interface calls besides the child read.
//
// Complexity quicksheet:
//   - Construction: O(1); Rows/Cols/Traits: O(1); Coeff/At: O(1) + child read.

package expr

import "fmt"

// ---------- operation tags ----------

const (
	opNewReplicate        = "NewReplicate"        // fixed-factor construction form
	opNewReplicateDynamic = "NewReplicateDynamic" // dynamic-factor construction form
)

// exprErrorf wraps an error with the operation tag at the public boundary.
// Sentinels stay unwrapped until this point so errors.Is keeps matching.
func exprErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Replicate is a read-only view presenting its child tiled rowFactor times
// along rows and colFactor times along columns.
//   - src is the borrowed child (never copied, never mutated; see Expr docs).
//   - rowFactor, colFactor are the effective factors, both >= 1.
//   - srcRows, srcCols cache the child extents for the hot-path modulo.
//   - traits caches the descriptor derived from the child's at construction.
type Replicate struct {
	src                  Expr   // borrowed child expression
	rowFactor, colFactor int    // effective replication factors (>= 1)
	srcRows, srcCols     int    // child extents captured at construction
	traits               Traits // cached descriptor (replicateTraits)
}

// Compile-time assertion: the view satisfies the expression contract.
var _ Expr = (*Replicate)(nil)

// NewReplicate builds a replication view from declared-fixed factors.
// MAIN DESCRIPTION:
//   - Fixed-factor construction form: both factors must be statically known
//     Dims; the dynamic marker is a contract violation for this form.
//
// Implementation:
//   - Stage 1: reject Dynamic in either declared factor (ValidateFixed).
//   - Stage 2: delegate to the single checked path with the declared values
//     as effective factors.
//
// Behavior highlights:
//   - Declared knowledge flows into the cached descriptor: with a fixed-extent
//     child, the view's static extents are Fixed(child×factor).
//
// Inputs:
//   - src: source expression (non-nil).
//   - rowFactor, colFactor: declared factors, e.g. Fixed(2), Fixed(3).
//
// Returns:
//   - *Replicate: the view.
//
// Errors:
//   - ErrDynamicFactor (dynamic marker passed to the fixed form),
//     ErrNilExpr, ErrBadFactor (from the shared path).
//
// Determinism:
//   - Pure construction; no allocation beyond the node header.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use this form when factors are authored constants; the descriptor then
//     carries exact static extents for downstream planning.
func NewReplicate(src Expr, rowFactor, colFactor Dim) (*Replicate, error) {
	// This form promises static factors; the marker is a contract violation.
	if err := ValidateFixed(rowFactor); err != nil {
		return nil, exprErrorf(opNewReplicate, err)
	}
	if err := ValidateFixed(colFactor); err != nil {
		return nil, exprErrorf(opNewReplicate, err)
	}

	return newReplicate(src, rowFactor, colFactor, rowFactor.Value(), colFactor.Value(), opNewReplicate)
}

// NewReplicateDynamic builds a replication view from runtime factor values.
// MAIN DESCRIPTION:
//   - Dynamic-factor construction form: factors arrive as plain ints; the
//     declared Dims are the Dynamic marker, so the cached descriptor reports
//     Dynamic extents regardless of the child.
//
// Implementation:
//   - Stage 1: delegate to the single checked path with Dynamic declarations.
//
// Inputs:
//   - src: source expression (non-nil).
//   - rowFactor, colFactor: runtime factors, both >= 1.
//
// Returns:
//   - *Replicate: the view.
//
// Errors:
//   - ErrNilExpr, ErrBadFactor.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use when factors are data; prefer NewReplicate for authored constants.
func NewReplicateDynamic(src Expr, rowFactor, colFactor int) (*Replicate, error) {
	return newReplicate(src, Dynamic, Dynamic, rowFactor, colFactor, opNewReplicateDynamic)
}

// newReplicate is the single runtime-checked construction path shared by both
// public forms and the directional facades.
// Implementation:
//   - Stage 1: ValidateReplicateArgs (non-nil source, factors >= 1).
//   - Stage 2: capture child extents once.
//   - Stage 3: derive and cache the descriptor from the child's descriptor and
//     the declared factors (replicateTraits).
//
// Behavior highlights:
//   - All factor/nil validation lives here; public forms only add their
//     form-specific checks and their operation tag.
//
// Complexity:
//   - Time O(1), Space O(1).
func newReplicate(src Expr, declRow, declCol Dim, rowFactor, colFactor int, op string) (*Replicate, error) {
	if err := ValidateReplicateArgs(src, rowFactor, colFactor); err != nil {
		return nil, exprErrorf(op, err)
	}

	return &Replicate{
		src:       src,
		rowFactor: rowFactor,
		colFactor: colFactor,
		srcRows:   src.Rows(),
		srcCols:   src.Cols(),
		traits:    replicateTraits(src.Traits(), declRow, declCol),
	}, nil
}

// Rows returns source rows × row factor. No side effects.
// Complexity: O(1).
func (r *Replicate) Rows() int { return r.srcRows * r.rowFactor }

// Cols returns source cols × column factor. No side effects.
// Complexity: O(1).
func (r *Replicate) Cols() int { return r.srcCols * r.colFactor }

// Factors returns the effective (rowFactor, colFactor) pair.
// Complexity: O(1).
func (r *Replicate) Factors() (rowFactor, colFactor int) { return r.rowFactor, r.colFactor }

// Source returns the borrowed child expression.
// Complexity: O(1).
func (r *Replicate) Source() Expr { return r.src }

// Traits returns the cached descriptor: extents combined under dynamic-dominant
// multiplication, hereditary flags only, child cost inherited unchanged.
// Complexity: O(1).
func (r *Replicate) Traits() Traits { return r.traits }

// Coeff returns the child element at (row mod srcRows, col mod srcCols).
// MAIN DESCRIPTION:
//   - Unchecked hot-path read mapping a replicated index back into the source.
//
// Implementation:
//   - Stage 1: when rowFactor != 1, fold row into [0, srcRows) via modulo;
//     a factor of exactly 1 means row is already in range, so the modulo is skipped.
//   - Stage 2: same for col against colFactor/srcCols.
//   - Stage 3: read the child at the folded coordinates.
//
// Behavior highlights:
//   - Contract accessor: caller guarantees 0 <= row < Rows(), 0 <= col < Cols().
//   - The two factor==1 branches are a performance heuristic; results are
//     identical with or without them.
//
// Inputs:
//   - row, col: coordinates in the replicated extent.
//
// Returns:
//   - float64: the source element value.
//
// Determinism:
//   - Pure function of captured state and the index.
//
// Complexity:
//   - Time O(1) + child read cost, Space O(1).
func (r *Replicate) Coeff(row, col int) float64 {
	if r.rowFactor != 1 {
		row %= r.srcRows
	}
	if r.colFactor != 1 {
		col %= r.srcCols
	}

	return r.src.Coeff(row, col)
}

// At returns the element at (row, col) or ErrOutOfRange.
// Implementation:
//   - Stage 1: bounds-check against the replicated extent (ValidateIndex).
//   - Stage 2: delegate to Coeff (now in-contract).
//
// Errors:
//   - ErrOutOfRange, wrapped with method context and coordinates.
//
// Complexity:
//   - Time O(1) + child read cost, Space O(1).
func (r *Replicate) At(row, col int) (float64, error) {
	if err := ValidateIndex(row, col, r.Rows(), r.Cols()); err != nil {
		return 0, fmt.Errorf("Replicate.At(%d,%d): %w", row, col, err)
	}

	return r.Coeff(row, col), nil
}
