// SPDX-License-Identifier: MIT
// Package: expr
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors/facades minimal by delegating nil/factor/bounds checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Use ValidateReplicateArgs as the one gate in front of node construction.
//  - Use ValidateIndex inside At implementations to keep identical bound semantics.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Factors).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package expr

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateExpr – Ensures the expression reference is non-nil.
//
// Inputs: Expr interface value.
// Returns ErrNilExpr if e == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateExpr(e Expr) error {
	// If the expression is nil, fail with the unified sentinel.
	if e == nil {
		return validatorErrorf("ValidateExpr", ErrNilExpr) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateFactor – Ensures a replication factor is a positive integer.
//
// Inputs: effective factor value.
// Returns ErrBadFactor if f < 1.
// Complexity: O(1).
func ValidateFactor(f int) error {
	// Factors below one cannot describe a tiling.
	if f < 1 {
		return validatorErrorf("ValidateFactor", ErrBadFactor)
	}

	return nil
}

// ValidateFixed – Ensures a declared factor is not the dynamic marker.
// Used by the fixed-factor construction form only.
//
// Inputs: declared factor Dim.
// Returns ErrDynamicFactor if d.IsDynamic().
// Complexity: O(1).
func ValidateFixed(d Dim) error {
	if d.IsDynamic() {
		return validatorErrorf("ValidateFixed", ErrDynamicFactor)
	}

	return nil
}

// ValidateAxis – Ensures a is one of the declared Axis values.
//
// Returns ErrBadAxis otherwise.
// Complexity: O(1).
func ValidateAxis(a Axis) error {
	if a != AxisRows && a != AxisCols {
		return validatorErrorf("ValidateAxis", ErrBadAxis)
	}

	return nil
}

// ValidateIndex – Ensures (row, col) lies inside a rows×cols extent.
//
// Implementation: Assumes extents are valid (caller must ensure).
// Returns ErrOutOfRange on any violation.
// Complexity: O(1).
// AI-Hints: Use in At implementations; Coeff stays unchecked by contract.
func ValidateIndex(row, col, rows, cols int) error {
	if row < 0 || row >= rows {
		return validatorErrorf("ValidateIndex: row", ErrOutOfRange)
	}
	if col < 0 || col >= cols {
		return validatorErrorf("ValidateIndex: col", ErrOutOfRange)
	}

	return nil
}

// ValidateRowData – Ensures literal row data is non-empty and rectangular.
//
// Returns ErrInvalidDimensions for empty input, ErrRaggedRows for unequal rows.
// Complexity: O(r) over the row count.
func ValidateRowData(rows [][]float64) error {
	// Reject an empty outer slice or an empty leading row.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRowData", ErrInvalidDimensions)
	}
	// Every row must match the leading row's width.
	width := len(rows[0])
	var i int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return validatorErrorf("ValidateRowData", ErrRaggedRows)
		}
	}

	return nil
}

// ValidateReplicateArgs – Composite: NotNil(src) → Factor(rf) → Factor(cf).
// The one gate in front of replication-node construction.
//
// Errors: Combines ErrNilExpr and ErrBadFactor.
// Complexity: O(1).
func ValidateReplicateArgs(src Expr, rowFactor, colFactor int) error {
	if err := ValidateExpr(src); err != nil {
		return validatorErrorf("ValidateReplicateArgs", err)
	}
	if err := ValidateFactor(rowFactor); err != nil {
		return validatorErrorf("ValidateReplicateArgs", err)
	}
	if err := ValidateFactor(colFactor); err != nil {
		return validatorErrorf("ValidateReplicateArgs", err)
	}

	return nil
}
