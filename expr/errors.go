// SPDX-License-Identifier: MIT
// Package expr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the expr
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (option constructors, Fixed with a
// negative value, Dim.Value on the dynamic marker).

package expr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "expr: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil expression -> shape/index -> factor/axis contract -> numeric policy.

var (
	// ErrNilExpr indicates that a nil Expr (receiver or argument) was used.
	// Constructors and Eval MUST return this before touching the value.
	ErrNilExpr = errors.New("expr: nil expression")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("expr: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("expr: index out of range")

	// ErrRaggedRows indicates that literal row data had unequal row lengths
	// where a rectangular layout is required.
	ErrRaggedRows = errors.New("expr: ragged row data")

	// ErrBadFactor is returned when a replication factor is not a positive integer.
	// The single construction path validates factors before any node is built.
	ErrBadFactor = errors.New("expr: replication factor must be >= 1")

	// ErrDynamicFactor is returned by the fixed-factor construction form when a
	// factor carries the dynamic marker; use the dynamic-factor form instead.
	ErrDynamicFactor = errors.New("expr: factor is dynamic")

	// ErrBadAxis indicates an Axis value outside the declared enum.
	ErrBadAxis = errors.New("expr: invalid axis")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, materialization).
	ErrNaNInf = errors.New("expr: NaN or Inf encountered")
)
