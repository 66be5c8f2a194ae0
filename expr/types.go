// SPDX-License-Identifier: MIT

// Package expr - public expression contract shared by leaves and views.
//
// Purpose:
//   - Define the one interface every expression satisfies: extents, a checked
//     accessor, an unchecked hot-path accessor, and the cached descriptor.
//   - State the child-ownership policy in exactly one place.
//
// AI-Hints:
//   - Evaluation code validates shape once, then reads through Coeff.
//   - External callers poking at a single element should prefer At.

package expr

// Expr is a read-only matrix expression: a concrete leaf (*Dense) or a view
// composed over one (Replicate, Transpose, Scale).
//
// Ownership policy (uniform across the package): a view borrows its child as an
// Expr interface value and never copies or mutates it. Leaves are shared by
// pointer; sharing is safe because views are read-only and leaves are only
// mutated by their owner. A view is therefore valid exactly as long as its
// child is, and concurrent reads are safe whenever the child's reads are.
type Expr interface {
	// Rows returns the number of rows of the expression value. O(1).
	Rows() int

	// Cols returns the number of columns of the expression value. O(1).
	Cols() int

	// At returns the element at (row, col) or ErrOutOfRange (wrapped with
	// method context) for invalid indices. Never panics.
	At(row, col int) (float64, error)

	// Coeff returns the element at (row, col) without bounds checking.
	// Contract: 0 <= row < Rows(), 0 <= col < Cols(); the caller guarantees
	// both. This is the hot-path accessor the materializer reads through.
	Coeff(row, col int) float64

	// Traits returns the cached shape/capability descriptor. The returned
	// record is computed at construction and never changes. O(1).
	Traits() Traits
}
