// SPDX-License-Identifier: MIT
// Package expr — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change validation order or numeric policy of the
//     underlying constructors and materializer.
//   - Validation is performed in the canonical paths; facades only forward.
//
// AI-Hints:
//   - Tile reads like the operation users search for; NewReplicateDynamic is
//     the canonical constructor underneath.
//   - ReplicateRows/ReplicateCols are the one-call forms of the directional
//     helper (Along + Replicate).

package expr

// ---------- Replication (facades map 1:1 to constructors; O(1)) ----------

// Tile is an alias for NewReplicateDynamic: src tiled rowFactor×colFactor times.
// Complexity: O(1) construction; reads stay lazy.
//
// AI-Hints: The everyday entry point; factors are runtime values.
func Tile(src Expr, rowFactor, colFactor int) (*Replicate, error) {
	return NewReplicateDynamic(src, rowFactor, colFactor)
}

// ReplicateRows grows the row axis factor times: r×c reads as (factor·r)×c.
// One-call form of Along(src, AxisRows).Replicate(factor).
// Complexity: O(1) construction.
//
// AI-Hints: ReplicateRows(v, 4) of a 1×3 row vector is the 4×3 matrix whose
// every row is v.
func ReplicateRows(src Expr, factor int) (*Replicate, error) {
	return Along(src, AxisRows).Replicate(factor)
}

// ReplicateCols grows the column axis factor times: r×c reads as r×(factor·c).
// One-call form of Along(src, AxisCols).Replicate(factor).
// Complexity: O(1) construction.
func ReplicateCols(src Expr, factor int) (*Replicate, error) {
	return Along(src, AxisCols).Replicate(factor)
}

// ---------- Other views (aliases; O(1)) ----------

// T is an alias for NewTranspose: returns the lazy eᵀ view.
// Complexity: O(1) construction.
//
// AI-Hints: Good for small helpers and chaining.
func T(e Expr) (*Transpose, error) { return NewTranspose(e) }

// ScaleBy is an alias for NewScale: the lazy alpha·e view.
// Complexity: O(1) construction.
func ScaleBy(e Expr, alpha float64) (*Scale, error) { return NewScale(e, alpha) }

// ---------- Materialization (alias; O(rc)) ----------

// Materialize is an alias for Eval: turn any expression into a concrete Dense.
// Complexity: O(r*c); see Eval for the worker and numeric-policy options.
func Materialize(e Expr, opts ...Option) (*Dense, error) { return Eval(e, opts...) }
