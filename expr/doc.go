// Package expr offers lazy, read-only matrix expression views.
//
// The expr package provides:
//
//   - Dense, the concrete row-major leaf with safe accessors (At/Set) and a
//     finite-only numeric policy.
//   - Replicate, the tiled-replication view: whole-matrix tiling (Tile,
//     NewReplicate, NewReplicateDynamic) and single-axis forms
//     (ReplicateRows, ReplicateCols, Along(...).Replicate).
//   - Transpose and Scale, sibling views built on the same cached-descriptor
//     machinery (Dim, Flags, Cost, Traits).
//   - Eval, the materializer turning any view tree into an independent Dense,
//     sequentially or over parallel row bands.
//
// Views never allocate or copy element data: a view borrows its child and
// recomputes its index mapping on every read. Materialize with Eval when a
// view is read many times.
//
// See the examples in this package for usage patterns.
package expr
