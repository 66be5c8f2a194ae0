// Package lvlmat is your in-memory toolkit for lazy matrix views — tiled
// replication, transposition and scaling that read like matrices but never
// copy a single element until you ask.
//
// 🚀 What is lvlmat?
//
//	A small, deterministic library that brings together:
//		• Dense storage: row-major buffers with safe accessors & a finite-only policy
//		• Replication views: whole-matrix tiling and single-axis row/column replication
//		• Sibling views: lazy transpose and scalar multiply on the same machinery
//		• Descriptors: static extents (Fixed/Dynamic), capability flags, read-cost hints
//		• Materialization: sequential or parallel row-band evaluation into a fresh Dense
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, deterministic loops, in-code docs
//   - Pure Go core – no cgo; views are plain values over a shared leaf
//   - Extensible – implement Expr once and every view and Eval work with it
//
// Under the hood, the library keeps one focused package plus runnable scenarios:
//
//	expr/     — expression contract, Dense leaf, Replicate/Transpose/Scale views,
//	            directional helper (Along), options and the Eval materializer
//	examples/ — runnable scenario programs (tiling, broadcasting, averaging)
//
// Quick ASCII example:
//
//	    [1 2]                [1 2 1 2 1 2]
//	    [3 4] ──Tile(2,3)──▶ [3 4 3 4 3 4]
//	                         [1 2 1 2 1 2]
//	                         [3 4 3 4 3 4]
//
//	a 2×2 source read through a (2,3) replication view as a 4×6 matrix.
//
// Dive into the expr package docs for the full contract, and the examples/
// directory for end-to-end scenarios.
//
//	go get github.com/katalvlaran/lvlmat/expr
package lvlmat
