// SPDX-License-Identifier: MIT
// Package expr_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for views/eval.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package expr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmat/expr"
)

// hide WRAPS any Expr to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed expr.Expr to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (generic) paths.
//
// Behavior highlights:
//   - Prevents the "*Dense" fast-path via type assertion in code under test
//     (Eval clones a bare leaf; a hidden leaf goes through the fill loop).
//
// Inputs:
//   - expr.Expr: any implementation.
//
// Returns:
//   - hide: wrapper that still satisfies Expr but masks the concrete type.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt to isolate path differences.
type hide struct{ expr.Expr }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call expr.NewDense(r,c).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - Concise boilerplate reduction in tests.
//
// Inputs:
//   - r,c: matrix shape.
//
// Returns:
//   - *expr.Dense allocated with zeroed data.
//
// Errors:
//   - Fatal test failure if allocation fails.
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
//
// AI-Hints:
//   - When you need non-zero data, pair with RandFilledDense or manual Set.
func MustDense(t *testing.T, r, c int) *expr.Dense {
	t.Helper()
	m, err := expr.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustDenseFrom BUILDS a *Dense from literal rows or fails the test.
// Implementation:
//   - Stage 1: Call expr.NewDenseFrom(rows).
//   - Stage 2: t.Fatalf on error.
//
// Behavior highlights:
//   - Deterministic fixture creation with explicit values.
//
// Inputs:
//   - rows: rectangular literal data.
//
// Returns:
//   - *expr.Dense with copied values.
//
// Errors:
//   - Fatal test failure on construction error.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer for small exact-equality tests; pair with CompareExact.
func MustDenseFrom(t *testing.T, rows [][]float64) *expr.Dense {
	t.Helper()
	m, err := expr.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Implementation:
//   - Stage 1: Allocate Dense.
//   - Stage 2: Fill via seeded RNG, row-major.
//
// Behavior highlights:
//   - Reproducible randomness for property tests; values stay finite.
//
// Inputs:
//   - r,c: shape; seed: RNG seed.
//
// Returns:
//   - *expr.Dense populated with random values.
//
// Errors:
//   - Fatal test failure if allocation/Set fails.
//
// Determinism:
//   - Deterministic per seed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use identical seeds across compared paths to isolate differences.
func RandFilledDense(t *testing.T, r, c int, seed int64) *expr.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
// Implementation:
//   - Stage 1: Call m.Set(i,j,v).
//   - Stage 2: t.Fatalf on error.
//
// Behavior highlights:
//   - Provides concise error text with indices.
//
// Complexity:
//   - O(1) per call.
func MustSet(t *testing.T, m *expr.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS e[i,j] through the checked accessor or fails the test.
// Implementation:
//   - Stage 1: Call e.At(i,j).
//   - Stage 2: t.Fatalf on error, return value otherwise.
//
// Behavior highlights:
//   - Clear failure site on bounds/impl errors.
//
// Complexity:
//   - O(1) per call.
//
// AI-Hints:
//   - Pair with CompareExact or RowsOf.
func MustAt(t *testing.T, e expr.Expr, i, j int) float64 {
	t.Helper()
	v, err := e.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between an expression and a 2D literal.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate and compare with == (no tolerances).
//
// Behavior highlights:
//   - Fails with exact mismatch location.
//
// Inputs:
//   - want: [][]float64 expected; e: expression under test.
//
// Errors:
//   - Fatal test failure on size/value mismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use for integer-like fixtures; replication moves values untouched, so
//     exact comparison is the right default in this package.
func CompareExact(t *testing.T, want [][]float64, e expr.Expr) {
	t.Helper()
	r, c := e.Rows(), e.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, e, i, j); v != want[i][j] {
				t.Fatalf("e[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// RowsOf SNAPSHOTS an expression into [][]float64 via the checked accessor.
// Implementation:
//   - Stage 1: Allocate the outer slice from Rows().
//   - Stage 2: Fill row-major through MustAt.
//
// Behavior highlights:
//   - Produces plain data for cmp.Diff in table-driven comparisons.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RowsOf(t *testing.T, e expr.Expr) [][]float64 {
	t.Helper()
	out := make([][]float64, e.Rows())
	var i, j int
	for i = 0; i < e.Rows(); i++ {
		out[i] = make([]float64, e.Cols())
		for j = 0; j < e.Cols(); j++ {
			out[i][j] = MustAt(t, e, i, j)
		}
	}

	return out
}

// ExpectPanic ASSERTS fn panics with exactly the given message.
// Implementation:
//   - Stage 1: defer recover and compare the panic payload to want.
//   - Stage 2: run fn.
//
// Behavior highlights:
//   - Panic messages are exported constants, so tests avoid magic strings.
//
// Complexity:
//   - O(1) plus fn's own cost.
func ExpectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		msg, ok := r.(string)
		if !ok || msg != want {
			t.Fatalf("panic = %v; want %q", r, want)
		}
	}()
	fn()
}
