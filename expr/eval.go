// SPDX-License-Identifier: MIT

// Package expr - Eval: materialization of an expression into a Dense.
//
// Purpose:
//   - The one consumer of the expression contract: validate shape once, then
//     fill a result buffer through Coeff in deterministic row-major order.
//   - Optional parallelism over disjoint row bands (errgroup): legal because
//     expression reads are pure and bands never share a destination cell.
//   - Enforce the numeric policy at the moment values enter concrete storage,
//     mirroring Dense.Set.
//
// AI-Hints:
//   - Results are bit-identical for every worker count; parallelism changes
//     only wall-clock time.
//   - The *Dense fast path clones the leaf instead of looping; a policy-on
//     leaf holds finite data by construction, so no re-scan is needed.
//
// Complexity quicksheet:
//   - Eval: O(r*c) coefficient reads + O(r*c) result space; *Dense fast path
//     is a single buffer copy.

package expr

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

const opEval = "Eval"

// Eval materializes e into a freshly allocated Dense.
// MAIN DESCRIPTION:
//   - Turn any expression (leaf or view tree) into an independent concrete
//     matrix, sequentially by default, over disjoint row bands when a worker
//     budget is configured.
//
// Implementation:
//   - Stage 1: ValidateExpr; gather options (workers, numeric policy).
//   - Stage 2: *Dense fast path — clone the leaf when the policy cannot be
//     violated (validation off, or the leaf enforces the policy itself).
//   - Stage 3: allocate the result; clamp the worker budget to the row count.
//   - Stage 4: one band ⇒ fill in the calling goroutine; otherwise split rows
//     into near-equal contiguous bands and fill them under an errgroup.
//
// Behavior highlights:
//   - Deterministic: band boundaries depend only on (rows, workers); every
//     band fills i→j ascending; identical results for any worker count.
//   - First policy violation wins: a NaN/±Inf coefficient aborts with a
//     positioned ErrNaNInf and the partial result is discarded.
//
// Inputs:
//   - e: expression to materialize (non-nil).
//   - opts: WithWorkers, WithValidateNaNInf / WithNoValidateNaNInf.
//
// Returns:
//   - *Dense: independent materialized matrix.
//
// Errors:
//   - ErrNilExpr, ErrInvalidDimensions (degenerate extents), ErrNaNInf.
//
// Determinism:
//   - Fixed band split and fill order; no map iteration, no randomness.
//
// Complexity:
//   - Time O(r*c) coefficient reads, Space O(r*c).
//
// AI-Hints:
//   - Materialize once and reuse the Dense when the same view is read many
//     times; a view recomputes its mapping on every read by design.
func Eval(e Expr, opts ...Option) (*Dense, error) {
	if err := ValidateExpr(e); err != nil {
		return nil, exprErrorf(opEval, err)
	}
	o := gatherOptions(opts...)

	// Fast path: a concrete leaf is its own materialization. Safe whenever the
	// policy cannot be violated: validation is off, or the leaf validates its
	// own writes (then its buffer is finite by construction).
	if d, ok := e.(*Dense); ok && (!o.validateNaNInf || d.validateNaNInf) {
		return d.Clone(), nil
	}

	rows, cols := e.Rows(), e.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, exprErrorf(opEval, err)
	}

	// A band never spans less than one row; extra workers would idle.
	workers := o.workers
	if workers > rows {
		workers = rows
	}

	// Sequential path: fill everything in the calling goroutine.
	if workers == 1 {
		if err = fillRows(e, res, 0, rows, o.validateNaNInf); err != nil {
			return nil, exprErrorf(opEval, err)
		}

		return res, nil
	}

	// Parallel path: near-equal contiguous bands, one goroutine each.
	// Bands write disjoint slices of res.data, so no locking is needed.
	var g errgroup.Group
	band := rows / workers
	extra := rows % workers
	start := 0
	var w, size int
	for w = 0; w < workers; w++ {
		size = band
		if w < extra {
			size++ // distribute the remainder over the leading bands
		}
		lo, hi := start, start+size
		start = hi
		g.Go(func() error {
			return fillRows(e, res, lo, hi, o.validateNaNInf)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, exprErrorf(opEval, err)
	}

	return res, nil
}

// fillRows fills dst rows [lo, hi) from e in fixed i→j order.
// Implementation:
//   - Stage 1: per row, compute the flat base offset.
//   - Stage 2: read each coefficient through Coeff (in-contract by
//     construction of the band bounds).
//   - Stage 3: enforce the numeric policy, then write the flat buffer directly.
//
// Behavior highlights:
//   - Direct buffer writes bypass Set on purpose: bounds are guaranteed by the
//     band split, and the policy check here is the same one Set performs.
//
// Complexity:
//   - Time O((hi-lo)*cols), Space O(1).
func fillRows(e Expr, dst *Dense, lo, hi int, validate bool) error {
	var i, j, base int
	var v float64
	for i = lo; i < hi; i++ {
		base = i * dst.c
		for j = 0; j < dst.c; j++ {
			v = e.Coeff(i, j)
			if validate && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return fmt.Errorf("coefficient (%d,%d): %w", i, j, ErrNaNInf)
			}
			dst.data[base+j] = v
		}
	}

	return nil
}
