// SPDX-License-Identifier: MIT

// Package expr: functional configuration for materialization. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Worker count shapes only how Eval partitions rows; results are identical
//     for every worker count because row bands are disjoint and deterministic.
//   - Numeric policy mirrors the Dense Set policy: reject NaN/±Inf at the point
//     a value enters concrete storage, here the materialized result buffer.

package expr

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of row bands Eval fills concurrently.
	// 1 ⇒ fully sequential materialization in the calling goroutine.
	DefaultWorkers = 1

	// DefaultValidateNaNInf toggles strict finite-value validation when Eval
	// writes coefficients into the result buffer.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "expr: WithWorkers: workers must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported in its fields to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// evaluation policy
	workers int // >= 1; DefaultWorkers

	// numeric policy
	validateNaNInf bool // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithWorkers sets how many goroutines Eval uses to fill disjoint row bands.
// Implementation:
//   - Stage 1: validate workers >= 1.
//   - Stage 2: return a setter that writes workers into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - Worker counts above the row count are clamped during finalization.
//
// Inputs:
//   - workers: positive goroutine budget.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when workers < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Parallel filling is legal because expression reads are pure and row
//     bands write disjoint slices of the result buffer.
//
// AI-Hints:
//   - Use runtime.NumCPU()-sized budgets for large outputs; 1 for tiny ones.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	// Assign validated worker budget.
	return func(o *Options) { o.workers = workers }
}

// WithValidateNaNInf enables strict finite-value validation during Eval.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - A NaN or ±Inf coefficient aborts materialization with a positioned
//     ErrNaNInf; the partially filled result is discarded.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Non-finite coefficients pass through into the result buffer.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Pair with source data that deliberately encodes ±Inf placeholders.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Internal resolution ----------

// gatherOptions applies user setters over the documented defaults and enforces
// invariants in one place.
// Implementation:
//   - Stage 1: seed Options with Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: finalizeOptions for derived invariants.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k) for k=len(user), Space O(1).
//
// AI-Hints:
//   - Prefer gatherOptions(...) over ad-hoc defaulting in callers.
func gatherOptions(user ...Option) Options {
	o := Options{
		// evaluation policy
		workers: DefaultWorkers,

		// numeric policy
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// Implementation:
//   - Stage 1: normalize the worker budget to at least one.
//
// Notes:
//   - This function MUST be called after applying all Option setters.
//   - Clamping workers to the row count happens in Eval, where the extent is known.
//
// Complexity:
//   - Time O(1), Space O(1).
func finalizeOptions(o *Options) {
	// Defensive normalization: ensure a usable worker budget.
	if o.workers < 1 {
		o.workers = DefaultWorkers
	}
}
