// SPDX-License-Identifier: MIT

package expr

// Test-Bridge (White-Box) for Private Constructors, Traits and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED construction/propagation helpers and an options snapshot
//     to expr_test ONLY, without widening the production API.
//   - Enable white-box verification of the trait-propagation functions and of
//     gatherOptions defaulting/last-writer-wins semantics.
//
// Provided Surface:
//   - ExportedNewDenseWithPolicy: relaxed-policy Dense construction for fixtures.
//   - ExportedDenseTraits / ExportedReplicateTraits / ExportedTransposeTraits /
//     ExportedScaleTraits: thin pass-throughs to the pure propagation functions.
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly: stable, read-only view
//     of internal Options for tests.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped functions do.
//   - Deterministic wrappers; no side effects.
//
// AI-Hints:
//   - Prefer keeping ALL test-only bridges co-located here to avoid clutter
//     across files.
//   - If a private helper changes signature, mirror the change here once, not
//     across many tests.

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy

	// Trait-propagation pass-throughs.
	ExportedDenseTraits     = denseTraits
	ExportedReplicateTraits = replicateTraits
	ExportedTransposeTraits = transposeTraits
	ExportedScaleTraits     = scaleTraits
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWorkersInvalid_TestOnly = panicWorkersInvalid
	PanicFixedNegative_TestOnly  = panicFixedNegative
	PanicValueDynamic_TestOnly   = panicValueDynamic
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow expr_test to assert defaults and "last writer wins" semantics
//     without accessing unexported fields directly.
//
// Determinism:
//   - Pure struct copy; no side effects.
type OptionsSnapshot struct {
	Workers        int
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
// Implementation:
//   - Stage 1: o := gatherOptions(opts...) // internal constructor
//   - Stage 2: snapshotOf(o)
//
// Notes:
//   - Keep this wrapper in sync if the internal derivation pipeline changes.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Workers:        o.workers,
		ValidateNaNInf: o.validateNaNInf,
	}
}
