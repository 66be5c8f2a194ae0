// SPDX-License-Identifier: MIT

// Package expr - Traits: cached shape/capability descriptors and their
// per-node propagation rules.
//
// Purpose:
//   - Describe what the evaluation side may assume about an expression:
//     static extents (Dim), capability flags, per-element read cost.
//   - Keep propagation pure: each node derives its descriptor from its child's
//     descriptor once, at construction, and caches the result.
//   - Separate flags that survive index remapping (HereditaryFlags) from flags
//     tied to the concrete buffer.
//
// AI-Hints:
//   - Traits answers "what is statically known", the node answers "what is the
//     value at (i,j)"; never recompute a descriptor per access.
//   - When adding a node type, add one *Traits function here and call it from
//     the node constructor; do not inline flag masks at call sites.
//
// Complexity quicksheet:
//   - All propagation functions: O(1) time, O(1) space, pure.

package expr

// ---------- Capability flags ----------

// Flags is a bitset of structural capabilities an expression supports.
type Flags uint8

const (
	// FlagRowMajor marks expressions whose natural traversal order is row-major.
	FlagRowMajor Flags = 1 << iota

	// FlagLinear marks expressions addressable by a single flat index in
	// traversal order (no per-access coordinate arithmetic beyond the offset).
	FlagLinear

	// FlagDirect marks expressions backed by addressable contiguous storage.
	FlagDirect

	// FlagWritable marks expressions whose storage accepts writes (leaves only;
	// every view in this package is read-only).
	FlagWritable
)

// HereditaryFlags is the subset of flags a view may inherit from its child when
// the view remaps indices (replication, transposition). Traversal-order
// preference survives remapping; linearity, direct storage access and
// writability do not.
const HereditaryFlags = FlagRowMajor

// Has reports whether all bits of mask are set. No side effects.
// Complexity: O(1).
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// ---------- Cost model ----------

// Cost is a per-element read cost estimate in abstract units. It is a planning
// hint for evaluation strategies, not a measured quantity.
type Cost int

const (
	// CostRead is the cost of one dense buffer read.
	CostRead Cost = 1

	// CostMul is the cost of one scalar multiplication.
	CostMul Cost = 1
)

// ---------- Descriptor record ----------

// Traits is the cached shape/capability descriptor of an expression:
//   - Rows, Cols hold static extents (Fixed or Dynamic).
//   - Flags holds the capability bitset.
//   - Cost holds the per-element read cost estimate.
//
// A descriptor is computed once at construction and never changes afterwards.
type Traits struct {
	Rows, Cols Dim   // static extents
	Flags      Flags // capability bitset
	Cost       Cost  // per-element read cost estimate
}

// ---------- Per-node propagation (pure) ----------

// denseTraits describes a concrete row-major leaf of the given extents.
// Once a leaf exists its extents are fully known, so both Dims are Fixed.
// Complexity: O(1).
func denseTraits(rows, cols int) Traits {
	return Traits{
		Rows:  Fixed(rows),
		Cols:  Fixed(cols),
		Flags: FlagRowMajor | FlagLinear | FlagDirect | FlagWritable,
		Cost:  CostRead,
	}
}

// replicateTraits derives a replication view's descriptor from its child's
// descriptor and the declared factors.
// MAIN DESCRIPTION:
//   - Static extents combine under dynamic-dominant multiplication; capability
//     flags are masked to the hereditary subset; cost is inherited unchanged
//     (the remapping modulo is treated as free by this model).
//
// Implementation:
//   - Stage 1: Rows = child.Rows × rowFactor, Cols = child.Cols × colFactor (Dim.Mul).
//   - Stage 2: Flags = child.Flags ∩ HereditaryFlags.
//   - Stage 3: Cost = child.Cost.
//
// Behavior highlights:
//   - An extent is Dynamic exactly when the factor or the child extent is.
//
// Inputs:
//   - child: the source expression's descriptor.
//   - rowFactor, colFactor: declared factors (Fixed or Dynamic).
//
// Returns:
//   - Traits: the view's descriptor.
//
// Determinism:
//   - Pure function of the inputs.
//
// Complexity:
//   - Time O(1), Space O(1).
func replicateTraits(child Traits, rowFactor, colFactor Dim) Traits {
	return Traits{
		Rows:  child.Rows.Mul(rowFactor),
		Cols:  child.Cols.Mul(colFactor),
		Flags: child.Flags & HereditaryFlags,
		Cost:  child.Cost,
	}
}

// transposeTraits derives a lazy-transpose descriptor: extents swap, the
// row-major bit toggles within the hereditary subset (transposing a row-major
// expression yields a column-major one and vice versa), cost is inherited.
// Complexity: O(1).
func transposeTraits(child Traits) Traits {
	return Traits{
		Rows:  child.Cols,
		Cols:  child.Rows,
		Flags: (child.Flags & HereditaryFlags) ^ FlagRowMajor,
		Cost:  child.Cost,
	}
}

// scaleTraits derives a scalar-multiply descriptor: the index map is the
// identity, so traversal flags (row-major, linear) survive while storage flags
// (direct, writable) drop; cost grows by one multiplication.
// Complexity: O(1).
func scaleTraits(child Traits) Traits {
	return Traits{
		Rows:  child.Rows,
		Cols:  child.Cols,
		Flags: child.Flags & (FlagRowMajor | FlagLinear),
		Cost:  child.Cost + CostMul,
	}
}
