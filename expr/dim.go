// SPDX-License-Identifier: MIT

// Package expr - Dim: static-dimension sum type (Fixed(n) | Dynamic).
//
// Purpose:
//   - Represent a dimension or replication factor that is either known up front
//     (Fixed) or supplied only at run time (Dynamic) as one tagged value.
//   - Give trait propagation a closed arithmetic: Dynamic dominates products.
//   - Keep a single runtime-checked construction path instead of parallel
//     constructor overloads branching on "is it known yet".
//
// AI-Hints:
//   - Use Fixed(n) for factors known at call-site authoring time; Dynamic when
//     the factor arrives as data.
//   - Dim is static *knowledge*, not storage: runtime values live on the node.
//   - Mul implements the propagation rule directly: combine child extent with a
//     factor and the result is Dynamic unless both are Fixed.
//
// Complexity quicksheet:
//   - All Dim operations: O(1) time, O(1) space, no allocation.

package expr

import "strconv"

// ---------- Dynamic marker & internal panic messages ----------

// Dynamic is the marker for a dimension or factor whose value is known only at
// run time. It is the only negative Dim; all Fixed values are >= 0.
const Dynamic Dim = -1

const (
	panicFixedNegative = "expr: Fixed: dimension must be non-negative"
	panicValueDynamic  = "expr: Dim.Value: dynamic marker has no fixed value"
)

// _fmtDynamic is the canonical rendering of the Dynamic marker.
const _fmtDynamic = "Dynamic"

// Dim is a static dimension: either Fixed(n) with n >= 0, or Dynamic.
// The zero value is Fixed(0).
type Dim int

// Fixed returns the Dim carrying the known value n.
// MAIN DESCRIPTION:
//   - Tag a non-negative integer as statically known.
//
// Implementation:
//   - Stage 1: reject negative n (it would collide with the marker encoding).
//   - Stage 2: return Dim(n).
//
// Behavior highlights:
//   - Panics on negative input: a negative static dimension is a programmer
//     error, not a data condition.
//
// Inputs:
//   - n: the known dimension or factor value, n >= 0.
//
// Returns:
//   - Dim: the tagged fixed value.
//
// Errors:
//   - Panics with a stable message when n < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func Fixed(n int) Dim {
	if n < 0 {
		panic(panicFixedNegative)
	}

	return Dim(n)
}

// IsDynamic reports whether d is the Dynamic marker. No side effects.
// Complexity: O(1).
func (d Dim) IsDynamic() bool { return d < 0 }

// Value returns the fixed value carried by d.
// Panics when d is Dynamic: reading a value off the marker is a programmer
// error (check IsDynamic first).
// Complexity: O(1).
func (d Dim) Value() int {
	if d.IsDynamic() {
		panic(panicValueDynamic)
	}

	return int(d)
}

// Mul combines two static dimensions under the propagation rule:
// the product is Dynamic if either operand is Dynamic, else Fixed(a*b).
// MAIN DESCRIPTION:
//   - Dynamic-dominant multiplication used to derive a view's static extent
//     from its child extent and a replication factor.
//
// Implementation:
//   - Stage 1: short-circuit to Dynamic when either side is the marker.
//   - Stage 2: multiply the fixed values.
//
// Behavior highlights:
//   - Commutative; Fixed(1) is the identity on fixed values.
//
// Inputs:
//   - o: the other static dimension.
//
// Returns:
//   - Dim: combined static knowledge.
//
// Determinism:
//   - Pure function of the two operands.
//
// Complexity:
//   - Time O(1), Space O(1).
func (d Dim) Mul(o Dim) Dim {
	if d.IsDynamic() || o.IsDynamic() {
		return Dynamic
	}

	return Dim(int(d) * int(o))
}

// String renders "Dynamic" for the marker and the decimal value otherwise.
// Complexity: O(1) beyond the integer formatting.
func (d Dim) String() string {
	if d.IsDynamic() {
		return _fmtDynamic
	}

	return strconv.Itoa(int(d))
}
