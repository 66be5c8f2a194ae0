// SPDX-License-Identifier: MIT

// Package expr - Directional: axis-oriented broadcast & reduction helper.
//
// Purpose:
//   - Give one home to operations parameterized by an axis: Replicate grows
//     the named axis, Sum/Mean collapse it. The duality is the contract:
//     Along(e, AxisRows).Replicate(f) turns r×c into (f·r)×c, while
//     Along(e, AxisRows).Sum() turns r×c into 1×c.
//   - Derive the single-axis replicate from the same checked construction path
//     as the general node: the grown axis is declared dynamic (the factor is
//     runtime data), the other axis is declared Fixed(1).
//
// AI-Hints:
//   - Along itself validates nothing (it is a cheap value); every method
//     validates its inputs on use and wraps with its operation tag.
//   - Reductions read through Coeff in fixed i→j order and write through Set,
//     so the numeric policy still guards overflow to ±Inf.
//
// Complexity quicksheet:
//   - Along: O(1); Replicate: O(1); Sum/Mean: O(r*c).

package expr

// ---------- operation tags ----------

const (
	opDirReplicate = "Directional.Replicate"
	opDirSum       = "Directional.Sum"
	opDirMean      = "Directional.Mean"
)

// Axis names one of the two extents of a matrix expression.
// Replicate grows the named axis; reductions collapse it to length one.
type Axis int

const (
	// AxisRows is the row axis: Replicate multiplies the row count,
	// Sum/Mean collapse all rows into one (per-column totals).
	AxisRows Axis = iota

	// AxisCols is the column axis: Replicate multiplies the column count,
	// Sum/Mean collapse all columns into one (per-row totals).
	AxisCols
)

// Directional pairs an expression with the axis its operations act on.
// The zero value is not meaningful; build it with Along.
type Directional struct {
	src  Expr // borrowed expression the operations read
	axis Axis // the axis grown by Replicate and collapsed by reductions
}

// Along pairs src with an axis. No validation happens here; methods validate
// on use so that chaining stays one expression.
// Complexity: O(1).
func Along(src Expr, axis Axis) Directional {
	return Directional{src: src, axis: axis}
}

// Replicate grows the named axis factor times.
// MAIN DESCRIPTION:
//   - Single-axis replication derived from the general node: the named axis
//     gets the runtime factor (declared dynamic), the other axis factor 1
//     (declared fixed).
//
// Implementation:
//   - Stage 1: ValidateExpr + ValidateAxis.
//   - Stage 2: split (factor, 1) across the axes and delegate to the single
//     checked construction path.
//
// Inputs:
//   - factor: runtime replication factor, >= 1.
//
// Returns:
//   - *Replicate: the single-axis view.
//
// Errors:
//   - ErrNilExpr, ErrBadAxis, ErrBadFactor.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Along(v, AxisRows).Replicate(4) of a 1×3 row vector reads as the 4×3
//     matrix whose every row is v.
func (d Directional) Replicate(factor int) (*Replicate, error) {
	if err := ValidateExpr(d.src); err != nil {
		return nil, exprErrorf(opDirReplicate, err)
	}
	if err := ValidateAxis(d.axis); err != nil {
		return nil, exprErrorf(opDirReplicate, err)
	}

	// The grown axis carries the runtime factor; the other axis is pinned to 1.
	if d.axis == AxisRows {
		return newReplicate(d.src, Dynamic, Fixed(1), factor, 1, opDirReplicate)
	}

	return newReplicate(d.src, Fixed(1), Dynamic, 1, factor, opDirReplicate)
}

// Sum collapses the named axis into totals.
// MAIN DESCRIPTION:
//   - AxisRows: 1×c result of per-column totals; AxisCols: r×1 of per-row totals.
//
// Implementation:
//   - Stage 1: ValidateExpr + ValidateAxis.
//   - Stage 2: allocate the collapsed Dense.
//   - Stage 3: accumulate in fixed i→j order through Coeff; write through Set
//     so the numeric policy rejects overflow to ±Inf.
//
// Returns:
//   - *Dense: the collapsed totals.
//
// Errors:
//   - ErrNilExpr, ErrBadAxis, ErrInvalidDimensions (degenerate source extent),
//     ErrNaNInf (accumulation left the finite range under the policy).
//
// Determinism:
//   - Fixed accumulation order; identical results across runs.
//
// Complexity:
//   - Time O(r*c), Space O(result).
func (d Directional) Sum() (*Dense, error) {
	if err := ValidateExpr(d.src); err != nil {
		return nil, exprErrorf(opDirSum, err)
	}
	if err := ValidateAxis(d.axis); err != nil {
		return nil, exprErrorf(opDirSum, err)
	}

	rows, cols := d.src.Rows(), d.src.Cols()
	var i, j int
	var acc float64

	if d.axis == AxisRows {
		// Collapse rows: one total per column.
		res, err := NewDense(1, cols)
		if err != nil {
			return nil, exprErrorf(opDirSum, err)
		}
		for j = 0; j < cols; j++ {
			acc = 0
			for i = 0; i < rows; i++ {
				acc += d.src.Coeff(i, j)
			}
			if err = res.Set(0, j, acc); err != nil {
				return nil, exprErrorf(opDirSum, err)
			}
		}

		return res, nil
	}

	// Collapse columns: one total per row.
	res, err := NewDense(rows, 1)
	if err != nil {
		return nil, exprErrorf(opDirSum, err)
	}
	for i = 0; i < rows; i++ {
		acc = 0
		for j = 0; j < cols; j++ {
			acc += d.src.Coeff(i, j)
		}
		if err = res.Set(i, 0, acc); err != nil {
			return nil, exprErrorf(opDirSum, err)
		}
	}

	return res, nil
}

// Mean collapses the named axis into averages: Sum divided by the collapsed
// extent.
// Implementation:
//   - Stage 1: delegate to Sum (validation included).
//   - Stage 2: divide each total by the collapsed extent through Set.
//
// Errors:
//   - Everything Sum returns; the collapsed extent is >= 1 whenever Sum
//     succeeded, so the division itself introduces no new failure mode.
//
// Complexity:
//   - Time O(r*c), Space O(result).
func (d Directional) Mean() (*Dense, error) {
	totals, err := d.Sum()
	if err != nil {
		// Sum already tagged the underlying cause; add only the outer context.
		return nil, exprErrorf(opDirMean, err)
	}

	// The collapsed extent: rows for AxisRows, cols for AxisCols.
	n := d.src.Rows()
	if d.axis == AxisCols {
		n = d.src.Cols()
	}
	inv := 1.0 / float64(n)

	var i, j int
	for i = 0; i < totals.Rows(); i++ {
		for j = 0; j < totals.Cols(); j++ {
			if err = totals.Set(i, j, totals.Coeff(i, j)*inv); err != nil {
				return nil, exprErrorf(opDirMean, err)
			}
		}
	}

	return totals, nil
}
