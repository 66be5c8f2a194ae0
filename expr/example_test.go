package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/expr"
)

// ExampleTile tiles a 2×2 block twice down and three times across.
func ExampleTile() {
	m, _ := expr.NewDenseFrom([][]float64{
		{1, 2},
		{3, 4},
	})
	v, _ := expr.Tile(m, 2, 3)      // 4×6 lazy view, no copying yet
	res, _ := expr.Eval(v)          // materialize once
	fmt.Print(res)
	// Output:
	// [1, 2, 1, 2, 1, 2]
	// [3, 4, 3, 4, 3, 4]
	// [1, 2, 1, 2, 1, 2]
	// [3, 4, 3, 4, 3, 4]
}

// ExampleReplicateRows stacks a row vector into a matrix.
func ExampleReplicateRows() {
	row, _ := expr.NewDenseFrom([][]float64{{5, 6, 7}})
	v, _ := expr.ReplicateRows(row, 4)
	res, _ := expr.Eval(v)
	fmt.Print(res)
	// Output:
	// [5, 6, 7]
	// [5, 6, 7]
	// [5, 6, 7]
	// [5, 6, 7]
}

// ExampleAlong averages a matrix down its rows.
func ExampleAlong() {
	m, _ := expr.NewDenseFrom([][]float64{
		{2, 4},
		{6, 8},
	})
	avg, _ := expr.Along(m, expr.AxisRows).Mean()
	fmt.Print(avg)
	// Output:
	// [4, 6]
}

// ExampleNewReplicate declares factors at construction time; the descriptor
// then knows the exact result extents before any evaluation happens.
func ExampleNewReplicate() {
	m, _ := expr.NewDenseFrom([][]float64{
		{1, 2},
		{3, 4},
	})
	v, _ := expr.NewReplicate(m, expr.Fixed(2), expr.Fixed(3))
	fmt.Println(v.Rows(), v.Cols())
	fmt.Println(v.Traits().Rows, v.Traits().Cols)
	x, _ := v.At(3, 5)
	fmt.Println(x)
	// Output:
	// 4 6
	// 4 6
	// 4
}
