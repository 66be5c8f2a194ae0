// SPDX-License-Identifier: MIT

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/expr"
)

// TestFixedDim verifies that Fixed wraps a concrete extent and exposes it.
func TestFixedDim(t *testing.T) {
	d := expr.Fixed(7)                 // concrete extent
	require.False(t, d.IsDynamic())    // fixed is not dynamic
	require.Equal(t, 7, d.Value())     // Value unwraps the extent
	require.Equal(t, "7", d.String())  // decimal rendering
	z := expr.Fixed(0)                 // zero is a legal fixed extent
	require.Equal(t, 0, z.Value())     // unwraps to zero
	require.False(t, z.IsDynamic())    // still fixed
	require.Equal(t, "0", z.String())  // renders as "0"
}

// TestDynamicDim verifies the Dynamic marker behavior and rendering.
func TestDynamicDim(t *testing.T) {
	require.True(t, expr.Dynamic.IsDynamic())           // the marker is dynamic
	require.Equal(t, "Dynamic", expr.Dynamic.String())  // symbolic rendering
}

// TestFixedRejectsNegative ensures Fixed panics on a negative extent.
func TestFixedRejectsNegative(t *testing.T) {
	ExpectPanic(t, expr.PanicFixedNegative_TestOnly, func() {
		_ = expr.Fixed(-1) // programmer error: extents are never negative
	})
}

// TestValuePanicsOnDynamic ensures Value refuses to unwrap the Dynamic marker.
func TestValuePanicsOnDynamic(t *testing.T) {
	ExpectPanic(t, expr.PanicValueDynamic_TestOnly, func() {
		_ = expr.Dynamic.Value() // there is no number to return
	})
}

// TestDimMul verifies product arithmetic, including dynamic dominance.
func TestDimMul(t *testing.T) {
	tests := []struct {
		name string
		a, b expr.Dim
		want expr.Dim
	}{
		{name: "fixed*fixed", a: expr.Fixed(2), b: expr.Fixed(3), want: expr.Fixed(6)},
		{name: "fixed*one", a: expr.Fixed(5), b: expr.Fixed(1), want: expr.Fixed(5)},
		{name: "fixed*zero", a: expr.Fixed(4), b: expr.Fixed(0), want: expr.Fixed(0)},
		{name: "dynamic*fixed", a: expr.Dynamic, b: expr.Fixed(3), want: expr.Dynamic},
		{name: "fixed*dynamic", a: expr.Fixed(3), b: expr.Dynamic, want: expr.Dynamic},
		{name: "dynamic*dynamic", a: expr.Dynamic, b: expr.Dynamic, want: expr.Dynamic},
	}
	var tc struct {
		name string
		a, b expr.Dim
		want expr.Dim
	}
	for _, tc = range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Mul(tc.b)) // product with dominance
		})
	}
}
