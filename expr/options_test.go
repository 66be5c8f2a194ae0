// SPDX-License-Identifier: MIT

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/expr"
)

// TestOptionsDefaults verifies the zero-option snapshot mirrors the Default* constants.
func TestOptionsDefaults(t *testing.T) {
	snap := expr.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, expr.DefaultWorkers, snap.Workers)               // sequential by default
	require.Equal(t, expr.DefaultValidateNaNInf, snap.ValidateNaNInf) // policy on by default
}

// TestOptionsLastWriterWins verifies later options override earlier ones.
func TestOptionsLastWriterWins(t *testing.T) {
	snap := expr.GatherOptionsSnapshot_TestOnly(
		expr.WithWorkers(2),
		expr.WithWorkers(8),          // later call wins
		expr.WithNoValidateNaNInf(),
		expr.WithValidateNaNInf(),    // later toggle wins
	)
	require.Equal(t, 8, snap.Workers)          // last WithWorkers value
	require.True(t, snap.ValidateNaNInf)       // last toggle value
}

// TestWithNoValidateNaNInf verifies the policy can be disabled explicitly.
func TestWithNoValidateNaNInf(t *testing.T) {
	snap := expr.GatherOptionsSnapshot_TestOnly(expr.WithNoValidateNaNInf())
	require.False(t, snap.ValidateNaNInf)      // policy off
	require.Equal(t, expr.DefaultWorkers, snap.Workers) // untouched fields keep defaults
}

// TestWithWorkersPanicsOnNonsense ensures the option rejects impossible values
// at call time rather than at evaluation time.
func TestWithWorkersPanicsOnNonsense(t *testing.T) {
	ExpectPanic(t, expr.PanicWorkersInvalid_TestOnly, func() {
		_ = expr.WithWorkers(0) // workers below one can never evaluate anything
	})
	ExpectPanic(t, expr.PanicWorkersInvalid_TestOnly, func() {
		_ = expr.WithWorkers(-3)
	})
}
