// SPDX-License-Identifier: MIT
// Package element_test contains test helpers.
//
// Purpose:
//   - Build elements from literals, failing the test on construction errors.
//   - Assert contract panics by sentinel (recover + errors.Is).

package element_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semigroups/element"
	"github.com/katalvlaran/semigroups/semiring"
)

// undef16 is the undefined image for 2-byte partial permutations.
var undef16 = element.Undefined[uint16]()

func mustTrans(t testing.TB, image ...uint16) *element.Transformation[uint16] {
	t.Helper()
	x, err := element.NewTransformation(image)
	require.NoError(t, err)

	return x
}

func mustPPerm(t testing.TB, image ...uint16) *element.PartialPerm[uint16] {
	t.Helper()
	x, err := element.NewPartialPerm(image)
	require.NoError(t, err)

	return x
}

// mustBool builds a BooleanMat from 0/1 rows.
func mustBool(t testing.TB, rows ...[]int) *element.BooleanMat {
	t.Helper()
	var entries []bool
	for _, r := range rows {
		require.Len(t, r, len(rows), "rows must be square")
		for _, v := range r {
			entries = append(entries, v != 0)
		}
	}
	x, err := element.NewBooleanMat(entries)
	require.NoError(t, err)

	return x
}

func mustMatrix(t testing.TB, sr semiring.Semiring, entries ...int64) *element.Matrix {
	t.Helper()
	x, err := element.NewMatrix(entries, sr)
	require.NoError(t, err)

	return x
}

func mustBip(t testing.TB, blocks ...uint32) *element.Bipartition {
	t.Helper()
	x, err := element.NewBipartition(blocks)
	require.NoError(t, err)

	return x
}

func mustSemiring(t testing.TB, desc string) semiring.Semiring {
	t.Helper()
	sr, err := semiring.Parse(desc)
	require.NoError(t, err)

	return sr
}

// product returns a fresh x*y, using a copy of x as the destination.
func product(x, y element.Element) element.Element {
	dst := x.Copy(0)
	dst.Redefine(x, y)

	return dst
}

// requireContractPanic asserts that fn panics with an error wrapping target.
func requireContractPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}
