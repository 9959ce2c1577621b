// SPDX-License-Identifier: MIT
// Package element: shared guards and hashing.
//
// All guards are O(1), allocate nothing, and panic with a wrapped contract
// sentinel on violation.

package element

import "golang.org/x/exp/constraints"

// mustLive panics with ErrReleased if the storage has been dropped.
func mustLive(op string, live bool) {
	if !live {
		contractPanic(op, ErrReleased)
	}
}

// mustSameDegree panics with ErrDegreeMismatch unless all degrees agree.
func mustSameDegree(op string, want int, got ...int) {
	for _, d := range got {
		if d != want {
			contractPanic(op, ErrDegreeMismatch)
		}
	}
}

// mustOperand asserts that e has the destination's concrete type E.
func mustOperand[E Element](op string, e Element) E {
	v, ok := e.(E)
	if !ok {
		contractPanic(op, ErrKindMismatch)
	}

	return v
}

// mustNotAlias panics with ErrAliasedOperand if dst is x or y.
func mustNotAlias[P comparable](op string, dst, x, y P) {
	if dst == x || dst == y {
		contractPanic(op, ErrAliasedOperand)
	}
}

// hashSeq folds data left to right as seed = seed*m + v.
// Complexity: O(len(data)), no allocation.
func hashSeq[T constraints.Integer](data []T, m uint64) uint64 {
	var seed uint64
	for _, v := range data {
		seed = seed*m + uint64(v)
	}

	return seed
}

// isqrt returns r with r*r == n, or -1 if n is not a perfect square.
func isqrt(n int) int {
	if n < 0 {
		return -1
	}
	r := 0
	for r*r < n {
		r++
	}
	if r*r != n {
		return -1
	}

	return r
}
