// SPDX-License-Identifier: MIT
// Package semiring: overflow-safe integer arithmetic.
//
// Purpose:
//   - addSat keeps finite max-plus/min-plus sums inside [MinFinite, MaxFinite].
//   - fold128 reduces a 128-bit natural number into a truncated carrier.
//
// All helpers are O(1) and allocate nothing.

package semiring

import "math/bits"

// addSat returns x+y saturated to [MinFinite, MaxFinite].
// Inputs: finite x, y (neither NegInf nor PosInf).
func addSat(x, y int64) int64 {
	s := x + y
	switch {
	case x > 0 && y > 0 && s < 0, s == PosInf:
		return MaxFinite // positive overflow, or landed on +∞
	case x < 0 && y < 0 && s >= 0, s == NegInf:
		return MinFinite // negative overflow, or landed on −∞
	}

	return s
}

// fold128 maps the non-negative value hi·2⁶⁴+lo to t + (v−t) mod p when it
// exceeds t, and returns it unchanged otherwise.
// Inputs: t >= 0, p >= 1.
func fold128(hi, lo uint64, t, p int64) int64 {
	if hi == 0 && lo <= uint64(t) {
		return int64(lo)
	}
	// v − t, still 128 bits wide
	lo, borrow := bits.Sub64(lo, uint64(t), 0)
	hi -= borrow

	return t + int64(bits.Rem64(hi, lo, uint64(p)))
}
