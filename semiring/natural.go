// SPDX-License-Identifier: MIT

package semiring

import (
	"fmt"
	"math"
	"math/bits"
)

// naturalSemiring is ℕ with ordinary addition and multiplication. When
// truncated, values above threshold t are folded back with period p:
// v ↦ t + (v−t) mod p. The fold is applied to the exact 128-bit result, so
// truncated arithmetic never overflows. Untruncated results saturate at
// math.MaxInt64.
type naturalSemiring struct {
	truncated bool
	threshold int64
	period    int64
}

// NewNatural returns the semiring of natural numbers.
func NewNatural() Semiring { return &naturalSemiring{} }

// NewTruncatedNatural returns ℕ truncated at threshold t with period p.
// Returns ErrBadThreshold if t < 0 and ErrBadPeriod if p < 1 or the
// carrier [0, t+p) does not fit in int64.
func NewTruncatedNatural(t, p int64) (Semiring, error) {
	if t < 0 {
		return nil, fmt.Errorf("NewTruncatedNatural(%d,%d): %w", t, p, ErrBadThreshold)
	}
	if p < 1 || t > math.MaxInt64-p+1 {
		return nil, fmt.Errorf("NewTruncatedNatural(%d,%d): %w", t, p, ErrBadPeriod)
	}

	return &naturalSemiring{truncated: true, threshold: t, period: p}, nil
}

func (*naturalSemiring) Kind() Kind  { return Natural }
func (*naturalSemiring) Zero() int64 { return 0 }
func (*naturalSemiring) One() int64  { return 1 }

// Truncation reports the threshold and period of s, with ok == false for
// the untruncated semiring.
func (s *naturalSemiring) Truncation() (threshold, period int64, ok bool) {
	return s.threshold, s.period, s.truncated
}

// Plus adds in 128 bits and reduces the result into the carrier.
func (s *naturalSemiring) Plus(x, y int64) int64 {
	sum, carry := bits.Add64(uint64(x), uint64(y), 0)

	return s.reduce(carry, sum)
}

// Times multiplies in 128 bits and reduces the result into the carrier.
func (s *naturalSemiring) Times(x, y int64) int64 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))

	return s.reduce(hi, lo)
}

// reduce brings the 128-bit value hi·2⁶⁴+lo back into the carrier.
func (s *naturalSemiring) reduce(hi, lo uint64) int64 {
	if s.truncated {
		return fold128(hi, lo, s.threshold, s.period)
	}
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(lo)
}

// Contains accepts every non-negative value, below t+p when truncated.
func (s *naturalSemiring) Contains(v int64) bool {
	if v < 0 {
		return false
	}

	return !s.truncated || v-s.threshold < s.period
}

// String is "natural" or "natural(t,p)".
func (s *naturalSemiring) String() string {
	if !s.truncated {
		return Natural.String()
	}

	return fmt.Sprintf("%s(%d,%d)", Natural, s.threshold, s.period)
}
