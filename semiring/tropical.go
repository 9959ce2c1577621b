// SPDX-License-Identifier: MIT

package semiring

import "fmt"

// tropicalMaxPlusSemiring is {−∞} ∪ [0,t] with max and + truncated at t.
type tropicalMaxPlusSemiring struct {
	threshold int64
}

// NewTropicalMaxPlus returns the tropical max-plus semiring with threshold t.
// Returns ErrBadThreshold if t < 0.
func NewTropicalMaxPlus(t int64) (Semiring, error) {
	if t < 0 {
		return nil, fmt.Errorf("NewTropicalMaxPlus(%d): %w", t, ErrBadThreshold)
	}

	return &tropicalMaxPlusSemiring{threshold: t}, nil
}

func (*tropicalMaxPlusSemiring) Kind() Kind              { return TropicalMaxPlus }
func (*tropicalMaxPlusSemiring) Zero() int64             { return NegInf }
func (*tropicalMaxPlusSemiring) One() int64              { return 0 }
func (s *tropicalMaxPlusSemiring) Threshold() int64      { return s.threshold }
func (s *tropicalMaxPlusSemiring) Plus(x, y int64) int64 { return min(max(x, y), s.threshold) }

// Times adds and clamps at the threshold; −∞ is absorbing.
func (s *tropicalMaxPlusSemiring) Times(x, y int64) int64 {
	if x == NegInf || y == NegInf {
		return NegInf
	}

	return min(addSat(x, y), s.threshold)
}

// Contains accepts −∞ and [0, t].
func (s *tropicalMaxPlusSemiring) Contains(v int64) bool {
	return v == NegInf || (v >= 0 && v <= s.threshold)
}

func (s *tropicalMaxPlusSemiring) String() string {
	return fmt.Sprintf("%s(%d)", TropicalMaxPlus, s.threshold)
}

// Normalize clamps every finite entry above the threshold.
func (s *tropicalMaxPlusSemiring) Normalize(entries []int64, _ int) {
	for i, v := range entries {
		if v > s.threshold {
			entries[i] = s.threshold
		}
	}
}

// tropicalMinPlusSemiring is [0,t] ∪ {+∞} with min and + truncated at t.
type tropicalMinPlusSemiring struct {
	threshold int64
}

// NewTropicalMinPlus returns the tropical min-plus semiring with threshold t.
// Returns ErrBadThreshold if t < 0.
func NewTropicalMinPlus(t int64) (Semiring, error) {
	if t < 0 {
		return nil, fmt.Errorf("NewTropicalMinPlus(%d): %w", t, ErrBadThreshold)
	}

	return &tropicalMinPlusSemiring{threshold: t}, nil
}

func (*tropicalMinPlusSemiring) Kind() Kind         { return TropicalMinPlus }
func (*tropicalMinPlusSemiring) Zero() int64        { return PosInf }
func (*tropicalMinPlusSemiring) One() int64         { return 0 }
func (s *tropicalMinPlusSemiring) Threshold() int64 { return s.threshold }

func (s *tropicalMinPlusSemiring) Plus(x, y int64) int64 {
	return s.clamp(min(x, y))
}

// Times adds and clamps at the threshold; +∞ is absorbing.
func (s *tropicalMinPlusSemiring) Times(x, y int64) int64 {
	if x == PosInf || y == PosInf {
		return PosInf
	}

	return s.clamp(addSat(x, y))
}

// clamp truncates finite values at the threshold; +∞ stays +∞.
func (s *tropicalMinPlusSemiring) clamp(v int64) int64 {
	if v != PosInf && v > s.threshold {
		return s.threshold
	}

	return v
}

// Contains accepts [0, t] and +∞.
func (s *tropicalMinPlusSemiring) Contains(v int64) bool {
	return v == PosInf || (v >= 0 && v <= s.threshold)
}

func (s *tropicalMinPlusSemiring) String() string {
	return fmt.Sprintf("%s(%d)", TropicalMinPlus, s.threshold)
}

// Normalize clamps every finite entry above the threshold.
func (s *tropicalMinPlusSemiring) Normalize(entries []int64, _ int) {
	for i, v := range entries {
		entries[i] = s.clamp(v)
	}
}
