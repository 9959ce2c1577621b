// SPDX-License-Identifier: MIT

package semiring

import "fmt"

// maxPlusSemiring is ℤ ∪ {−∞} with max as addition and + as multiplication.
// The pad makes every instance a distinct allocation.
type maxPlusSemiring struct {
	_ byte
}

// NewMaxPlus returns the max-plus semiring.
func NewMaxPlus() Semiring { return &maxPlusSemiring{} }

func (*maxPlusSemiring) Kind() Kind            { return MaxPlus }
func (*maxPlusSemiring) Zero() int64           { return NegInf }
func (*maxPlusSemiring) One() int64            { return 0 }
func (*maxPlusSemiring) Plus(x, y int64) int64 { return max(x, y) }
func (*maxPlusSemiring) Contains(v int64) bool { return v != PosInf }
func (*maxPlusSemiring) String() string        { return MaxPlus.String() }

// Times adds finite values with saturation.
func (*maxPlusSemiring) Times(x, y int64) int64 {
	if x == NegInf || y == NegInf {
		return NegInf // −∞ is absorbing
	}

	return addSat(x, y)
}

// minPlusSemiring is ℤ ∪ {+∞} with min as addition and + as multiplication.
// The pad makes every instance a distinct allocation.
type minPlusSemiring struct {
	_ byte
}

// NewMinPlus returns the min-plus semiring.
func NewMinPlus() Semiring { return &minPlusSemiring{} }

func (*minPlusSemiring) Kind() Kind            { return MinPlus }
func (*minPlusSemiring) Zero() int64           { return PosInf }
func (*minPlusSemiring) One() int64            { return 0 }
func (*minPlusSemiring) Plus(x, y int64) int64 { return min(x, y) }
func (*minPlusSemiring) Contains(v int64) bool { return v != NegInf }
func (*minPlusSemiring) String() string        { return MinPlus.String() }

// Times adds finite values with saturation.
func (*minPlusSemiring) Times(x, y int64) int64 {
	if x == PosInf || y == PosInf {
		return PosInf // +∞ is absorbing
	}

	return addSat(x, y)
}

// projectiveMaxPlusSemiring has max-plus arithmetic. Its matrices are
// identified up to adding a scalar, so Normalize shifts every finite entry
// until the largest one is 0.
type projectiveMaxPlusSemiring struct {
	maxPlusSemiring
}

// NewProjectiveMaxPlus returns the projective max-plus semiring.
func NewProjectiveMaxPlus() Semiring { return &projectiveMaxPlusSemiring{} }

func (*projectiveMaxPlusSemiring) Kind() Kind     { return ProjectiveMaxPlus }
func (*projectiveMaxPlusSemiring) String() string { return ProjectiveMaxPlus.String() }

// Normalize subtracts the maximum finite entry from every finite entry.
// A matrix with no finite entry is left unchanged.
// Complexity: O(n²), no allocation.
func (*projectiveMaxPlusSemiring) Normalize(entries []int64, n int) {
	if len(entries) != n*n {
		panic(fmt.Sprintf("semiring: projective-max-plus Normalize: %d entries for n=%d", len(entries), n))
	}
	norm := NegInf
	for _, v := range entries {
		if v > norm {
			norm = v
		}
	}
	if norm == NegInf || norm == 0 {
		return // nothing finite, or already normalized
	}
	for i, v := range entries {
		if v != NegInf {
			entries[i] = addSat(v, -norm)
		}
	}
}
