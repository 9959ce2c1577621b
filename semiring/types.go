// SPDX-License-Identifier: MIT

package semiring

import "math"

// Infinite values shared by the tropical-style semirings.
const (
	NegInf int64 = math.MinInt64 // −∞, zero of max-plus
	PosInf int64 = math.MaxInt64 // +∞, zero of min-plus
)

// Finite range of the max-plus and min-plus families. Sums that leave it
// saturate at the nearest bound instead of wrapping onto an infinity.
const (
	MinFinite = NegInf + 1
	MaxFinite = PosInf - 1
)

// Kind identifies a family of semirings.
type Kind uint8

const (
	Boolean Kind = iota
	MaxPlus
	MinPlus
	TropicalMaxPlus
	TropicalMinPlus
	Natural
	PrimeField
	ProjectiveMaxPlus
)

var kindNames = [...]string{
	Boolean:           "boolean",
	MaxPlus:           "max-plus",
	MinPlus:           "min-plus",
	TropicalMaxPlus:   "tropical-max-plus",
	TropicalMinPlus:   "tropical-min-plus",
	Natural:           "natural",
	PrimeField:        "prime-field",
	ProjectiveMaxPlus: "projective-max-plus",
}

// String returns the descriptor name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Semiring is the arithmetic used by matrix multiplication.
//
// Implementations are immutable; every method is safe for concurrent use.
// Plus and Times are only defined for values satisfying Contains.
type Semiring interface {
	// Kind reports the semiring family.
	Kind() Kind

	// Zero returns the additive identity.
	Zero() int64

	// One returns the multiplicative identity.
	One() int64

	// Plus is the addition-like operation.
	Plus(x, y int64) int64

	// Times is the multiplication-like operation.
	Times(x, y int64) int64

	// Contains reports whether v belongs to the carrier set.
	Contains(v int64) bool

	// String returns the canonical descriptor, e.g. "prime-field(7)".
	// Parse(s.String()) yields an equivalent semiring.
	String() string
}

// Bounded is implemented by the tropical semirings, whose finite values never
// exceed a threshold.
type Bounded interface {
	Threshold() int64
}

// Normalizer is implemented by semirings whose matrices need a pass over the
// finished product. entries is an n×n row-major matrix modified in place.
// Normalize must be idempotent and must not allocate.
type Normalizer interface {
	Normalize(entries []int64, n int)
}
