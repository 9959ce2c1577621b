// SPDX-License-Identifier: MIT

// Package semiring supplies the arithmetic that parameterizes matrix
// multiplication in the element package.
//
// A Semiring provides Plus, Times, an additive identity (Zero) and a
// multiplicative identity (One) over int64 values. Infinite values are encoded
// by the sentinels NegInf and PosInf.
//
// Concrete semirings:
//
//	boolean                 {0,1} with OR / AND
//	max-plus                ℤ ∪ {−∞} with max / +
//	min-plus                ℤ ∪ {+∞} with min / +
//	tropical-max-plus(t)    {−∞} ∪ [0,t], results clamped at t
//	tropical-min-plus(t)    [0,t] ∪ {+∞}, results clamped at t
//	natural                 ℕ with + / ×
//	natural(t,p)            ℕ truncated at threshold t with period p
//	prime-field(p)          ℤ/pℤ, p prime
//	projective-max-plus     max-plus, matrices normalized so the largest finite entry is 0
//
// Some semirings also implement Normalizer, a hook the matrix representation
// runs once after every product. The tropical semirings implement Bounded,
// which reports their threshold.
//
// Arithmetic never wraps. Finite max-plus and min-plus sums saturate at
// MinFinite and MaxFinite; truncated naturals fold the exact 128-bit result;
// plain naturals saturate at math.MaxInt64.
//
// Instances are immutable and may be shared by any number of matrices. The
// Registry hands out one shared instance per descriptor and counts
// references so the instance outlives every matrix built over it:
//
//	reg := semiring.NewRegistry()
//	sr, err := reg.Acquire("tropical-max-plus(5)")
//	if err != nil { ... }
//	defer reg.Release(sr)
package semiring
