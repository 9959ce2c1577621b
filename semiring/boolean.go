// SPDX-License-Identifier: MIT

package semiring

// booleanSemiring is {0,1} with OR and AND. The pad keeps the struct
// non-zero-size so that each instance has its own address.
type booleanSemiring struct {
	_ byte
}

// NewBoolean returns the boolean semiring ({0,1}, OR, AND).
func NewBoolean() Semiring { return &booleanSemiring{} }

func (*booleanSemiring) Kind() Kind  { return Boolean }
func (*booleanSemiring) Zero() int64 { return 0 }
func (*booleanSemiring) One() int64  { return 1 }

func (*booleanSemiring) Plus(x, y int64) int64 {
	if x != 0 || y != 0 {
		return 1
	}

	return 0
}

func (*booleanSemiring) Times(x, y int64) int64 {
	if x != 0 && y != 0 {
		return 1
	}

	return 0
}

func (*booleanSemiring) Contains(v int64) bool { return v == 0 || v == 1 }
func (*booleanSemiring) String() string        { return Boolean.String() }
