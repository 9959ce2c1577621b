// SPDX-License-Identifier: MIT

package semiring

import (
	"fmt"
	"math/bits"
)

// primeFieldSemiring is ℤ/pℤ for a prime p.
type primeFieldSemiring struct {
	p uint64
}

// NewPrimeField returns the field of integers modulo the prime p.
// Returns ErrNotPrime unless p is prime.
// Complexity: O(√p) primality check.
func NewPrimeField(p int64) (Semiring, error) {
	if !isPrime(p) {
		return nil, fmt.Errorf("NewPrimeField(%d): %w", p, ErrNotPrime)
	}

	return &primeFieldSemiring{p: uint64(p)}, nil
}

func (*primeFieldSemiring) Kind() Kind  { return PrimeField }
func (*primeFieldSemiring) Zero() int64 { return 0 }
func (*primeFieldSemiring) One() int64  { return 1 }

// Characteristic returns p.
func (s *primeFieldSemiring) Characteristic() int64 { return int64(s.p) }

// Plus adds modulo p.
func (s *primeFieldSemiring) Plus(x, y int64) int64 {
	return int64((uint64(x) + uint64(y)) % s.p) // x, y < p < 2^63
}

// Times multiplies modulo p through a 128-bit intermediate product.
// Complexity: O(1).
func (s *primeFieldSemiring) Times(x, y int64) int64 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))

	return int64(bits.Rem64(hi, lo, s.p))
}

func (s *primeFieldSemiring) Contains(v int64) bool { return v >= 0 && uint64(v) < s.p }

func (s *primeFieldSemiring) String() string {
	return fmt.Sprintf("%s(%d)", PrimeField, s.p)
}

// isPrime reports whether n is prime by trial division.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}
