// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/semigroups/semiring"
)

// Matrix is an n×n matrix over a semiring, stored row-major.
//
// The semiring is a shared, non-owning, read-only reference: many matrices
// point at one instance, and that instance must outlive all of them (see
// semiring.Registry). Products are only defined between matrices over the
// same instance.
type Matrix struct {
	n    int
	data []int64 // len == n*n; nil once released
	sr   semiring.Semiring
	norm semiring.Normalizer // nil when the semiring has no normalization hook
	kind Kind
}

// NewMatrix copies row-major entries into a new Matrix over sr and applies
// the semiring's normalization hook.
// Errors: ErrNilSemiring, ErrKindSemiring for the boolean semiring (use
// BooleanMat), ErrNotSquare, ErrEntryOutOfRange for entries outside the
// carrier.
// Complexity: O(n²).
func NewMatrix(entries []int64, sr semiring.Semiring) (*Matrix, error) {
	if sr == nil {
		return nil, elementErrorf("NewMatrix", ErrNilSemiring)
	}
	kind, ok := matrixKinds[sr.Kind()]
	if !ok {
		return nil, elementErrorf("NewMatrix: "+sr.String(), ErrKindSemiring)
	}
	n := isqrt(len(entries))
	if n < 0 {
		return nil, elementErrorf(fmt.Sprintf("NewMatrix: %d entries", len(entries)), ErrNotSquare)
	}
	for i, v := range entries {
		if !sr.Contains(v) {
			return nil, elementErrorf(fmt.Sprintf("NewMatrix: entry %d=%d in %s", i, v, sr), ErrEntryOutOfRange)
		}
	}
	m := newMatrix(n, sr, kind)
	copy(m.data, entries)
	m.normalize()

	return m, nil
}

// newMatrix allocates an n×n matrix filled with sr.Zero().
func newMatrix(n int, sr semiring.Semiring, kind Kind) *Matrix {
	m := &Matrix{n: n, data: make([]int64, n*n), sr: sr, kind: kind}
	m.norm, _ = sr.(semiring.Normalizer)
	zero := sr.Zero()
	for i := range m.data {
		m.data[i] = zero
	}

	return m
}

func (m *Matrix) normalize() {
	if m.norm != nil {
		m.norm.Normalize(m.data, m.n)
	}
}

func (*Matrix) sealed() {}

// Kind is derived from the semiring family.
func (m *Matrix) Kind() Kind { return m.kind }

// Semiring returns the shared semiring reference.
func (m *Matrix) Semiring() semiring.Semiring { return m.sr }

// Degree is the side length n.
// Complexity: O(1).
func (m *Matrix) Degree() int {
	mustLive("Matrix.Degree", m.data != nil)

	return m.n
}

// Complexity is n³, the number of Plus/Times pairs in a product.
func (m *Matrix) Complexity() int {
	n := m.Degree()

	return n * n * n
}

// At returns the entry in row i, column j.
func (m *Matrix) At(i, j int) int64 {
	mustLive("Matrix.At", m.data != nil)

	return m.data[i*m.n+j]
}

// Equal compares entries; matrices over different semiring instances are
// never equal.
func (m *Matrix) Equal(other Element) bool {
	o, ok := other.(*Matrix)
	if !ok || o.sr != m.sr {
		return false
	}
	mustLive("Matrix.Equal", m.data != nil && o.data != nil)
	mustSameDegree("Matrix.Equal", m.n, o.n)

	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// Hash folds the entries row by row with multiplier n². The semiring does
// not take part; matrices over different instances may collide.
// Complexity: O(n²).
func (m *Matrix) Hash() uint64 {
	mustLive("Matrix.Hash", m.data != nil)

	return hashSeq(m.data, uint64(len(m.data)))
}

// Identity has One() on the diagonal and Zero() elsewhere.
func (m *Matrix) Identity() Element {
	mustLive("Matrix.Identity", m.data != nil)
	out := newMatrix(m.n, m.sr, m.kind)
	one := m.sr.One()
	for i := 0; i < m.n; i++ {
		out.data[i*m.n+i] = one
	}
	out.normalize()

	return out
}

// Copy pads new rows and columns with the semiring's Zero().
func (m *Matrix) Copy(extra int) Element {
	mustLive("Matrix.Copy", m.data != nil)
	if extra < 0 {
		contractPanic("Matrix.Copy", ErrNegativeExtra)
	}
	k := m.n + extra
	out := newMatrix(k, m.sr, m.kind)
	for i := 0; i < m.n; i++ {
		copy(out.data[i*k:i*k+m.n], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Release drops the entries. The semiring reference is left untouched: its
// owner is the caller (or a semiring.Registry).
func (m *Matrix) Release() {
	mustLive("Matrix.Release", m.data != nil)
	m.data = nil
}

// Redefine sets m[i,j] = Plus_k Times(x[i,k], y[k,j]) and then runs the
// semiring's normalization hook once over the result.
// Stage 1 (Validate): kinds, aliasing, semiring instance, liveness, degrees.
// Stage 2 (Execute): row-by-row accumulation starting from Zero().
// Stage 3 (Finalize): normalize in place.
// Complexity: O(n³) semiring operations, no allocation.
func (m *Matrix) Redefine(x, y Element) {
	const op = "Matrix.Redefine"
	xx := mustOperand[*Matrix](op, x)
	yy := mustOperand[*Matrix](op, y)
	mustNotAlias(op, m, xx, yy)
	if xx.sr != m.sr || yy.sr != m.sr {
		contractPanic(op, ErrSemiringMismatch)
	}
	mustLive(op, m.data != nil && xx.data != nil && yy.data != nil)
	mustSameDegree(op, m.n, xx.n, yy.n)

	var (
		n       = m.n
		sr      = m.sr
		zero    = sr.Zero()
		i, j, k int
		acc     int64
	)
	// Accumulate each entry of the product
	for i = 0; i < n; i++ {
		xRow := xx.data[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			acc = zero
			for k = 0; k < n; k++ {
				acc = sr.Plus(acc, sr.Times(xRow[k], yy.data[k*n+j]))
			}
			m.data[i*n+j] = acc
		}
	}
	m.normalize()
}

// String renders −∞ as "-inf" and +∞ as "inf".
func (m *Matrix) String() string {
	if m.data == nil {
		return "Matrix(released)"
	}
	var sb strings.Builder
	sb.WriteString("Matrix<")
	sb.WriteString(m.sr.String())
	sb.WriteString(">[")
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			switch v := m.data[i*m.n+j]; v {
			case semiring.NegInf:
				sb.WriteString("-inf")
			case semiring.PosInf:
				sb.WriteString("inf")
			default:
				sb.WriteString(strconv.FormatInt(v, 10))
			}
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
