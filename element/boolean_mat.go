// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"slices"
	"strings"
)

// BooleanMat is an n×n boolean matrix stored row-major in a flat slice.
type BooleanMat struct {
	n    int    // side length
	data []bool // len == n*n; nil once released
}

// NewBooleanMat copies row-major entries into a new BooleanMat.
// Errors: ErrNotSquare if len(entries) is not a perfect square.
// Complexity: O(n²).
func NewBooleanMat(entries []bool) (*BooleanMat, error) {
	n := isqrt(len(entries))
	if n < 0 {
		return nil, elementErrorf(fmt.Sprintf("NewBooleanMat: %d entries", len(entries)), ErrNotSquare)
	}
	m := &BooleanMat{n: n, data: make([]bool, n*n)}
	copy(m.data, entries)

	return m, nil
}

func (*BooleanMat) sealed()    {}
// Kind reports KindBooleanMat.
func (*BooleanMat) Kind() Kind { return KindBooleanMat }

// Degree is the side length n.
// Complexity: O(1).
func (m *BooleanMat) Degree() int {
	mustLive("BooleanMat.Degree", m.data != nil)

	return m.n
}

// Complexity is n³, the cost of the naive product.
func (m *BooleanMat) Complexity() int {
	n := m.Degree()

	return n * n * n
}

// At returns the entry in row i, column j.
func (m *BooleanMat) At(i, j int) bool {
	mustLive("BooleanMat.At", m.data != nil)

	return m.data[i*m.n+j]
}

// Equal reports entrywise equality with another BooleanMat.
//
// Inputs: other of the same degree (a mismatch panics with ErrDegreeMismatch).
// Returns false for any other representation.
// Complexity: O(n²).
func (m *BooleanMat) Equal(other Element) bool {
	o, ok := other.(*BooleanMat)
	if !ok {
		return false
	}
	mustLive("BooleanMat.Equal", m.data != nil && o.data != nil)
	mustSameDegree("BooleanMat.Equal", m.n, o.n)

	return slices.Equal(m.data, o.data)
}

// Hash folds the entries row by row as bits, with multiplier n².
// Complexity: O(n²).
func (m *BooleanMat) Hash() uint64 {
	mustLive("BooleanMat.Hash", m.data != nil)
	var seed uint64
	mult := uint64(len(m.data))
	for _, b := range m.data {
		seed *= mult
		if b {
			seed++
		}
	}

	return seed
}

// Identity is the matrix with true on the diagonal.
func (m *BooleanMat) Identity() Element {
	mustLive("BooleanMat.Identity", m.data != nil)
	out := &BooleanMat{n: m.n, data: make([]bool, m.n*m.n)}
	for i := 0; i < m.n; i++ {
		out.data[i*m.n+i] = true
	}

	return out
}

// Copy pads new rows and columns with false.
func (m *BooleanMat) Copy(extra int) Element {
	mustLive("BooleanMat.Copy", m.data != nil)
	if extra < 0 {
		contractPanic("BooleanMat.Copy", ErrNegativeExtra)
	}
	k := m.n + extra
	out := &BooleanMat{n: k, data: make([]bool, k*k)}
	for i := 0; i < m.n; i++ {
		copy(out.data[i*k:i*k+m.n], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Release drops the entries; later use panics with ErrReleased.
func (m *BooleanMat) Release() {
	mustLive("BooleanMat.Release", m.data != nil)
	m.data = nil
}

// Redefine sets m[i,j] = OR_k (x[i,k] AND y[k,j]).
// Complexity: O(n³) worst case, no allocation.
func (m *BooleanMat) Redefine(x, y Element) {
	const op = "BooleanMat.Redefine"
	xx := mustOperand[*BooleanMat](op, x)
	yy := mustOperand[*BooleanMat](op, y)
	mustNotAlias(op, m, xx, yy)
	mustLive(op, m.data != nil && xx.data != nil && yy.data != nil)
	mustSameDegree(op, m.n, xx.n, yy.n)

	n := m.n
	var i, j, k int
	for i = 0; i < n; i++ {
		row := m.data[i*n : (i+1)*n]
		clear(row)
		for k = 0; k < n; k++ {
			if !xx.data[i*n+k] {
				continue // skip false for performance
			}
			yRow := yy.data[k*n : (k+1)*n]
			for j = 0; j < n; j++ {
				row[j] = row[j] || yRow[j]
			}
		}
	}
}

// String renders one 0/1 word per row, e.g. "BooleanMat[[10] [01]]".
func (m *BooleanMat) String() string {
	if m.data == nil {
		return "BooleanMat(released)"
	}
	var sb strings.Builder
	sb.WriteString("BooleanMat[")
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if m.data[i*m.n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
