// SPDX-License-Identifier: MIT

package element

import "fmt"

// Bipartition is a partition of 2n points into blocks. Points 0..n-1 form
// the domain, points n..2n-1 the codomain; blocks[p] is the block label of
// point p. Labels are always canonical: 0-based and numbered in order of
// first occurrence, so equal partitions have equal label lists.
type Bipartition struct {
	n      int      // degree: points per side
	blocks []uint32 // len == 2n; nil once released
	walker *bipartitionWalker
}

// NewBipartition builds a Bipartition of degree len(blocks)/2 from arbitrary
// block labels; two points share a block iff they share a label. Labels are
// renumbered to canonical form.
// Errors: ErrBadDegree if len(blocks) is odd.
// Complexity: O(n) expected.
func NewBipartition(blocks []uint32) (*Bipartition, error) {
	if len(blocks)%2 != 0 {
		return nil, elementErrorf(fmt.Sprintf("NewBipartition: %d labels", len(blocks)), ErrBadDegree)
	}
	b := &Bipartition{n: len(blocks) / 2, blocks: make([]uint32, len(blocks))}
	copy(b.blocks, blocks)
	canonicalize(b.blocks)

	return b, nil
}

// canonicalize renumbers labels in order of first occurrence.
func canonicalize(labels []uint32) {
	relabel := make(map[uint32]uint32, len(labels))
	for i, l := range labels {
		nl, ok := relabel[l]
		if !ok {
			nl = uint32(len(relabel))
			relabel[l] = nl
		}
		labels[i] = nl
	}
}

func (*Bipartition) sealed()    {}
// Kind reports KindBipartition.
func (*Bipartition) Kind() Kind { return KindBipartition }

// Degree is the number of points on each side.
func (b *Bipartition) Degree() int {
	mustLive("Bipartition.Degree", b.blocks != nil)

	return b.n
}

// Complexity is (2n)³, the worst-case cost of the reachability search.
func (b *Bipartition) Complexity() int {
	m := 2 * b.Degree()

	return m * m * m
}

// Block returns the canonical label of point p in [0, 2n).
func (b *Bipartition) Block(p int) uint32 {
	mustLive("Bipartition.Block", b.blocks != nil)

	return b.blocks[p]
}

// Blocks returns a copy of the canonical label list.
func (b *Bipartition) Blocks() []uint32 {
	mustLive("Bipartition.Blocks", b.blocks != nil)
	out := make([]uint32, len(b.blocks))
	copy(out, b.blocks)

	return out
}

// NrBlocks is the number of blocks.
func (b *Bipartition) NrBlocks() int {
	mustLive("Bipartition.NrBlocks", b.blocks != nil)
	var top uint32
	for _, l := range b.blocks {
		top = max(top, l+1) // canonical: labels are 0..k-1
	}

	return int(top)
}

// Equal reports whether other is a Bipartition with the same blocks.
//
// Inputs: other of the same degree (a mismatch panics with ErrDegreeMismatch).
// Returns false for any other representation.
// Complexity: O(n); canonical labels reduce equality to a slice comparison.
func (b *Bipartition) Equal(other Element) bool {
	o, ok := other.(*Bipartition)
	if !ok {
		return false
	}
	mustLive("Bipartition.Equal", b.blocks != nil && o.blocks != nil)
	mustSameDegree("Bipartition.Equal", b.n, o.n)

	for i, l := range b.blocks {
		if o.blocks[i] != l {
			return false
		}
	}

	return true
}

// Hash folds the canonical labels with multiplier 2n.
// Complexity: O(n).
func (b *Bipartition) Hash() uint64 {
	mustLive("Bipartition.Hash", b.blocks != nil)

	return hashSeq(b.blocks, uint64(len(b.blocks)))
}

// Identity pairs domain point i with codomain point i+n.
func (b *Bipartition) Identity() Element {
	mustLive("Bipartition.Identity", b.blocks != nil)
	out := &Bipartition{n: b.n, blocks: make([]uint32, 2*b.n)}
	for i := 0; i < b.n; i++ {
		out.blocks[i] = uint32(i)
		out.blocks[i+b.n] = uint32(i)
	}

	return out
}

// Copy pairs each new domain point with its new codomain point.
func (b *Bipartition) Copy(extra int) Element {
	mustLive("Bipartition.Copy", b.blocks != nil)
	if extra < 0 {
		contractPanic("Bipartition.Copy", ErrNegativeExtra)
	}
	n, k := b.n, b.n+extra
	out := &Bipartition{n: k, blocks: make([]uint32, 2*k)}
	fresh := uint32(2 * n) // above every existing label
	copy(out.blocks[:n], b.blocks[:n])
	copy(out.blocks[k:k+n], b.blocks[n:])
	for j := 0; j < extra; j++ {
		out.blocks[n+j] = fresh + uint32(j)
		out.blocks[k+n+j] = fresh + uint32(j)
	}
	canonicalize(out.blocks)

	return out
}

// Release drops the labels and the product scratch space.
// Any later call, including a second Release, panics with ErrReleased.
func (b *Bipartition) Release() {
	mustLive("Bipartition.Release", b.blocks != nil)
	b.blocks = nil
	b.walker = nil
}

// Redefine sets b to the product x*y: x's codomain is glued to y's domain
// and two outer points end up in one block iff they are connected through
// the glued graph.
//
// Scratch space is allocated on the first call for a destination and reused
// afterwards.
// Complexity: O(n²) time.
func (b *Bipartition) Redefine(x, y Element) {
	const op = "Bipartition.Redefine"
	xx := mustOperand[*Bipartition](op, x)
	yy := mustOperand[*Bipartition](op, y)
	mustNotAlias(op, b, xx, yy)
	mustLive(op, b.blocks != nil && xx.blocks != nil && yy.blocks != nil)
	mustSameDegree(op, b.n, xx.n, yy.n)

	// Scratch is sized once per destination
	if b.walker == nil {
		b.walker = newBipartitionWalker(b.n)
	}
	b.walker.product(b.blocks, xx.blocks, yy.blocks)
}

// String renders the canonical label list, e.g. "Bipartition[0 1 0 1]".
func (b *Bipartition) String() string {
	if b.blocks == nil {
		return "Bipartition(released)"
	}

	return fmt.Sprintf("Bipartition%v", b.blocks)
}

// unassigned marks an output point not yet reached by any seed.
const unassigned = ^uint32(0)

// blockIndex lists the members of every block, grouped by label:
// members[start[l]:start[l+1]] are the points labeled l.
type blockIndex struct {
	start   []int // len 2n+1
	members []int // len 2n
}

// build fills the index by counting sort. labels must be canonical (< 2n).
func (ix *blockIndex) build(labels []uint32) {
	m := len(labels)
	clear(ix.start)
	for _, l := range labels {
		ix.start[l+1]++
	}
	for l := 1; l <= m; l++ {
		ix.start[l] += ix.start[l-1]
	}
	for p, l := range labels {
		ix.members[ix.start[l]] = p
		ix.start[l]++
	}
	// start[l] now holds the end of block l; shift back by one block
	for l := m; l > 0; l-- {
		ix.start[l] = ix.start[l-1]
	}
	ix.start[0] = 0
}

func (ix *blockIndex) block(l uint32) []int {
	return ix.members[ix.start[l]:ix.start[l+1]]
}

// bipartitionWalker holds the scratch state of a product of degree n. The
// glued graph has the 2n points of x and the 2n points of y; x point n+j is
// identified with y point j. Stack entries encode x point p as p and y point
// p as 2n+p.
type bipartitionWalker struct {
	n            int
	xIdx, yIdx   blockIndex
	xSeen, ySeen []bool
	stack        []int
}

func newBipartitionWalker(n int) *bipartitionWalker {
	m := 2 * n

	return &bipartitionWalker{
		n:     n,
		xIdx:  blockIndex{start: make([]int, m+1), members: make([]int, m)},
		yIdx:  blockIndex{start: make([]int, m+1), members: make([]int, m)},
		xSeen: make([]bool, m),
		ySeen: make([]bool, m),
		stack: make([]int, 0, 2*m),
	}
}

// product writes the canonical labels of x*y into out.
//
// Seeds are taken from x's domain half and then from y's codomain half; a
// seed already attributed to a block is skipped, so labels are handed out in
// order of first occurrence. Both seen sets are reset before each seed.
func (w *bipartitionWalker) product(out, x, y []uint32) {
	n := w.n
	w.xIdx.build(x)
	w.yIdx.build(y)
	for p := range out {
		out[p] = unassigned
	}

	var next uint32
	for p := 0; p < n; p++ {
		if out[p] != unassigned {
			continue
		}
		w.walk(p, next, out, x, y)
		next++
	}
	for p := n; p < 2*n; p++ {
		if out[p] != unassigned {
			continue
		}
		w.walk(2*n+p, next, out, x, y)
		next++
	}
}

// walk labels with label every outer point connected to the seed vertex.
// Each block of x and of y is expanded at most once per seed.
func (w *bipartitionWalker) walk(seed int, label uint32, out, x, y []uint32) {
	n, m := w.n, 2*w.n
	clear(w.xSeen)
	clear(w.ySeen)
	w.stack = append(w.stack[:0], seed)

	var v, q int
	for len(w.stack) > 0 {
		v = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if v < m { // x point
			if w.xSeen[v] {
				continue
			}
			for _, q = range w.xIdx.block(x[v]) {
				w.xSeen[q] = true
				if q < n {
					out[q] = label // x domain is the product's domain
				} else if !w.ySeen[q-n] {
					w.stack = append(w.stack, m+q-n) // cross into y's domain
				}
			}
			continue
		}

		v -= m // y point
		if w.ySeen[v] {
			continue
		}
		for _, q = range w.yIdx.block(y[v]) {
			w.ySeen[q] = true
			if q >= n {
				out[q] = label // y codomain is the product's codomain
			} else if !w.xSeen[q+n] {
				w.stack = append(w.stack, q+n) // cross back into x's codomain
			}
		}
	}
}
