// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Undefined is the image of a point outside a partial permutation's domain:
// the largest value of T.
func Undefined[T Index]() T { return ^T(0) }

// PartialPerm is an injective partial function on {0..n-1}. image[i] is the
// image of i, or Undefined[T]() when i is not in the domain.
type PartialPerm[T Index] struct {
	image []T // len == degree; nil once released
}

// NewPartialPerm copies image into a new PartialPerm.
// Errors: ErrBadDegree if the degree leaves no room for Undefined in T,
// ErrImageOutOfRange for a defined value >= degree, ErrNotInjective if two
// points share an image.
// Complexity: O(n) time and O(n) scratch.
func NewPartialPerm[T Index](image []T) (*PartialPerm[T], error) {
	n := len(image)
	if uint64(n) > maxIndex[T]() {
		return nil, elementErrorf("NewPartialPerm", ErrBadDegree)
	}
	// Range and injectivity in a single pass
	hit := make([]bool, n)
	undef := Undefined[T]()
	for i, v := range image {
		if v == undef {
			continue
		}
		if int(v) >= n {
			return nil, elementErrorf(fmt.Sprintf("NewPartialPerm: image[%d]=%d", i, v), ErrImageOutOfRange)
		}
		if hit[v] {
			return nil, elementErrorf(fmt.Sprintf("NewPartialPerm: image[%d]=%d", i, v), ErrNotInjective)
		}
		hit[v] = true
	}
	p := &PartialPerm[T]{image: make([]T, n)}
	copy(p.image, image)

	return p, nil
}

func (*PartialPerm[T]) sealed() {}

// Kind reports KindPartialPerm2 or KindPartialPerm4 by the width of T.
func (*PartialPerm[T]) Kind() Kind {
	if maxIndex[T]() == math.MaxUint16 {
		return KindPartialPerm2
	}

	return KindPartialPerm4
}

// Degree is the size of the ground set {0..n-1}.
func (p *PartialPerm[T]) Degree() int {
	mustLive("PartialPerm.Degree", p.image != nil)

	return len(p.image)
}

// Complexity is the degree: a product is one pass over the image.
func (p *PartialPerm[T]) Complexity() int { return p.Degree() }

// At returns the image of point i, possibly Undefined[T]().
func (p *PartialPerm[T]) At(i int) T {
	mustLive("PartialPerm.At", p.image != nil)

	return p.image[i]
}

// Image returns a copy of the image list.
func (p *PartialPerm[T]) Image() []T {
	mustLive("PartialPerm.Image", p.image != nil)

	return slices.Clone(p.image)
}

// Rank is the number of points in the domain.
func (p *PartialPerm[T]) Rank() int {
	mustLive("PartialPerm.Rank", p.image != nil)
	rank := 0
	for _, v := range p.image {
		if v != Undefined[T]() {
			rank++
		}
	}

	return rank
}

// Equal reports whether other is a PartialPerm of the same width with the
// same image, undefined points included.
//
// Inputs: other of the same degree (a mismatch panics with ErrDegreeMismatch).
// Complexity: O(n).
func (p *PartialPerm[T]) Equal(other Element) bool {
	o, ok := other.(*PartialPerm[T])
	if !ok {
		return false
	}
	mustLive("PartialPerm.Equal", p.image != nil && o.image != nil)
	mustSameDegree("PartialPerm.Equal", len(p.image), len(o.image))

	return slices.Equal(p.image, o.image)
}

// Hash folds the image with multiplier n; Undefined hashes as the largest T.
func (p *PartialPerm[T]) Hash() uint64 {
	mustLive("PartialPerm.Hash", p.image != nil)

	return hashSeq(p.image, uint64(len(p.image)))
}

// Identity is the total identity on {0..n-1}.
func (p *PartialPerm[T]) Identity() Element {
	mustLive("PartialPerm.Identity", p.image != nil)

	return &PartialPerm[T]{image: identityImage[T](len(p.image))}
}

// Copy pads the new points with fixed points.
func (p *PartialPerm[T]) Copy(extra int) Element {
	mustLive("PartialPerm.Copy", p.image != nil)
	n := len(p.image)
	out := make([]T, n+mustExtra[T]("PartialPerm.Copy", n, extra, 0))
	copy(out, p.image)
	for i := n; i < len(out); i++ {
		out[i] = T(i)
	}

	return &PartialPerm[T]{image: out}
}

// Release drops the image; later use panics with ErrReleased.
func (p *PartialPerm[T]) Release() {
	mustLive("PartialPerm.Release", p.image != nil)
	p.image = nil
}

// Redefine sets p[i] = y[x[i]], or Undefined where x[i] is Undefined.
// Complexity: O(n), no allocation.
func (p *PartialPerm[T]) Redefine(x, y Element) {
	const op = "PartialPerm.Redefine"
	xx := mustOperand[*PartialPerm[T]](op, x)
	yy := mustOperand[*PartialPerm[T]](op, y)
	mustNotAlias(op, p, xx, yy)
	mustLive(op, p.image != nil && xx.image != nil && yy.image != nil)
	mustSameDegree(op, len(p.image), len(xx.image), len(yy.image))

	undef := Undefined[T]()
	for i, v := range xx.image {
		if v == undef {
			p.image[i] = undef
			continue
		}
		p.image[i] = yy.image[v]
	}
}

// String renders undefined points as "-".
func (p *PartialPerm[T]) String() string {
	if p.image == nil {
		return "PartialPerm(released)"
	}
	var sb strings.Builder
	sb.WriteString("PartialPerm[")
	for i, v := range p.image {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if v == Undefined[T]() {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte(']')

	return sb.String()
}
