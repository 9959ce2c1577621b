// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"math"
	"slices"
)

// Transformation is a total function on {0..n-1}: point i maps to image[i].
type Transformation[T Index] struct {
	image []T // len == degree; nil once released
}

// NewTransformation copies image into a new Transformation.
// Errors: ErrBadDegree if the degree exceeds what T can index,
// ErrImageOutOfRange if some image[i] >= len(image).
// Complexity: O(n).
func NewTransformation[T Index](image []T) (*Transformation[T], error) {
	n := len(image)
	if uint64(n) > maxIndex[T]()+1 {
		return nil, elementErrorf("NewTransformation", ErrBadDegree)
	}
	for i, v := range image {
		if int(v) >= n {
			return nil, elementErrorf(fmt.Sprintf("NewTransformation: image[%d]=%d", i, v), ErrImageOutOfRange)
		}
	}
	t := &Transformation[T]{image: make([]T, n)}
	copy(t.image, image)

	return t, nil
}

func (*Transformation[T]) sealed() {}

// Kind reports KindTransformation2 or KindTransformation4 by the width of T.
func (*Transformation[T]) Kind() Kind {
	if maxIndex[T]() == math.MaxUint16 {
		return KindTransformation2
	}

	return KindTransformation4
}

// Degree is the size of the ground set {0..n-1}.
// Complexity: O(1).
func (t *Transformation[T]) Degree() int {
	mustLive("Transformation.Degree", t.image != nil)

	return len(t.image)
}

// Complexity is the degree: a product is one pass over the image.
func (t *Transformation[T]) Complexity() int { return t.Degree() }

// At returns the image of point i.
func (t *Transformation[T]) At(i int) T {
	mustLive("Transformation.At", t.image != nil)

	return t.image[i]
}

// Image returns a copy of the image list.
func (t *Transformation[T]) Image() []T {
	mustLive("Transformation.Image", t.image != nil)

	return slices.Clone(t.image)
}

// Equal reports whether other is a Transformation of the same width with
// the same image.
//
// Inputs: other of the same degree (a mismatch panics with ErrDegreeMismatch).
// Returns false for any other representation, including the other width.
// Complexity: O(n).
func (t *Transformation[T]) Equal(other Element) bool {
	o, ok := other.(*Transformation[T])
	if !ok {
		return false
	}
	mustLive("Transformation.Equal", t.image != nil && o.image != nil)
	mustSameDegree("Transformation.Equal", len(t.image), len(o.image))

	return slices.Equal(t.image, o.image)
}

// Hash folds the image left to right as seed = seed*n + image[i].
// Complexity: O(n), no allocation.
func (t *Transformation[T]) Hash() uint64 {
	mustLive("Transformation.Hash", t.image != nil)

	return hashSeq(t.image, uint64(len(t.image)))
}

// Identity returns the transformation fixing every point.
func (t *Transformation[T]) Identity() Element {
	mustLive("Transformation.Identity", t.image != nil)

	return &Transformation[T]{image: identityImage[T](len(t.image))}
}

// Copy pads the new points with fixed points.
func (t *Transformation[T]) Copy(extra int) Element {
	mustLive("Transformation.Copy", t.image != nil)
	n := len(t.image)
	out := make([]T, n+mustExtra[T]("Transformation.Copy", n, extra, 1))
	copy(out, t.image)
	for i := n; i < len(out); i++ {
		out[i] = T(i)
	}

	return &Transformation[T]{image: out}
}

// Release drops the image; later use panics with ErrReleased.
func (t *Transformation[T]) Release() {
	mustLive("Transformation.Release", t.image != nil)
	t.image = nil
}

// Redefine sets t[i] = y[x[i]] for every point i.
// Complexity: O(n), no allocation.
func (t *Transformation[T]) Redefine(x, y Element) {
	const op = "Transformation.Redefine"
	xx := mustOperand[*Transformation[T]](op, x)
	yy := mustOperand[*Transformation[T]](op, y)
	mustNotAlias(op, t, xx, yy)
	mustLive(op, t.image != nil && xx.image != nil && yy.image != nil)
	mustSameDegree(op, len(t.image), len(xx.image), len(yy.image))

	for i, v := range xx.image {
		t.image[i] = yy.image[v]
	}
}

// String renders the image list, e.g. "Transformation[1 2 0]".
func (t *Transformation[T]) String() string {
	if t.image == nil {
		return "Transformation(released)"
	}

	return fmt.Sprintf("Transformation%v", t.image)
}

// maxIndex is the largest value representable by T.
func maxIndex[T Index]() uint64 {
	return uint64(^T(0))
}

// identityImage returns 0, 1, ..., n-1.
func identityImage[T Index](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}

	return out
}

// mustExtra validates a Copy increase for a sequence of degree n whose points
// must stay strictly below maxIndex+slack.
func mustExtra[T Index](op string, n, extra int, slack uint64) int {
	if extra < 0 {
		contractPanic(op, ErrNegativeExtra)
	}
	if uint64(n+extra) > maxIndex[T]()+slack {
		contractPanic(op, ErrBadDegree)
	}

	return extra
}
