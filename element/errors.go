// SPDX-License-Identifier: MIT
// Package element: sentinel error set.
// Construction errors are returned; contract violations panic with an error
// wrapping one of the contract sentinels so that recover()+errors.Is works.

package element

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	// ErrBadDegree indicates a degree that the representation cannot hold:
	// an odd bipartition length or a degree beyond the index type.
	ErrBadDegree = errors.New("element: invalid degree")

	// ErrImageOutOfRange indicates an image value >= degree.
	ErrImageOutOfRange = errors.New("element: image out of range")

	// ErrNotInjective indicates a partial permutation mapping two points to one.
	ErrNotInjective = errors.New("element: partial permutation is not injective")

	// ErrNotSquare indicates flattened matrix data whose length is not a perfect square.
	ErrNotSquare = errors.New("element: matrix data is not square")

	// ErrEntryOutOfRange indicates a matrix entry outside the semiring carrier.
	ErrEntryOutOfRange = errors.New("element: entry outside semiring")

	// ErrNilSemiring indicates a matrix constructed without a semiring.
	ErrNilSemiring = errors.New("element: nil semiring")

	// ErrUnknownKind indicates a Kind the factory cannot build.
	ErrUnknownKind = errors.New("element: unknown kind")

	// ErrBadBlocks indicates a bipartition label outside the uint32 range.
	ErrBadBlocks = errors.New("element: invalid block label")

	// ErrKindSemiring indicates a matrix Kind paired with a semiring of another family.
	ErrKindSemiring = errors.New("element: kind does not match semiring")
)

// Contract violations (panics).
var (
	// ErrDegreeMismatch: operands or destination have different degrees.
	ErrDegreeMismatch = errors.New("element: degree mismatch")

	// ErrKindMismatch: operands or destination have different representations.
	ErrKindMismatch = errors.New("element: kind mismatch")

	// ErrSemiringMismatch: matrices reference different semiring instances.
	ErrSemiringMismatch = errors.New("element: semiring mismatch")

	// ErrAliasedOperand: the destination of Redefine is also an operand.
	ErrAliasedOperand = errors.New("element: destination aliases an operand")

	// ErrReleased: the element was used after Release.
	ErrReleased = errors.New("element: use after release")

	// ErrArenaClosed: an element was tracked by an Arena after Close.
	ErrArenaClosed = errors.New("element: arena closed")

	// ErrNegativeExtra: Copy was asked to shrink the degree.
	ErrNegativeExtra = errors.New("element: negative degree increase")
)

// contractPanic aborts the current operation with a wrapped contract sentinel.
func contractPanic(op string, err error) {
	panic(fmt.Errorf("element: %s: %w", op, err))
}

// elementErrorf wraps a construction error with the constructor name.
func elementErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
