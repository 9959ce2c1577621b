// SPDX-License-Identifier: MIT

// Package element implements elements of finitely generated semigroups and
// the in-place multiplication engine that enumeration algorithms drive.
//
// Representations (all satisfy Element):
//
//	Transformation[T]  total functions {0..n-1} → {0..n-1}
//	PartialPerm[T]     injective partial functions, Undefined[T]() marks holes
//	BooleanMat         n×n boolean matrices, OR/AND product
//	Matrix             n×n matrices over a semiring.Semiring
//	Bipartition        partitions of 2n points, product by reachability
//
// T is uint16 or uint32, the 2-byte and 4-byte variants.
//
// Multiplication is performed by Redefine, which overwrites a pre-allocated
// destination with x*y. The composition order is "apply x first": for
// transformations (x*y)[i] = y[x[i]]. Redefine allocates nothing, except that
// a Bipartition destination allocates its scratch space on first use.
//
// Ownership:
//
//   - Each element owns its storage exclusively. Copy never shares storage.
//   - Release drops the storage; it must be called exactly once and the
//     element must not be used afterwards. An Arena releases every element it
//     tracks on Close, which pairs naturally with defer.
//   - Matrix elements hold a shared, read-only reference to their semiring;
//     see semiring.Registry for the owner of those instances.
//
// Contract violations (degree or kind mismatch, multiplying matrices over
// different semiring instances, aliasing the destination with an operand,
// use after Release) are programmer errors and panic with an error wrapping
// one of ErrDegreeMismatch, ErrKindMismatch, ErrSemiringMismatch,
// ErrAliasedOperand or ErrReleased. Invalid construction data is reported
// through returned errors instead.
//
// Elements are not safe for concurrent mutation: callers must not Redefine a
// destination from two goroutines, nor mutate an element another goroutine is
// reading. Distinct elements may be used concurrently.
package element
