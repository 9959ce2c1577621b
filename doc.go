// SPDX-License-Identifier: MIT

// Package semigroups is the element engine behind a semigroup enumerator:
// the values a Froidure–Pin style search multiplies, compares and hashes
// millions of times.
//
// The module is organized in two packages:
//
//	semiring/: the Semiring contract, eight concrete semirings, a descriptor
//	           parser ("tropical-max-plus(5)") and a reference-counted Registry
//	           that hands out shared instances.
//	element/:  the Element contract and its representations: transformations,
//	           partial permutations, boolean matrices, matrices over a
//	           semiring and bipartitions; plus the Kind-driven factory New and
//	           the Arena for scoped release.
//
// A typical loop keeps one destination per worker and overwrites it:
//
//	reg := semiring.NewRegistry()
//	sr, _ := reg.Acquire("max-plus")
//	defer reg.Release(sr)
//
//	x, _ := element.NewMatrix([]int64{0, 1, semiring.NegInf, 0}, sr)
//	dst := x.Identity()
//	defer dst.Release()
//	dst.Redefine(x, x) // dst = x*x, no allocation
//
// Multiplication applies the left operand first: for transformations
// (x*y)[i] = y[x[i]].
package semigroups
