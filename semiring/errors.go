// SPDX-License-Identifier: MIT
// Package semiring: sentinel error set.
// Constructors and the descriptor parser return these sentinels (possibly
// wrapped with fmt.Errorf("ctx: %w", ErrX)); callers match them via errors.Is.

package semiring

import "errors"

var (
	// ErrBadThreshold is returned when a threshold is negative.
	ErrBadThreshold = errors.New("semiring: threshold must be >= 0")

	// ErrBadPeriod is returned when a truncation period is < 1.
	ErrBadPeriod = errors.New("semiring: period must be >= 1")

	// ErrNotPrime is returned when a prime field is requested for a non-prime modulus.
	ErrNotPrime = errors.New("semiring: modulus is not prime")

	// ErrUnknownSemiring indicates a descriptor naming no known semiring.
	ErrUnknownSemiring = errors.New("semiring: unknown semiring")

	// ErrBadArity indicates a descriptor with the wrong number of parameters.
	ErrBadArity = errors.New("semiring: wrong number of parameters")

	// ErrBadDescriptor indicates a descriptor that does not parse.
	ErrBadDescriptor = errors.New("semiring: malformed descriptor")

	// ErrNotRegistered is returned by Registry.Release for an instance the
	// registry does not hold.
	ErrNotRegistered = errors.New("semiring: instance not registered")

	// ErrNilSemiring indicates a nil Semiring argument.
	ErrNilSemiring = errors.New("semiring: nil semiring")
)
