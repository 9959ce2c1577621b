// SPDX-License-Identifier: MIT

package semiring

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Registry hands out shared Semiring instances keyed by canonical descriptor.
//
// Matrices hold a non-owning reference to their semiring, and multiplication
// requires both operands to reference the same instance. The registry is the
// owner: Acquire returns the one instance for a descriptor and counts a
// reference, Release drops it, and the instance is evicted once no reference
// remains. A caller must keep its reference until every matrix built over the
// instance has been released.
//
// Registry is safe for concurrent use. The semirings it returns are immutable.
type Registry struct {
	mu      sync.Mutex
	logger  *zap.Logger
	entries map[string]*registryEntry
}

type registryEntry struct {
	sr   Semiring
	refs int
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	o := gatherOptions(opts...)

	return &Registry{
		logger:  o.logger,
		entries: make(map[string]*registryEntry),
	}
}

// Acquire returns the shared instance described by desc, creating it on first
// use. Descriptors that differ only in spelling ("natural( 3,2 )" and
// "natural(3,2)") resolve to the same instance.
// Errors: any error returned by Parse.
func (r *Registry) Acquire(desc string) (Semiring, error) {
	sr, err := Parse(desc)
	if err != nil {
		return nil, err
	}
	key := sr.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[key]; ok {
		e.refs++
		r.logger.Debug("semiring acquired", zap.String("semiring", key), zap.Int("refs", e.refs))

		return e.sr, nil
	}
	r.entries[key] = &registryEntry{sr: sr, refs: 1}
	r.logger.Debug("semiring created", zap.String("semiring", key))

	return sr, nil
}

// Release drops one reference to sr, evicting it when none remain.
// Errors: ErrNilSemiring, ErrNotRegistered if sr is not the instance held
// for its descriptor.
func (r *Registry) Release(sr Semiring) error {
	if sr == nil {
		return fmt.Errorf("Registry.Release: %w", ErrNilSemiring)
	}
	key := sr.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok || e.sr != sr {
		return fmt.Errorf("Registry.Release(%s): %w", key, ErrNotRegistered)
	}
	e.refs--
	if e.refs == 0 {
		delete(r.entries, key)
		r.logger.Debug("semiring evicted", zap.String("semiring", key))

		return nil
	}
	r.logger.Debug("semiring released", zap.String("semiring", key), zap.Int("refs", e.refs))

	return nil
}

// Refs reports the number of outstanding references for desc's instance
// (0 if none is registered or desc does not parse).
func (r *Registry) Refs(desc string) int {
	sr, err := Parse(desc)
	if err != nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sr.String()]; ok {
		return e.refs
	}

	return 0
}

// Len reports the number of distinct registered instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
