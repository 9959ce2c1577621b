// SPDX-License-Identifier: MIT

package element

import "go.uber.org/zap"

// Arena owns a group of elements and releases all of them at once, so that
// a computation can pair every allocation with exactly one release:
//
//	a := element.NewArena()
//	defer a.Close()
//	scratch := element.Track(a, x.Identity())
//
// Elements tracked by an Arena must not be released individually. An Arena
// is not safe for concurrent use.
type Arena struct {
	elems  []Element
	closed bool
	logger *zap.Logger
}

// ArenaOption configures an Arena.
type ArenaOption func(*arenaOptions)

type arenaOptions struct {
	logger *zap.Logger
}

// WithArenaLogger sets the logger that reports bulk releases.
// A nil logger is ignored.
func WithArenaLogger(l *zap.Logger) ArenaOption {
	return func(o *arenaOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewArena creates an empty Arena.
func NewArena(opts ...ArenaOption) *Arena {
	o := arenaOptions{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return &Arena{logger: o.logger}
}

// Track hands ownership of e to a and returns e.
// Panics with ErrArenaClosed after Close.
func Track[E Element](a *Arena, e E) E {
	if a.closed {
		contractPanic("Arena.Track", ErrArenaClosed)
	}
	a.elems = append(a.elems, e)

	return e
}

// Len reports the number of tracked elements.
func (a *Arena) Len() int { return len(a.elems) }

// Close releases every tracked element, newest first. Subsequent calls do nothing.
func (a *Arena) Close() {
	if a.closed {
		return
	}
	a.closed = true
	for i := len(a.elems) - 1; i >= 0; i-- {
		a.elems[i].Release()
		a.elems[i] = nil
	}
	a.logger.Debug("arena closed", zap.Int("released", len(a.elems)))
	a.elems = nil
}
