// SPDX-License-Identifier: MIT

package semiring

import "go.uber.org/zap"

// Option configures a Registry.
type Option func(*Options)

// Options holds the effective Registry configuration.
type Options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for acquire/evict events.
// A nil logger is ignored (the no-op default is retained).
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
