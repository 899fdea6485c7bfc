// File: options.go
// Role: functional options for the builders, following the WithX(...)
// Option convention.
package lattice

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// Option configures a lattice build.
type Option func(*options)

// WithLogger threads a structured logger through the build. Defaults
// to zap.NewNop() when omitted.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(o)
	}

	return o
}
