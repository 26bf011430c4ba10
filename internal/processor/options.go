package processor

import "go.uber.org/zap"

type options struct {
	log *zap.Logger
}

// Option applies a configuration option to a processor.
type Option func(*options)

// WithLogger sets the processor logger. Processors stay silent without
// one.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
