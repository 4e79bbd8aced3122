package hmm

import "log/slog"

// Option configures a decode call.
type Option func(*options)

type options struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers evaluates the states of each time step on up to n goroutines.
// Emissions must then be safe for concurrent use. Values below 2 decode sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		workers: 1,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
