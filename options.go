package fiberz

import "log/slog"

type options struct {
	name   string
	logger *slog.Logger
}

// Option configures a Scheduler.
type Option func(*options)

// WithLogger sets the logger used by the scheduler and the fibers it
// creates.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithName names the scheduler in log records and leak reports.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	o := options{
		name:   "default",
		logger: logger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
