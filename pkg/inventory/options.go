package inventory

import "log/slog"

// options holds the internal configuration for a Manager.
type options struct {
	logger  *slog.Logger
	variant string
}

// Option defines a functional option for configuring a Manager.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:  slog.Default(),
		variant: "generic",
	}
}

// WithLogger sets the logger for the manager.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithVariant labels the manager with its catalog variant (e.g. "electronics").
// The label shows up in logs and introspection state only.
func WithVariant(name string) Option {
	return func(o *options) {
		o.variant = name
	}
}
