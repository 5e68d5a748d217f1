package gridlist

import "log/slog"

// Option configures a GridList.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	intersection IntersectionObserver
	onInvalidate func()
}

// WithLogger sets the logger used for recomputation traces and contract
// violations. The default writes text to stderr at the level set by
// SetVerbose.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithIntersectionObserver sets the source for the visibility gate.
// By default the metrics observer is used when it also implements
// IntersectionObserver; otherwise the grid is always visible.
func WithIntersectionObserver(obs IntersectionObserver) Option {
	return func(o *options) { o.intersection = obs }
}

// WithInvalidateHook registers fn to run whenever a size, scroll or
// visibility notification arrives. Hosts use it to schedule a redraw; the
// next Frame call picks up the change.
func WithInvalidateHook(fn func()) Option {
	return func(o *options) { o.onInvalidate = fn }
}

func applyOptions(opts []Option) options {
	o := options{logger: gridLogger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = gridLogger
	}
	return o
}
