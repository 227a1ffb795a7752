package prototype

import "log/slog"

// Option configures Build.
type Option func(*options)

type options struct {
	categories []Category
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		categories: Categories(),
		logger:     slog.New(slog.DiscardHandler),
	}
}

// WithCategories restricts the registry to the given categories.
// Duplicates are ignored and templates are still built in enumeration order.
// Calling Get with a category outside this set panics.
//
// Example:
//
//	reg, _ := prototype.Build(ctx, lookup, prototype.WithCategories(prototype.Success, prototype.OutOfMemory))
func WithCategories(categories ...Category) Option {
	return func(opts *options) {
		opts.categories = append([]Category(nil), categories...)
	}
}

// WithLogger sets the logger used while building templates.
// A nil logger leaves the default (discard) in place.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}
