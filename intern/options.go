package intern

import (
	"log/slog"
	"time"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	clock  func() time.Time
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		clock:  time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithClock sets the time source used to stamp entry accesses.
// Useful for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(opts *options) {
		if clock != nil {
			opts.clock = clock
		}
	}
}

// WithLogger sets the logger for store events.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}
