package prototype

import "context"

// ThresholdLookup resolves the configured failure threshold for a category.
//
// Implementations may be slow (reading configuration, querying a service).
// A Registry calls Threshold at most once per category over its lifetime.
type ThresholdLookup interface {
	Threshold(ctx context.Context, c Category) (int, error)
}

// ThresholdFunc adapts an ordinary function to the ThresholdLookup interface.
type ThresholdFunc func(ctx context.Context, c Category) (int, error)

// Threshold calls f(ctx, c).
func (f ThresholdFunc) Threshold(ctx context.Context, c Category) (int, error) {
	return f(ctx, c)
}
