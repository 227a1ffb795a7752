package prototype

import (
	"context"
	"fmt"
	"time"

	"github.com/jmgilman/go/errors"
)

// Registry caches one template per category and hands out copies of it.
//
// A Registry is read-only once Build returns, so Get is safe for concurrent use.
type Registry struct {
	templates [numCategories]template
	built     [numCategories]bool
}

// Build resolves the threshold of every selected category through lookup and
// returns a registry holding the resulting templates.
//
// Lookups run sequentially in enumeration order, exactly once per category.
// Build is the only place lookup is called.
//
// Returns CodeInvalidInput if lookup is nil or the category selection is empty or invalid.
// Returns CodeInternal if ctx is cancelled or expires, before or during a lookup.
// Returns CodeInvalidConfig if a lookup fails; the cause is preserved.
func Build(ctx context.Context, lookup ThresholdLookup, opts ...Option) (*Registry, error) {
	if lookup == nil {
		return nil, errors.New(errors.CodeInvalidInput, "threshold lookup cannot be nil")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.categories) == 0 {
		return nil, errors.New(errors.CodeInvalidInput, "registry needs at least one category")
	}

	var selected [numCategories]bool
	for _, c := range o.categories {
		if !c.Valid() {
			err := errors.Newf(errors.CodeInvalidInput, "cannot build template for invalid category %d", int(c))
			return nil, errors.WithContext(err, "category", int(c))
		}
		selected[c] = true
	}

	start := time.Now()
	reg := &Registry{}
	for i := range selected {
		if !selected[i] {
			continue
		}
		c := Category(i)

		if err := ctx.Err(); err != nil {
			return nil, wrapCancelled(err, c)
		}

		threshold, err := lookup.Threshold(ctx, c)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, wrapCancelled(err, c)
			}
			return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to resolve threshold", map[string]interface{}{
				"category": c.String(),
			})
		}

		reg.templates[i] = template{category: c, threshold: threshold}
		reg.built[i] = true
		o.logger.DebugContext(ctx, "template built", "category", c.String(), "threshold", threshold)
	}

	o.logger.InfoContext(ctx, "prototype registry built",
		"categories", len(reg.Categories()),
		"duration", time.Since(start))

	return reg, nil
}

// wrapCancelled reports a build interrupted by its context while handling c.
func wrapCancelled(err error, c Category) errors.PlatformError {
	return errors.WrapWithContext(err, errors.CodeInternal, "registry build cancelled", map[string]interface{}{
		"category": c.String(),
	})
}

// Get returns a new Instance copied from the template for c, with SeqNum zero.
// Every call allocates; the registry keeps no reference to the result.
//
// Get panics if c is not a valid category or the registry was not built for it.
func (r *Registry) Get(c Category) *Instance {
	if !c.Valid() {
		panic(fmt.Sprintf("prototype: invalid category %d", int(c)))
	}
	if !r.built[c] {
		panic(fmt.Sprintf("prototype: registry has no template for %s", c))
	}
	return r.templates[c].clone()
}

// Threshold returns the cached threshold for c.
// The second result is false if c is invalid or has no template.
func (r *Registry) Threshold(c Category) (int, bool) {
	if !c.Valid() || !r.built[c] {
		return 0, false
	}
	return r.templates[c].threshold, true
}

// Categories returns the categories the registry holds templates for, in enumeration order.
func (r *Registry) Categories() []Category {
	var out []Category
	for i, ok := range r.built {
		if ok {
			out = append(out, Category(i))
		}
	}
	return out
}
