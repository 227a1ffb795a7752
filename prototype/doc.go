// Package prototype builds response buffers by copying cached templates.
//
// Computing the failure threshold for an outcome category can be expensive
// (it usually means consulting configuration). A Registry does that work once
// per category when it is built and afterwards serves cheap, independent
// copies.
//
// # Usage
//
//	reg, err := prototype.Build(ctx, thresholds.Defaults())
//	if err != nil {
//	    return err
//	}
//
//	resp := reg.Get(prototype.OutOfMemory)
//	resp.SeqNum = 536
//
// Each Instance returned by Get is a fresh allocation owned by the caller.
// Mutating it never affects the registry or other instances.
//
// # Errors
//
// Build reports configuration problems as platform errors from
// github.com/jmgilman/go/errors. Asking Get for a category the registry does
// not hold is a programming error and panics.
package prototype
