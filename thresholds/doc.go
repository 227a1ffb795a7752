// Package thresholds loads the per-category failure thresholds consumed by
// the prototype registry.
//
// Thresholds files may be written in CUE, YAML or JSON. Every source is
// unified with a built-in CUE schema that bounds each value to 0..100 and
// supplies defaults for omitted categories, so a partial file is valid:
//
//	# thresholds.yaml
//	out_of_memory: 90
//	rogue_client: 40
//
// Files are read through a core.ReadFS, which lets callers load from disk
// (billy.NewLocal) or from memory (billy.NewMemory) in tests.
//
//	loader := thresholds.NewLoader(billy.NewLocal())
//	cfg, err := loader.LoadFile(ctx, "/etc/service/thresholds.yaml")
//	if err != nil {
//	    return err
//	}
//	reg, err := prototype.Build(ctx, cfg)
//
// A *Config is a prototype.ThresholdLookup. Defaults returns the built-in
// table when no file is configured.
//
// # Errors
//
// All errors are platform errors from github.com/jmgilman/go/errors:
//
//   - CodeCUELoadFailed: the file could not be read
//   - CodeInvalidInput: unsupported file extension or invalid category
//   - CodeInvalidConfig: malformed YAML or JSON
//   - CodeCUEBuildFailed: CUE source does not compile
//   - CodeCUEValidationFailed: values violate the schema; the error context
//     carries an "issues" list of ValidationIssue
//   - CodeCUEDecodeFailed / CodeCUEEncodeFailed: conversion failures
package thresholds
