package thresholds

import (
	"context"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
)

// ValidationIssue is one schema violation found in a thresholds source.
type ValidationIssue struct {
	// Path is the field path of the violation, e.g. "out_of_memory".
	Path string

	// Message is the human-readable error message.
	Message string
}

// validate checks a schema-unified value. All values must be concrete after
// defaults are applied, and every violation is reported.
//
// Returns CodeCUEValidationFailed with an "issues" context entry.
func validate(ctx context.Context, unified cue.Value) error {
	if err := ctx.Err(); err != nil {
		return wrapValidationErrorWithContext(err, "context cancelled", nil)
	}

	// Skip unified.Err() so All can collect every error at once.
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return wrapValidationErrorWithContext(
			err,
			"thresholds failed validation",
			makeContext(
				"details", cueerrors.Details(err, nil),
				"issues", extractValidationIssues(err),
			),
		)
	}

	return nil
}

// extractValidationIssues flattens a CUE error list into ValidationIssues.
// Paths are relative to the thresholds file; duplicate issues are dropped.
func extractValidationIssues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}

	var issues []ValidationIssue
	seen := make(map[ValidationIssue]bool)
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issue := ValidationIssue{
			Path:    issuePath(e.Path()),
			Message: fmt.Sprintf(format, args...),
		}
		if seen[issue] {
			continue
		}
		seen[issue] = true
		issues = append(issues, issue)
	}
	return issues
}

// issuePath joins a CUE error path, dropping the schema definition prefix.
func issuePath(path []string) string {
	if len(path) > 0 && path[0] == schemaPath {
		path = path[1:]
	}
	return strings.Join(path, ".")
}
