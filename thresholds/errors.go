package thresholds

import (
	"github.com/jmgilman/go/errors"
)

// wrapLoadErrorWithContext wraps an error with CodeCUELoadFailed and attaches context metadata.
// Used when reading a thresholds file fails.
func wrapLoadErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeCUELoadFailed, message, ctx)
}

// wrapParseErrorWithContext wraps an error with CodeInvalidConfig.
// Used when YAML or JSON input is malformed.
func wrapParseErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeInvalidConfig, message, ctx)
}

// wrapBuildErrorWithContext wraps an error with CodeCUEBuildFailed.
// Used when CUE source does not compile.
func wrapBuildErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeCUEBuildFailed, message, ctx)
}

// wrapValidationErrorWithContext wraps an error with CodeCUEValidationFailed.
func wrapValidationErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeCUEValidationFailed, message, ctx)
}

// wrapDecodeError wraps an error with CodeCUEDecodeFailed.
func wrapDecodeError(err error, message string) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.CodeCUEDecodeFailed, message)
}

// wrapEncodeError wraps an error with CodeCUEEncodeFailed.
func wrapEncodeError(err error, message string) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.CodeCUEEncodeFailed, message)
}

// makeContext builds a context map from alternating key/value pairs.
// Non-string keys are skipped. Example: makeContext("file_path", "a.cue", "size", 12).
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	if len(kvPairs) == 0 {
		return nil
	}

	ctx := make(map[string]interface{})
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}

	if len(ctx) == 0 {
		return nil
	}
	return ctx
}
