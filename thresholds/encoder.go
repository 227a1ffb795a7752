package thresholds

import (
	"context"

	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/jmgilman/go/errors"
)

// EncodeYAML renders cfg as a YAML thresholds file that LoadBytes accepts.
//
// Returns CodeInvalidInput if cfg is nil.
// Returns CodeCUEEncodeFailed if encoding fails.
func EncodeYAML(ctx context.Context, cfg *Config) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, wrapEncodeError(ctx.Err(), "context cancelled before encoding")
	}
	if cfg == nil {
		return nil, errors.New(errors.CodeInvalidInput, "thresholds config cannot be nil")
	}

	value := cuecontext.New().Encode(cfg)
	if err := value.Err(); err != nil {
		return nil, wrapEncodeError(err, "failed to convert thresholds to CUE")
	}

	data, err := cueyaml.Encode(value)
	if err != nil {
		return nil, wrapEncodeError(err, "failed to encode thresholds to YAML")
	}

	return data, nil
}
