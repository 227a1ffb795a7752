package thresholds

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a thresholds source.
type Format string

const (
	// FormatCUE is CUE source. Used for ".cue" files and unnamed sources.
	FormatCUE Format = "cue"

	// FormatYAML is YAML source. Used for ".yaml" and ".yml" files.
	FormatYAML Format = "yaml"

	// FormatJSON is JSON source, parsed as YAML. Used for ".json" files.
	FormatJSON Format = "json"
)

// Loader reads thresholds files from a filesystem and validates them
// against the built-in schema.
//
// A Loader is not safe for concurrent use; its CUE context is shared
// between calls.
type Loader struct {
	fs     core.ReadFS
	cueCtx *cue.Context
	schema cue.Value
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used to report loaded files.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a loader that reads from filesystem.
func NewLoader(filesystem core.ReadFS, opts ...LoaderOption) *Loader {
	cueCtx := cuecontext.New()
	l := &Loader{
		fs:     filesystem,
		cueCtx: cueCtx,
		schema: cueCtx.CompileString(schemaSource, cue.Filename("schema.cue")).LookupPath(cue.ParsePath(schemaPath)),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads, validates and decodes the thresholds file at filePath.
// The extension selects the format: .cue, .yaml, .yml or .json.
//
// Returns CodeInvalidInput for unsupported extensions.
// Returns CodeCUELoadFailed if the file cannot be read.
// Otherwise fails like LoadBytes.
func (l *Loader) LoadFile(ctx context.Context, filePath string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapLoadErrorWithContext(err, "context cancelled", makeContext("file_path", filePath))
	}

	format, err := formatOf(filePath)
	if err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, wrapLoadErrorWithContext(err, "failed to read thresholds file", makeContext("file_path", filePath))
	}

	cfg, err := l.load(ctx, data, filePath, format)
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "thresholds loaded", "file_path", filePath, "format", string(format))
	return cfg, nil
}

// LoadBytes validates and decodes thresholds from source.
// The extension of filename selects the format; an empty filename means CUE.
// The filename also appears in error messages.
//
// Returns CodeInvalidConfig if YAML or JSON source is malformed.
// Returns CodeCUEBuildFailed if CUE source does not compile.
// Returns CodeCUEValidationFailed if the values violate the schema.
// Returns CodeCUEDecodeFailed if the result cannot be decoded.
func (l *Loader) LoadBytes(ctx context.Context, source []byte, filename string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapBuildErrorWithContext(err, "context cancelled", makeContext("filename", filename))
	}

	format := FormatCUE
	if filename != "" {
		f, err := formatOf(filename)
		if err != nil {
			return nil, err
		}
		format = f
	} else {
		filename = "<input>"
	}

	return l.load(ctx, source, filename, format)
}

// load runs the compile, unify, validate and decode pipeline.
func (l *Loader) load(ctx context.Context, source []byte, filename string, format Format) (*Config, error) {
	data, err := l.compile(source, filename, format)
	if err != nil {
		return nil, err
	}

	unified := l.schema.Unify(data)
	if err := validate(ctx, unified); err != nil {
		return nil, errors.WithContext(err, "filename", filename)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return nil, errors.WithContext(wrapDecodeError(err, "failed to decode thresholds"), "filename", filename)
	}

	return &cfg, nil
}

// compile turns source into a CUE value according to format.
func (l *Loader) compile(source []byte, filename string, format Format) (cue.Value, error) {
	switch format {
	case FormatYAML, FormatJSON:
		doc, err := decodeSingleDocument(source)
		if err != nil {
			return cue.Value{}, wrapParseErrorWithContext(
				err,
				fmt.Sprintf("failed to parse %s thresholds", format),
				makeContext("filename", filename),
			)
		}
		if doc == nil {
			doc = map[string]interface{}{}
		}

		val := l.cueCtx.Encode(doc)
		if err := val.Err(); err != nil {
			return cue.Value{}, wrapBuildErrorWithContext(err, "failed to convert thresholds to CUE", makeContext("filename", filename))
		}
		return val, nil

	default:
		val := l.cueCtx.CompileBytes(source, cue.Filename(filename))
		if err := val.Err(); err != nil {
			return cue.Value{}, wrapBuildErrorWithContext(
				err,
				"failed to compile CUE source",
				makeContext("filename", filename, "source_size", len(source)),
			)
		}
		return val, nil
	}
}

// decodeSingleDocument parses YAML source that must hold at most one document.
// Empty source yields a nil map.
func decodeSingleDocument(source []byte) (map[string]interface{}, error) {
	dec := yaml.NewDecoder(bytes.NewReader(source))

	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var extra interface{}
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return doc, nil
	case err != nil:
		return nil, err
	default:
		return nil, fmt.Errorf("thresholds source must contain a single YAML document")
	}
}

// formatOf maps a file extension to a Format.
func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}

	err := errors.Newf(errors.CodeInvalidInput, "unsupported thresholds file extension %q", filepath.Ext(path))
	return "", errors.WithContext(err, "file_path", path)
}
