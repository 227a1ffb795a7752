package thresholds

import (
	"context"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/reuse/prototype"
)

// Config holds the failure threshold, in percent, for every category.
// Field tags match the category names used in thresholds files.
type Config struct {
	Success     int `json:"success"`
	OutOfMemory int `json:"out_of_memory"`
	CPUOverload int `json:"cpu_overload"`
	IOOverload  int `json:"io_overload"`
	RogueClient int `json:"rogue_client"`
	Unknown     int `json:"unknown"`
}

// Defaults returns the built-in thresholds.
func Defaults() *Config {
	return &Config{
		Success:     0,
		OutOfMemory: 80,
		CPUOverload: 75,
		IOOverload:  60,
		RogueClient: 50,
		Unknown:     0,
	}
}

// Threshold returns the configured threshold for c.
// Config satisfies prototype.ThresholdLookup.
//
// Returns CodeInternal if ctx is done; the context error is preserved.
// Returns CodeInvalidInput if c is not a valid category.
func (c *Config) Threshold(ctx context.Context, category prototype.Category) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WrapWithContext(err, errors.CodeInternal, "threshold lookup cancelled", map[string]interface{}{
			"category": category.String(),
		})
	}

	switch category {
	case prototype.Success:
		return c.Success, nil
	case prototype.OutOfMemory:
		return c.OutOfMemory, nil
	case prototype.CPUOverload:
		return c.CPUOverload, nil
	case prototype.IOOverload:
		return c.IOOverload, nil
	case prototype.RogueClient:
		return c.RogueClient, nil
	case prototype.Unknown:
		return c.Unknown, nil
	}

	err := errors.Newf(errors.CodeInvalidInput, "no threshold for %s", category)
	return 0, errors.WithContext(err, "category", int(category))
}

var _ prototype.ThresholdLookup = (*Config)(nil)
