package prototype

import (
	"fmt"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Category identifies the outcome kind a response describes.
// The set is closed; values outside [Success, Unknown] are invalid.
type Category int

const (
	// Success indicates the request completed normally.
	Success Category = iota

	// OutOfMemory indicates the request failed because memory use crossed its threshold.
	OutOfMemory

	// CPUOverload indicates the request was rejected due to CPU pressure.
	CPUOverload

	// IOOverload indicates the request was rejected due to I/O pressure.
	IOOverload

	// RogueClient indicates the client exceeded its connection allowance.
	RogueClient

	// Unknown indicates a failure that could not be classified.
	Unknown
)

// numCategories is the size of the enumeration.
const numCategories = int(Unknown) + 1

var categoryNames = [numCategories]string{
	Success:     "success",
	OutOfMemory: "out_of_memory",
	CPUOverload: "cpu_overload",
	IOOverload:  "io_overload",
	RogueClient: "rogue_client",
	Unknown:     "unknown",
}

// String returns the snake_case name of the category.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	return c >= Success && int(c) < numCategories
}

// Failed reports whether c describes a failed request.
func (c Category) Failed() bool {
	return c != Success
}

// Categories returns every category in enumeration order.
func Categories() []Category {
	all := make([]Category, numCategories)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}

// ParseCategory converts a category name back into a Category.
// Matching is case-insensitive.
//
// Returns CodeInvalidInput if the name does not match any category.
func ParseCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == normalized {
			return Category(i), nil
		}
	}

	err := errors.Newf(errors.CodeInvalidInput, "unknown category %q", name)
	return Unknown, errors.WithContext(err, "valid", append([]string(nil), categoryNames[:]...))
}
