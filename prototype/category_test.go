package prototype

import (
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{Success, "success"},
		{OutOfMemory, "out_of_memory"},
		{CPUOverload, "cpu_overload"},
		{IOOverload, "io_overload"},
		{RogueClient, "rogue_client"},
		{Unknown, "unknown"},
		{Category(17), "category(17)"},
		{Category(-2), "category(-2)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "%s should be valid", c)
	}
	assert.False(t, Category(-1).Valid())
	assert.False(t, Category(numCategories).Valid())
}

func TestCategory_Failed(t *testing.T) {
	assert.False(t, Success.Failed())
	for _, c := range Categories()[1:] {
		assert.True(t, c.Failed(), "%s should be a failure", c)
	}
}

func TestCategories(t *testing.T) {
	all := Categories()
	require.Len(t, all, numCategories)
	for i, c := range all {
		assert.Equal(t, Category(i), c)
	}

	// Callers get their own slice.
	all[0] = Unknown
	assert.Equal(t, Success, Categories()[0])
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "exact", input: "out_of_memory", want: OutOfMemory},
		{name: "mixed case", input: "Rogue_Client", want: RogueClient},
		{name: "surrounding space", input: "  cpu_overload ", want: CPUOverload},
		{name: "unknown is a category", input: "unknown", want: Unknown},
		{name: "not a category", input: "disk_full", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory_RoundTrip(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
