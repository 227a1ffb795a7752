package thresholds

import (
	"context"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/reuse/prototype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Threshold(t *testing.T) {
	ctx := context.Background()
	cfg := Defaults()

	tests := []struct {
		category prototype.Category
		want     int
	}{
		{prototype.Success, 0},
		{prototype.OutOfMemory, 80},
		{prototype.CPUOverload, 75},
		{prototype.IOOverload, 60},
		{prototype.RogueClient, 50},
		{prototype.Unknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got, err := cfg.Threshold(ctx, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid category", func(t *testing.T) {
		_, err := cfg.Threshold(ctx, prototype.Category(9))
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := cfg.Threshold(cctx, prototype.Success)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, errors.CodeInternal, errors.GetCode(err))

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, "success", platformErr.Context()["category"])
	})
}

func TestDefaults_MatchSchema(t *testing.T) {
	// The schema's defaults and Defaults() must agree.
	got, err := NewLoader(billy.NewMemory()).LoadBytes(context.Background(), []byte("{}"), "defaults.json")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestConfig_BuildsRegistry(t *testing.T) {
	ctx := context.Background()

	mfs := billy.NewMemory()
	require.NoError(t, mfs.WriteFile("thresholds.yaml", []byte("out_of_memory: 92\n"), 0o644))

	cfg, err := NewLoader(mfs).LoadFile(ctx, "thresholds.yaml")
	require.NoError(t, err)

	reg, err := prototype.Build(ctx, cfg)
	require.NoError(t, err)

	inst := reg.Get(prototype.OutOfMemory)
	assert.Equal(t, 92, inst.Threshold)
	assert.Equal(t, 50, reg.Get(prototype.RogueClient).Threshold)
}
