package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/testutil"
	"github.com/runoshun/rational-breaks/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := testutil.NewMockConfigManager()
	manager.LocalConfigInfo = domain.ConfigInfo{Path: "/work/.breaks.toml", Content: "[log]\nlevel = \"debug\"", Exists: true}
	loader := testutil.NewMockConfigLoader()
	loader.Config.Log.Level = "debug"
	loader.Config.Warnings = []string{"unknown section: colour"}

	out, err := usecase.NewShowConfig(manager, loader).Execute(context.Background(), usecase.ShowConfigInput{})

	require.NoError(t, err)
	assert.True(t, out.LocalConfig.Exists)
	assert.False(t, out.GlobalConfig.Exists)
	assert.Contains(t, out.Effective, "[log]")
	assert.Contains(t, out.Effective, "debug")
	assert.NotContains(t, out.Effective, "colour")
	assert.Equal(t, []string{"unknown section: colour"}, out.Warnings)
}

func TestShowConfig_LoadError(t *testing.T) {
	loader := testutil.NewMockConfigLoader()
	loader.LoadErr = errors.New("bad toml")

	_, err := usecase.NewShowConfig(testutil.NewMockConfigManager(), loader).
		Execute(context.Background(), usecase.ShowConfigInput{})

	assert.ErrorIs(t, err, loader.LoadErr)
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates local config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/.breaks.toml", out.Path)
		assert.True(t, manager.InitLocalCalled)
		assert.False(t, manager.InitGlobalCalled)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{
			Global: true,
			Config: domain.NewDefaultConfig(),
		})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/rational-breaks/config.toml", out.Path)
		assert.True(t, manager.InitGlobalCalled)
	})

	t.Run("returns error when config exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitLocalErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
