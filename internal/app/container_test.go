package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/infra/gitstore"
	"github.com/runoshun/rational-breaks/internal/infra/jsonstore"
	"github.com/runoshun/rational-breaks/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) (workDir, dataHome string) {
	t.Helper()
	dataHome = t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return t.TempDir(), dataHome
}

func TestNew_DefaultsToJSONStore(t *testing.T) {
	workDir, dataHome := isolate(t)

	c, err := New(workDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	store, ok := c.State.(*jsonstore.Store)
	require.True(t, ok)
	wantPath := domain.JSONStorePath(domain.DataDir(dataHome))
	assert.Equal(t, wantPath, store.Path())
	assert.Equal(t, wantPath, c.Config.StorePath)
	assert.Equal(t, domain.StoreJSON, c.Config.StoreType)
}

func TestNew_LocalConfigSelectsGitStore(t *testing.T) {
	workDir, _ := isolate(t)
	_, err := git.PlainInit(workDir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[store]\ntype = \"git\"\n"), 0o644))

	c, err := New(workDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, ok := c.State.(*gitstore.Store)
	assert.True(t, ok)
	assert.Equal(t, workDir, c.Config.StorePath)
}

func TestNew_GitStoreOutsideRepository(t *testing.T) {
	workDir, _ := isolate(t)
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[store]\ntype = \"git\"\n"), 0o644))

	_, err := New(workDir)

	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}

func TestNew_InvalidConfig(t *testing.T) {
	workDir, _ := isolate(t)
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[store"), 0o644))

	_, err := New(workDir)

	assert.Error(t, err)
}

func TestContainer_EndToEnd(t *testing.T) {
	workDir, dataHome := isolate(t)
	customPath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[store]\npath = \""+customPath+"\"\n"), 0o644))

	c, err := New(workDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	_, err = c.StartWorkUseCase().Execute(ctx, usecase.StartWorkInput{})
	require.NoError(t, err)
	status, err := c.ShowStatusUseCase().Execute(ctx, usecase.ShowStatusInput{})
	require.NoError(t, err)

	assert.Equal(t, domain.ModeWorking, status.Summary.Kind)
	assert.FileExists(t, customPath)
	assert.FileExists(t, domain.LogPath(domain.DataDir(dataHome)))
}

func TestContainer_StoreFor(t *testing.T) {
	workDir, _ := isolate(t)
	_, err := git.PlainInit(workDir, false)
	require.NoError(t, err)

	c, err := New(workDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	active, err := c.StoreFor(domain.StoreJSON)
	require.NoError(t, err)
	assert.Same(t, c.State, active)

	other, err := c.StoreFor(domain.StoreGit)
	require.NoError(t, err)
	_, ok := other.(*gitstore.Store)
	assert.True(t, ok)

	_, err = c.StoreFor("sqlite")
	assert.ErrorIs(t, err, domain.ErrUnknownStore)
}

func TestContainer_MigrateJSONToGit(t *testing.T) {
	workDir, _ := isolate(t)
	_, err := git.PlainInit(workDir, false)
	require.NoError(t, err)

	c, err := New(workDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	_, err = c.StartWorkUseCase().Execute(ctx, usecase.StartWorkInput{})
	require.NoError(t, err)

	dest, err := c.StoreFor(domain.StoreGit)
	require.NoError(t, err)
	out, err := c.MigrateStoreUseCase(c.State, dest).Execute(ctx, usecase.MigrateStoreInput{})
	require.NoError(t, err)
	assert.False(t, out.Skipped)

	repo, err := git.PlainOpen(workDir)
	require.NoError(t, err)
	_, err = repo.Reference(plumbing.ReferenceName(domain.HistoryRef(domain.DefaultNamespace)), true)
	require.NoError(t, err)
	migrated, err := dest.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeWorking, migrated.Mode.Kind)

	out, err = c.MigrateStoreUseCase(c.State, dest).Execute(ctx, usecase.MigrateStoreInput{})
	require.NoError(t, err)
	assert.True(t, out.Skipped)
}
