package clear

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
)

func swankyProject(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, config.New().Save(root))
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir, "sub"), 0750))
	}
	return root
}

func TestArtifacts_RemovesGeneratedDirs(t *testing.T) {
	root := swankyProject(t, "artifacts", "typedContracts", "target")

	removed, err := Artifacts(root, false)
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.NoDirExists(t, filepath.Join(root, "artifacts"))
	assert.NoDirExists(t, filepath.Join(root, "typedContracts"))
	assert.DirExists(t, filepath.Join(root, "target"), "target only removed with all flag")
}

func TestArtifacts_AllIncludesTarget(t *testing.T) {
	root := swankyProject(t, "artifacts", "target")

	removed, err := Artifacts(root, true)
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.NoDirExists(t, filepath.Join(root, "target"))
}

func TestArtifacts_NothingToRemove(t *testing.T) {
	root := swankyProject(t)

	removed, err := Artifacts(root, true)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestArtifacts_RefusesOutsideProject(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "artifacts"), 0750))

	_, err := Artifacts(root, false)
	require.Error(t, err)
	var cfgErr *clierr.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.DirExists(t, filepath.Join(root, "artifacts"), "nothing deleted outside a project")
}
