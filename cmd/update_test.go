//go:build !windows

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapBinary_ReplacesCurrent(t *testing.T) {
	dir := t.TempDir()
	current := filepath.Join(dir, "swanky")
	replacement := filepath.Join(dir, "swanky-new")
	require.NoError(t, os.WriteFile(current, []byte("old"), 0755))
	require.NoError(t, os.WriteFile(replacement, []byte("new"), 0755))

	require.NoError(t, swapBinary(current, replacement))

	data, err := os.ReadFile(current)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.NoFileExists(t, replacement)
	assert.NoFileExists(t, current+".old")
}

func TestSwapBinary_RestoresOnFailure(t *testing.T) {
	dir := t.TempDir()
	current := filepath.Join(dir, "swanky")
	require.NoError(t, os.WriteFile(current, []byte("old"), 0755))

	// Replacement path does not exist, so the second rename fails.
	err := swapBinary(current, filepath.Join(dir, "missing"))
	require.Error(t, err)

	data, err := os.ReadFile(current)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "original binary must be restored")
}
