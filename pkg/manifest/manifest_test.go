package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
)

func TestReadCargo_PackageName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[package]\nname = \"flipper\"\nversion = \"0.1.0\"\n"), 0600))

	doc, err := ReadCargo(path)
	require.NoError(t, err)
	assert.Equal(t, "flipper", PackageName(doc))
}

func TestPackageName_MissingTable(t *testing.T) {
	assert.Equal(t, "", PackageName(CargoToml{}))
	assert.Equal(t, "", PackageName(CargoToml{"package": map[string]any{"version": "0.1.0"}}))
}

func TestReadCargo_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[package\nbroken"), 0600))

	_, err := ReadCargo(path)
	require.Error(t, err)
	var parseErr *clierr.ManifestParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}

func TestMergeWorkspace_ReplacesExistingMembers(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.toml")
	dst := filepath.Join(dir, "dst.toml")
	require.NoError(t, os.WriteFile(src, []byte("[workspace]\nmembers = [\"pallets/*\", \"runtime\"]\n"), 0600))

	require.NoError(t, MergeWorkspace(src, dst))

	doc, err := ReadCargo(dst)
	require.NoError(t, err)
	ws := doc["workspace"].(map[string]any)
	members := ws["members"].([]any)
	require.Len(t, members, 1)
	assert.Equal(t, ContractsMemberGlob, members[0])
}

func TestMergeWorkspace_SynthesizesWhenMissing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.toml")
	dst := filepath.Join(dir, "dst.toml")

	require.NoError(t, MergeWorkspace(src, dst))

	doc, err := ReadCargo(dst)
	require.NoError(t, err)
	ws := doc["workspace"].(map[string]any)
	members := ws["members"].([]any)
	require.Len(t, members, 1)
	assert.Equal(t, ContractsMemberGlob, members[0])
}

func TestMergeWorkspace_KeepsUnrelatedTables(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.toml")
	dst := filepath.Join(dir, "dst.toml")
	require.NoError(t, os.WriteFile(src, []byte("[profile.release]\nlto = true\n\n[workspace]\nmembers = [\"old\"]\n"), 0600))

	require.NoError(t, MergeWorkspace(src, dst))

	doc, err := ReadCargo(dst)
	require.NoError(t, err)
	assert.Contains(t, doc, "profile")
}

func TestMergeWorkspace_MalformedSourceIsFatal(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.toml")
	dst := filepath.Join(dir, "dst.toml")
	require.NoError(t, os.WriteFile(src, []byte("not [valid toml"), 0600))

	err := MergeWorkspace(src, dst)
	require.Error(t, err)
	var parseErr *clierr.ManifestParseError
	assert.True(t, errors.As(err, &parseErr))
}
