package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func templateFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "flipper", "template.yaml"), `description: Minimal flipper contract
tokens:
  - name: author_name
    question: Who is the author?
    default: unknown
`)
	writeFile(t, filepath.Join(dir, "flipper", "Cargo.toml.tpl"), "[package]\nname = \"{{.contract_name}}\"\nauthors = [\"{{.author_name}}\"]\n")
	writeFile(t, filepath.Join(dir, "flipper", "lib.rs"), "// verbatim contract source\n")
	writeFile(t, filepath.Join(dir, "psp22", "template.yaml"), "description: PSP22 token\n")
	writeFile(t, filepath.Join(dir, "not-a-template", "readme.md"), "no metadata here")
	return dir
}

func TestList(t *testing.T) {
	dir := templateFixture(t)

	all, err := List(dir)
	require.NoError(t, err)
	require.Len(t, all, 2, "directories without template.yaml are skipped")
	assert.Equal(t, "flipper", all[0].Name)
	assert.Equal(t, "psp22", all[1].Name)
	assert.Equal(t, "Minimal flipper contract", all[0].Description)
	require.Len(t, all[0].Tokens, 1)
	assert.Equal(t, "author_name", all[0].Tokens[0].Name)
}

func TestList_MissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestByName(t *testing.T) {
	dir := templateFixture(t)

	tpl, err := ByName(dir, "psp22")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "psp22"), tpl.Dir)

	_, err = ByName(dir, "does-not-exist")
	assert.Error(t, err)
}

func TestRender_TokensAndVerbatim(t *testing.T) {
	dir := templateFixture(t)
	dest := t.TempDir()

	tokens := map[string]string{
		"contract_name": "my_flipper",
		"author_name":   "alice",
	}
	require.NoError(t, Render(filepath.Join(dir, "flipper"), dest, tokens))

	rendered, err := os.ReadFile(filepath.Join(dest, "Cargo.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(rendered), `name = "my_flipper"`)
	assert.Contains(t, string(rendered), `authors = ["alice"]`)

	verbatim, err := os.ReadFile(filepath.Join(dest, "lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, "// verbatim contract source\n", string(verbatim))

	assert.NoFileExists(t, filepath.Join(dest, "template.yaml"), "metadata file never ships")
	assert.NoFileExists(t, filepath.Join(dest, "Cargo.toml.tpl"), "tpl suffix is stripped")
}

func TestRender_TokenizedPath(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "contracts", "{{contract_name}}", "lib.rs"), "// code")

	require.NoError(t, Render(src, dest, map[string]string{"contract_name": "my_token"}))
	assert.FileExists(t, filepath.Join(dest, "contracts", "my_token", "lib.rs"))
}

func TestRender_MissingTokenFails(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "file.txt.tpl"), "hello {{.who}}")

	assert.Error(t, Render(src, dest, map[string]string{}))
}

func TestDefaultDir_EnvOverride(t *testing.T) {
	t.Setenv("SWANKY_TEMPLATES_DIR", "/custom/templates")
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/templates", dir)
}
