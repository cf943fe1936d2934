// Package templates lists the bundled project templates and renders one
// into a fresh project directory, substituting tokens into *.tpl files.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
)

// MetadataFile is the per-template descriptor read from the template root.
const MetadataFile = "template.yaml"

// Token is one substitution the template asks for before rendering.
type Token struct {
	Name     string `yaml:"name"`
	Question string `yaml:"question"`
	Default  string `yaml:"default"`
}

// Template describes one scaffolding template.
type Template struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Tokens      []Token `yaml:"tokens"`
	// Dir is the template's source directory; not part of the metadata file.
	Dir string `yaml:"-"`
}

// DefaultDir returns the template search directory: $SWANKY_TEMPLATES_DIR
// if set, otherwise ~/.swanky/templates.
func DefaultDir() (string, error) {
	if dir := os.Getenv("SWANKY_TEMPLATES_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".swanky", "templates"), nil
}

// List returns every template under templatesDir, sorted by name. A
// subdirectory without a template.yaml is skipped; a malformed template.yaml
// is an error.
func List(templatesDir string) ([]Template, error) {
	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, clierr.NewFile("no templates found at %s", templatesDir)
		}
		return nil, fmt.Errorf("failed to read templates dir %s: %w", templatesDir, err)
	}

	var out []Template
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(templatesDir, entry.Name())
		metaPath := filepath.Join(dir, MetadataFile)
		data, err := os.ReadFile(filepath.Clean(metaPath)) // #nosec G304 -- path is inside the templates dir
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", metaPath, err)
		}

		tpl := Template{Name: entry.Name()}
		if err := yaml.Unmarshal(data, &tpl); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", metaPath, err)
		}
		if tpl.Name == "" {
			tpl.Name = entry.Name()
		}
		tpl.Dir = dir
		out = append(out, tpl)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ByName returns the named template from templatesDir.
func ByName(templatesDir, name string) (Template, error) {
	all, err := List(templatesDir)
	if err != nil {
		return Template{}, err
	}
	for _, tpl := range all {
		if tpl.Name == name {
			return tpl, nil
		}
	}
	return Template{}, clierr.NewInput("unknown template %q", name)
}
