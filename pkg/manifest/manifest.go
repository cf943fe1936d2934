// Package manifest reads and merges the two descriptor formats a conversion
// touches: Cargo.toml workspace/package manifests and package.json files.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
)

// CargoToml is the parsed top-level table of a Cargo.toml file.
type CargoToml = map[string]any

// ContractsMemberGlob is the sole workspace member every converted project ends up with.
const ContractsMemberGlob = "contracts/*"

// ReadCargo parses the Cargo.toml at path. A missing file is reported as-is
// via os.IsNotExist; a present but malformed file is a ManifestParseError.
func ReadCargo(path string) (CargoToml, error) {
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- manifest path is derived from a user-confirmed source dir
	if err != nil {
		return nil, err
	}
	doc := CargoToml{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &clierr.ManifestParseError{Path: path, Cause: err}
	}
	return doc, nil
}

// PackageName returns the package.name declared in the manifest, or "" if
// the manifest has no package table or the table declares no name.
func PackageName(doc CargoToml) string {
	pkg, ok := doc["package"].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := pkg["name"].(string)
	return name
}

// MergeWorkspace reads the source project's root Cargo.toml at srcPath (or
// synthesizes one with an empty workspace table when the file is absent),
// overwrites its workspace members list to exactly ["contracts/*"], and
// writes the result to dstPath. Pre-existing member globs are dropped;
// members outside contracts/* are not carried over.
func MergeWorkspace(srcPath, dstPath string) error {
	doc, err := ReadCargo(srcPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		doc = CargoToml{}
	}

	ws, ok := doc["workspace"].(map[string]any)
	if !ok {
		ws = map[string]any{}
		doc["workspace"] = ws
	}
	ws["members"] = []string{ContractsMemberGlob}

	return WriteCargo(dstPath, doc)
}

// WriteCargo serializes doc to path, replacing any existing file.
func WriteCargo(path string, doc CargoToml) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode manifest %s: %w", path, err)
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}
