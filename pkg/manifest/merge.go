package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DeepMerge merges override into base and returns a new tree. Maps merge
// key-by-key recursively; every other value kind from the override side
// (scalars, arrays) replaces the base side outright. Neither input is mutated.
func DeepMerge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, ov := range override {
		bv, exists := out[k]
		if !exists {
			out[k] = ov
			continue
		}
		bm, baseIsMap := bv.(map[string]any)
		om, overrideIsMap := ov.(map[string]any)
		if baseIsMap && overrideIsMap {
			out[k] = DeepMerge(bm, om)
			continue
		}
		out[k] = ov
	}
	return out
}

// MergePackageJSON deep-merges the package.json at overridePath over the
// template-generated one at templatePath, then replaces templatePath with the
// merged result. The external project's values win on every conflict.
func MergePackageJSON(templatePath, overridePath string) error {
	base, err := readJSON(templatePath)
	if err != nil {
		return err
	}
	override, err := readJSON(overridePath)
	if err != nil {
		return err
	}

	merged := DeepMerge(base, override)

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode merged package.json: %w", err)
	}

	// Replace the file whole, no partial patching.
	if err := os.Remove(templatePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", templatePath, err)
	}
	if err := os.WriteFile(templatePath, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", templatePath, err)
	}
	return nil
}

func readJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path is workspace-local
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
