// Package clear removes generated build artifacts from a swanky project.
package clear

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
)

// artifactDirs are always removed; targetDir only with the all flag since a
// full cargo target rebuild is expensive.
var artifactDirs = []string{"artifacts", "typedContracts"}

const targetDir = "target"

// Artifacts deletes the artifact directories under projectDir and returns
// the paths it removed. It refuses to run outside a swanky project.
func Artifacts(projectDir string, all bool) ([]string, error) {
	if _, err := os.Stat(filepath.Join(projectDir, config.DefaultConfigFile)); err != nil {
		if os.IsNotExist(err) {
			return nil, clierr.NewConfig("no %s found in %s: refusing to delete outside a swanky project", config.DefaultConfigFile, projectDir)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", projectDir, err)
	}

	dirs := append([]string(nil), artifactDirs...)
	if all {
		dirs = append(dirs, targetDir)
	}

	var removed []string
	for _, dir := range dirs {
		path := filepath.Join(projectDir, dir)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
