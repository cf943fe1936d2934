package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prxgr4mm3r/swanky-cli/pkg/discover"
)

// Materialize copies every confirmed candidate into its destination group
// subtree, creating contracts/, crates/ and tests/ under destRoot as needed.
// The caller guarantees destRoot started empty, but two entries in one group
// can still share a base name (different glob roots), so within-group name
// collisions are rejected instead of silently overlaying trees.
func Materialize(set discover.CandidateSet, destRoot string) error {
	groups := []struct {
		name    string
		entries []discover.PathEntry
	}{
		{"contracts", set.Contracts},
		{"crates", set.Crates},
		{"tests", set.Tests},
	}

	for _, g := range groups {
		if len(g.entries) == 0 {
			continue
		}
		groupDir := filepath.Join(destRoot, g.name)
		if err := os.MkdirAll(groupDir, 0750); err != nil { // #nosec G301
			return fmt.Errorf("failed to create %s: %w", groupDir, err)
		}
		seen := make(map[string]string, len(g.entries))
		for _, entry := range g.entries {
			if prev, ok := seen[entry.Name]; ok {
				return fmt.Errorf("both %s and %s would land at %s/%s", prev, entry.AbsolutePath, g.name, entry.Name)
			}
			seen[entry.Name] = entry.AbsolutePath
			dst := filepath.Join(groupDir, entry.Name)
			if entry.IsDirectory {
				if err := os.MkdirAll(dst, 0750); err != nil { // #nosec G301
					return fmt.Errorf("failed to create %s: %w", dst, err)
				}
				if err := copyDir(entry.AbsolutePath, dst); err != nil {
					return fmt.Errorf("failed to copy %s: %w", entry.AbsolutePath, err)
				}
			} else {
				if err := copyFile(entry.AbsolutePath, dst); err != nil {
					return fmt.Errorf("failed to copy %s: %w", entry.AbsolutePath, err)
				}
			}
		}
	}
	return nil
}

// Helpers
func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := os.MkdirAll(dstPath, 0750); err != nil { // #nosec G301
				return err
			}
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}
	return nil
}
