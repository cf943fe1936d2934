// Package validate provides reusable input validation functions for CLI arguments
// and configuration values. All validators return an error describing the violation
// or nil if the input is acceptable.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
)

// projectNameRe matches valid project and contract names (alphanumeric,
// hyphens, underscores; must start with a letter).
var projectNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ProjectName validates a project or contract name for safe use in paths and
// Cargo package names.
func ProjectName(s string) error {
	if s == "" {
		return clierr.NewInput("project name must not be empty")
	}
	if !projectNameRe.MatchString(s) {
		return clierr.NewInput("invalid project name %q: must start with a letter and contain only alphanumeric characters, hyphens and underscores", s)
	}
	return nil
}

// SourcePath validates the path to an existing project used for conversion.
func SourcePath(s string) error {
	if s == "" {
		return clierr.NewInput("source path must not be empty")
	}
	cleaned := filepath.Clean(s)
	if strings.ContainsRune(cleaned, 0) {
		return clierr.NewInput("source path contains null bytes")
	}
	info, err := os.Stat(cleaned)
	if err != nil {
		if os.IsNotExist(err) {
			return clierr.NewInput("source path %s does not exist", s)
		}
		return fmt.Errorf("cannot access source path %s: %w", s, err)
	}
	if !info.IsDir() {
		return clierr.NewInput("source path %s is not a directory", s)
	}
	return nil
}

// EmptyProjectDir checks that dir either does not exist yet or is an empty
// directory, so scaffolding never clobbers existing files.
func EmptyProjectDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot read project directory %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return clierr.NewInput("directory %s already exists and is not empty", dir)
	}
	return nil
}
