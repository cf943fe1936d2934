// Package discover enumerates candidate files and directories inside an
// existing contract project and resolves their canonical module names.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathEntry is one discovered filesystem candidate. ModuleName stays empty
// until ResolveModuleNames has run over the containing set.
type PathEntry struct {
	Name         string
	AbsolutePath string
	IsDirectory  bool
	ModuleName   string
}

// CandidateSet partitions discovered entries into the three destination
// groups of a converted workspace. Each pipeline stage returns a fresh set;
// earlier stages never see later mutations.
type CandidateSet struct {
	Contracts []PathEntry
	Crates    []PathEntry
	Tests     []PathEntry
}

// Discover expands the given glob patterns relative to rootDir and returns
// matching files followed by matching one-level directories, in pattern
// order. An empty pattern list yields an empty result; there is no implicit
// copy-everything fallback. The same path may appear twice when it matches
// more than one pattern; callers de-duplicate by AbsolutePath if they care.
func Discover(rootDir string, globs []string) ([]PathEntry, error) {
	var entries []PathEntry
	for _, pattern := range globs {
		matches, err := filepath.Glob(filepath.Join(rootDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		var files, dirs []PathEntry
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", match, err)
			}
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve %s: %w", match, err)
			}
			entry := PathEntry{
				Name:         filepath.Base(match),
				AbsolutePath: abs,
				IsDirectory:  info.IsDir(),
			}
			if entry.IsDirectory {
				dirs = append(dirs, entry)
			} else {
				files = append(files, entry)
			}
		}
		entries = append(entries, files...)
		entries = append(entries, dirs...)
	}
	return entries, nil
}

// Deduplicate returns entries with duplicate AbsolutePath values removed,
// keeping the first occurrence and the original ordering.
func Deduplicate(entries []PathEntry) []PathEntry {
	seen := make(map[string]bool, len(entries))
	out := make([]PathEntry, 0, len(entries))
	for _, e := range entries {
		if seen[e.AbsolutePath] {
			continue
		}
		seen[e.AbsolutePath] = true
		out = append(out, e)
	}
	return out
}
