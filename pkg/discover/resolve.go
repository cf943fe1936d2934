package discover

import (
	"os"
	"path/filepath"

	"github.com/prxgr4mm3r/swanky-cli/pkg/manifest"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

// ResolveModuleNames returns a new set in which every contract and crate
// entry carries its canonical module name. Directories holding a Cargo.toml
// take the declared package.name; everything else falls back to the entry's
// base name. The tests group passes through untouched.
//
// A malformed manifest is a fatal ManifestParseError; a manifest that simply
// declares no package name only produces a warning.
func ResolveModuleNames(set CandidateSet) (CandidateSet, error) {
	contracts, err := resolveGroup(set.Contracts)
	if err != nil {
		return CandidateSet{}, err
	}
	crates, err := resolveGroup(set.Crates)
	if err != nil {
		return CandidateSet{}, err
	}
	return CandidateSet{
		Contracts: contracts,
		Crates:    crates,
		Tests:     append([]PathEntry(nil), set.Tests...),
	}, nil
}

func resolveGroup(entries []PathEntry) ([]PathEntry, error) {
	out := make([]PathEntry, 0, len(entries))
	for _, entry := range entries {
		resolved, err := resolveEntry(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

func resolveEntry(entry PathEntry) (PathEntry, error) {
	entry.ModuleName = entry.Name
	if !entry.IsDirectory {
		return entry, nil
	}

	manifestPath := filepath.Join(entry.AbsolutePath, "Cargo.toml")
	doc, err := manifest.ReadCargo(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return entry, nil
		}
		return PathEntry{}, err
	}

	if name := manifest.PackageName(doc); name != "" {
		entry.ModuleName = name
	} else {
		ui.Warn.Printf("No package name declared in %s, using directory name %q\n", manifestPath, entry.Name)
	}
	return entry, nil
}
