package convert

import (
	"path/filepath"
	"strings"

	"github.com/prxgr4mm3r/swanky-cli/pkg/discover"
	"github.com/prxgr4mm3r/swanky-cli/pkg/prompt"
)

const (
	contractsSection = "Select contracts to import"
	cratesSection    = "Select additional crates to import"
	testsSection     = "Select test directories to import"
)

// ConfirmCandidates shows each candidate group as its own checklist with
// everything pre-selected, and returns the approved subset partitioned back
// into the group each item came from. An empty group still renders its
// section so the user sees that nothing was found there.
func ConfirmCandidates(asker prompt.Asker, set discover.CandidateSet) (discover.CandidateSet, error) {
	contracts, err := confirmGroup(asker, contractsSection, set.Contracts)
	if err != nil {
		return discover.CandidateSet{}, err
	}
	crates, err := confirmGroup(asker, cratesSection, set.Crates)
	if err != nil {
		return discover.CandidateSet{}, err
	}
	tests, err := confirmGroup(asker, testsSection, set.Tests)
	if err != nil {
		return discover.CandidateSet{}, err
	}
	return discover.CandidateSet{Contracts: contracts, Crates: crates, Tests: tests}, nil
}

func confirmGroup(asker prompt.Asker, section string, entries []discover.PathEntry) ([]discover.PathEntry, error) {
	options := displayNames(entries)

	selected, err := asker.MultiSelect(section, options, options)
	if err != nil {
		return nil, err
	}

	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}

	out := make([]discover.PathEntry, 0, len(entries))
	for i, e := range entries {
		if chosen[options[i]] {
			out = append(out, e)
		}
	}
	return out, nil
}

// displayNames renders one checklist label per entry. Labels must be unique
// or selections alias: two entries with the same base name from different
// glob roots (contracts/foo and contract/foo) get their parent directory
// prefixed so deselecting one cannot drag the other along.
func displayNames(entries []discover.PathEntry) []string {
	names := make([]string, len(entries))
	count := make(map[string]int, len(entries))
	for i, e := range entries {
		names[i] = displayName(e)
		count[names[i]]++
	}
	for i, e := range entries {
		if count[names[i]] > 1 {
			names[i] = filepath.Base(filepath.Dir(e.AbsolutePath)) + "/" + names[i]
		}
	}
	return names
}

// displayName marks directories with a trailing separator so the checklist
// distinguishes foo/ from a plain file foo.
func displayName(e discover.PathEntry) string {
	if e.IsDirectory && !strings.HasSuffix(e.Name, "/") {
		return e.Name + "/"
	}
	return e.Name
}
