package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prxgr4mm3r/swanky-cli/pkg/discover"
	"github.com/prxgr4mm3r/swanky-cli/pkg/prompt"
)

func entry(name string, isDir bool) discover.PathEntry {
	return discover.PathEntry{Name: name, AbsolutePath: "/src/" + name, IsDirectory: isDir}
}

func TestConfirmCandidates_AllSelectedByDefault(t *testing.T) {
	set := discover.CandidateSet{
		Contracts: []discover.PathEntry{entry("x", true), entry("y", true)},
		Crates:    []discover.PathEntry{entry("shared", true)},
		Tests:     []discover.PathEntry{entry("tests", true)},
	}

	asker := prompt.NewScriptedAsker()
	confirmed, err := ConfirmCandidates(asker, set)
	require.NoError(t, err)
	assert.Equal(t, set, confirmed)
}

func TestConfirmCandidates_DeselectionKeepsGroupMembership(t *testing.T) {
	set := discover.CandidateSet{
		Contracts: []discover.PathEntry{entry("x", true), entry("y", true)},
		Crates:    []discover.PathEntry{},
		Tests:     []discover.PathEntry{entry("z", true)},
	}

	asker := prompt.NewScriptedAsker()
	asker.Selections["Select contracts to import"] = []string{"y/"}

	confirmed, err := ConfirmCandidates(asker, set)
	require.NoError(t, err)

	require.Len(t, confirmed.Contracts, 1)
	assert.Equal(t, "y", confirmed.Contracts[0].Name)
	assert.Empty(t, confirmed.Crates)
	require.Len(t, confirmed.Tests, 1)
	assert.Equal(t, "z", confirmed.Tests[0].Name)
}

func TestConfirmCandidates_EmptyTestsSectionStillAsked(t *testing.T) {
	set := discover.CandidateSet{
		Contracts: []discover.PathEntry{entry("x", true)},
	}

	asker := prompt.NewScriptedAsker()
	_, err := ConfirmCandidates(asker, set)
	require.NoError(t, err)

	assert.Contains(t, asker.Asked, "Select test directories to import")
}

func TestConfirmCandidates_SameBaseNameFromDifferentRoots(t *testing.T) {
	// contracts/foo and contract/foo both survive discovery (distinct
	// absolute paths), so their checklist labels must not alias.
	set := discover.CandidateSet{
		Contracts: []discover.PathEntry{
			{Name: "foo", AbsolutePath: "/src/contracts/foo", IsDirectory: true},
			{Name: "foo", AbsolutePath: "/src/contract/foo", IsDirectory: true},
		},
	}

	asker := prompt.NewScriptedAsker()
	asker.Selections["Select contracts to import"] = []string{"contract/foo/"}

	confirmed, err := ConfirmCandidates(asker, set)
	require.NoError(t, err)

	require.Len(t, confirmed.Contracts, 1, "selecting one duplicate must not drag the other along")
	assert.Equal(t, "/src/contract/foo", confirmed.Contracts[0].AbsolutePath)
}

func TestConfirmCandidates_DirectoriesMarkedWithSeparator(t *testing.T) {
	set := discover.CandidateSet{
		Contracts: []discover.PathEntry{entry("dir", true), entry("file.rs", false)},
	}

	// Selecting by the rendered names proves the display format.
	asker := prompt.NewScriptedAsker()
	asker.Selections["Select contracts to import"] = []string{"dir/", "file.rs"}

	confirmed, err := ConfirmCandidates(asker, set)
	require.NoError(t, err)
	assert.Len(t, confirmed.Contracts, 2)
}
