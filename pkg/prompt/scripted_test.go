package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedAsker_DefaultsWhenUnscripted(t *testing.T) {
	asker := NewScriptedAsker()

	text, err := asker.Text("Author?", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "unknown", text)

	ok, err := asker.Confirm("Proceed?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	selection, err := asker.MultiSelect("Pick", []string{"a", "b"}, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, selection)

	choice, err := asker.Select("Which?", []string{"first", "second"})
	require.NoError(t, err)
	assert.Equal(t, "first", choice)
}

func TestScriptedAsker_RecordedAnswers(t *testing.T) {
	asker := NewScriptedAsker()
	asker.TextAnswers["Author?"] = "alice"
	asker.ConfirmAnswers["Proceed?"] = false
	asker.Selections["Pick"] = []string{"b"}
	asker.SelectAnswers["Which?"] = "second"

	text, _ := asker.Text("Author?", "unknown")
	assert.Equal(t, "alice", text)

	ok, _ := asker.Confirm("Proceed?", true)
	assert.False(t, ok)

	selection, _ := asker.MultiSelect("Pick", []string{"a", "b"}, []string{"a", "b"})
	assert.Equal(t, []string{"b"}, selection)

	choice, _ := asker.Select("Which?", []string{"first", "second"})
	assert.Equal(t, "second", choice)

	assert.Equal(t, []string{"Author?", "Proceed?", "Pick", "Which?"}, asker.Asked)
}

func TestScriptedAsker_RejectsUnknownOptions(t *testing.T) {
	asker := NewScriptedAsker()
	asker.Selections["Pick"] = []string{"not-offered"}

	_, err := asker.MultiSelect("Pick", []string{"a"}, []string{"a"})
	assert.Error(t, err)

	asker.SelectAnswers["Which?"] = "ghost"
	_, err = asker.Select("Which?", []string{"real"})
	assert.Error(t, err)
}
