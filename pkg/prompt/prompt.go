// Package prompt separates the questions the CLI asks from how they are
// rendered. Business logic depends only on the Asker interface; the pterm
// implementation renders real terminal prompts, while tests swap in a
// scripted answer source.
package prompt

import (
	"github.com/pterm/pterm"
)

// Asker is the capability to ask a user something and get an answer back.
type Asker interface {
	// Text asks a free-form question, returning defaultValue on empty input.
	Text(question, defaultValue string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(question string, defaultYes bool) (bool, error)
	// Select asks the user to pick exactly one option.
	Select(question string, options []string) (string, error)
	// MultiSelect presents options under a section heading with the given
	// subset pre-selected, returning the confirmed selection.
	MultiSelect(question string, options, preselected []string) ([]string, error)
}

// PtermAsker renders prompts with pterm's interactive printers.
type PtermAsker struct{}

// Compile-time check that PtermAsker implements Asker.
var _ Asker = (*PtermAsker)(nil)

// NewPtermAsker returns the real terminal-backed Asker.
func NewPtermAsker() *PtermAsker {
	return &PtermAsker{}
}

func (a *PtermAsker) Text(question, defaultValue string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultValue).
		Show(question)
}

func (a *PtermAsker) Confirm(question string, defaultYes bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultYes).
		Show(question)
}

func (a *PtermAsker) Select(question string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show(question)
}

func (a *PtermAsker) MultiSelect(question string, options, preselected []string) ([]string, error) {
	return pterm.DefaultInteractiveMultiselect.
		WithOptions(options).
		WithDefaultOptions(preselected).
		Show(question)
}
