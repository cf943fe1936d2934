package prompt

import "fmt"

// ScriptedAsker answers prompts from pre-recorded responses, keyed by
// question text. Questions without a recorded answer fall back to the
// prompt defaults, so most tests only script the answers they care about.
type ScriptedAsker struct {
	TextAnswers    map[string]string
	ConfirmAnswers map[string]bool
	SelectAnswers  map[string]string
	Selections     map[string][]string
	// Asked records every question in the order it was asked.
	Asked []string
}

var _ Asker = (*ScriptedAsker)(nil)

// NewScriptedAsker returns an empty scripted Asker; every prompt resolves
// to its default until answers are recorded.
func NewScriptedAsker() *ScriptedAsker {
	return &ScriptedAsker{
		TextAnswers:    map[string]string{},
		ConfirmAnswers: map[string]bool{},
		SelectAnswers:  map[string]string{},
		Selections:     map[string][]string{},
	}
}

func (a *ScriptedAsker) Select(question string, options []string) (string, error) {
	a.Asked = append(a.Asked, question)
	if answer, ok := a.SelectAnswers[question]; ok {
		if !contains(options, answer) {
			return "", fmt.Errorf("scripted answer %q is not among the offered options", answer)
		}
		return answer, nil
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no options offered for %q", question)
	}
	return options[0], nil
}

func (a *ScriptedAsker) Text(question, defaultValue string) (string, error) {
	a.Asked = append(a.Asked, question)
	if answer, ok := a.TextAnswers[question]; ok {
		return answer, nil
	}
	return defaultValue, nil
}

func (a *ScriptedAsker) Confirm(question string, defaultYes bool) (bool, error) {
	a.Asked = append(a.Asked, question)
	if answer, ok := a.ConfirmAnswers[question]; ok {
		return answer, nil
	}
	return defaultYes, nil
}

func (a *ScriptedAsker) MultiSelect(question string, options, preselected []string) ([]string, error) {
	a.Asked = append(a.Asked, question)
	if selection, ok := a.Selections[question]; ok {
		for _, s := range selection {
			if !contains(options, s) {
				return nil, fmt.Errorf("scripted selection %q is not among the offered options", s)
			}
		}
		return selection, nil
	}
	return preselected, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
