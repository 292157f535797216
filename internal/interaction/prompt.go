// Package interaction provides the interactive confirmation prompt.
package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Prompter asks the user yes/no questions.
type Prompter interface {
	// Confirm presents a yes/no question and returns the answer.
	Confirm(title string, defaultYes bool) (bool, error)
}

var runConfirmPrompt = func(title string, value *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value).
		Run()
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	confirmed := defaultYes
	if err := runConfirmPrompt(title, &confirmed); err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return confirmed, nil
}

// AssumeYes is a Prompter that answers every question affirmatively,
// used for --yes runs and non-interactive environments.
type AssumeYes struct{}

func (AssumeYes) Confirm(string, bool) (bool, error) {
	return true, nil
}
