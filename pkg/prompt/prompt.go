// Package prompt asks the user for input interactively.
package prompt

import (
	"strings"

	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/pterm/pterm"
)

// Prompter reads one line of input after showing a label
type Prompter interface {
	Ask(label string) (string, error)
}

// Terminal prompts on the controlling terminal with pterm
type Terminal struct{}

// Ask implements Prompter
func (Terminal) Ask(label string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(label).Show()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPrompt, "failed to read input")
	}
	return strings.TrimSpace(answer), nil
}

// Scripted answers from a fixed list, for tests and non-interactive use
type Scripted struct {
	Answers []string
	Asked   []string
}

// Ask implements Prompter
func (s *Scripted) Ask(label string) (string, error) {
	s.Asked = append(s.Asked, label)
	if len(s.Answers) == 0 {
		return "", errors.Newf(errors.ErrPrompt, "no answer for %q", label)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
