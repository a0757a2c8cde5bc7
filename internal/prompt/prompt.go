// Package prompt asks the user to pick one of a fixed set of answers,
// either line by line or through a small terminal UI.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrInputClosed is returned when input ends before a valid answer was given
	ErrInputClosed = errors.New("input closed before a valid choice was made")

	// ErrInterrupted is returned when the user aborts the prompt with Ctrl+C
	ErrInterrupted = errors.New("interrupted")
)

// InvalidChoiceError is shown to the user when the answer is not one of the choices.
type InvalidChoiceError struct {
	Input string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("'%s' is not a valid option", e.Input)
}

// Prompter asks a question until one of choices is answered and returns the
// answer trimmed and lower-cased. Choices are compared case-insensitively.
type Prompter interface {
	Ask(question string, choices []string) (string, error)
}

const (
	ModeAuto = "auto"
	ModeLine = "line"
	ModeTUI  = "tui"
)

// New returns the prompter for mode. Auto uses the terminal UI only when both
// in and out are terminals. The terminal UI never sees the end of piped
// input, so tui falls back to line prompts when in is not a terminal.
func New(mode string, in io.Reader, out io.Writer) Prompter {
	switch mode {
	case ModeLine:
		return NewLinePrompter(in, out)
	case ModeTUI:
		if isTerminal(in) {
			return NewTUIPrompter(in, out)
		}
		return NewLinePrompter(in, out)
	}
	if isTerminal(in) && isTerminal(out) {
		return NewTUIPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Match checks input against choices. It returns the normalized answer or an
// *InvalidChoiceError carrying the input as typed.
func Match(input string, choices []string) (string, error) {
	raw := strings.TrimRight(input, "\r\n")
	answer := strings.ToLower(strings.TrimSpace(raw))
	if answer != "" && slices.ContainsFunc(choices, func(c string) bool {
		return strings.ToLower(c) == answer
	}) {
		return answer, nil
	}
	return "", &InvalidChoiceError{Input: raw}
}
