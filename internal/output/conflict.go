package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"xltotxt/internal/logger"
	"xltotxt/internal/prompt"
)

// Mode is how the target file is written
type Mode int

const (
	ModeCreate Mode = iota
	ModeAppend
	ModeOverwrite
)

// Status is the verb printed while writing
func (m Mode) Status() string {
	switch m {
	case ModeAppend:
		return "Appending"
	case ModeOverwrite:
		return "Overwriting"
	}
	return "Creating"
}

func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	case ModeOverwrite:
		return "overwrite"
	}
	return "create"
}

// ErrQuit is returned when the user chooses to leave the target untouched
var ErrQuit = errors.New("quit")

const actionQuestion = "Type '1' to append\nType '2' to overwrite\nType '3' to quit\n"

var (
	actionChoices  = []string{"1", "2", "3"}
	confirmChoices = []string{"y", "n"}
)

// ResolveConflict decides how to write path. A missing file is created
// without asking; an existing one goes through the append/overwrite/quit
// dialog, where a declined overwrite confirmation goes back to the first question.
func ResolveConflict(path string, p prompt.Prompter, out io.Writer) (Mode, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ModeCreate, nil
		}
		return ModeCreate, fmt.Errorf("failed to check target file: %w", err)
	}

	name := filepath.Base(path)
	for {
		fmt.Fprintf(out, "'%s' already exists.\n", name)
		choice, err := p.Ask(actionQuestion, actionChoices)
		if err != nil {
			return ModeCreate, err
		}

		switch choice {
		case "1":
			logger.Info("Target exists, appending", "target", path)
			return ModeAppend, nil

		case "2":
			yn, err := p.Ask(fmt.Sprintf("Overwrite '%s', are you sure? (Y/N) ", name), confirmChoices)
			if err != nil {
				return ModeCreate, err
			}
			if yn == "y" {
				logger.Info("Target exists, overwriting", "target", path)
				return ModeOverwrite, nil
			}
			fmt.Fprintln(out, "Overwrite action cancelled")
			fmt.Fprintln(out)

		case "3":
			logger.Info("Target exists, user quit", "target", path)
			return ModeCreate, ErrQuit
		}
	}
}
