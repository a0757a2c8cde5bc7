package cli

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	// HelpKeyword as the source name prints the help text
	HelpKeyword = "help"
	// ListKeyword as the source or sheet name lists what is available
	ListKeyword = "list"

	maxArgs = 3
)

// ErrTooManyArgs is returned when more than three positional arguments are given
var ErrTooManyArgs = errors.New("too many arguments")

// Arg is a positional argument that may be absent
type Arg struct {
	Value   string
	Present bool
}

// Invocation holds the resolved positional arguments. Source and Target are
// absolute paths when present; Target always ends in the target extension.
type Invocation struct {
	Source Arg
	Sheet  Arg
	Target Arg
}

// Parse resolves up to three positional arguments against cwd. A missing
// argument is not an error here; each step decides what absence means.
func Parse(args []string, cwd, ext string) (Invocation, error) {
	if len(args) > maxArgs {
		return Invocation{}, ErrTooManyArgs
	}

	var inv Invocation
	if len(args) > 0 {
		inv.Source = Arg{Value: ResolvePath(args[0], cwd), Present: true}
	}
	if len(args) > 1 {
		inv.Sheet = Arg{Value: args[1], Present: true}
	}
	if len(args) > 2 {
		inv.Target = Arg{Value: ForceExtension(ResolvePath(args[2], cwd), ext), Present: true}
	}
	return inv, nil
}

// ResolvePath joins relative paths onto cwd and leaves absolute ones alone
func ResolvePath(path, cwd string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

// ForceExtension appends ext unless path already ends with it
func ForceExtension(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}
