package cli

import "fmt"

const (
	SourcePlaceholder = "<source path/file.extension>"
	SheetPlaceholder  = "<sheet name>"
	TargetPlaceholder = "<target path/file.txt>"
)

// Usage is the one-line synopsis, preceded by a blank line
const Usage = "\nUsage: xltotxt " + SourcePlaceholder + " " + SheetPlaceholder + " " + TargetPlaceholder

// Help is printed for -h, --help and a source named help
const Help = Usage + `

Typing 'list' or leaving an argument blank will list available actions.
Leaving a directory blank assumes the current working directory.
File or sheet names that contain spaces must be within quotes, i.e "book name.xlsx".
File extension is required for reading file, but not for writing (.txt).
Options go before the file names. Put -- before a source name that starts with a dash.
Supported workbook types: .xlsx .xlsm .xltx .xltm and legacy .xls.

Options:
  --config <file>   read settings from a TOML file
  --prompt <mode>   prompt style: auto, line or tui`

// MissingArgument is the message for an absent positional argument
func MissingArgument(placeholder string) string {
	return fmt.Sprintf("Error: Missing argument %s%s", placeholder, Usage)
}

// TooManyArguments is the message for more than three positional arguments
func TooManyArguments() string {
	return "Error: Too many arguments." + Usage
}
