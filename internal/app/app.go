// Package app runs one conversion: it resolves the workbook and sheet,
// falls back to listing what is available, and writes the target file.
package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"

	"xltotxt/internal/cli"
	"xltotxt/internal/config"
	"xltotxt/internal/excel"
	"xltotxt/internal/logger"
	"xltotxt/internal/output"
	"xltotxt/internal/prompt"
)

// App holds everything one invocation needs
type App struct {
	out      io.Writer
	cwd      string
	prompter prompt.Prompter
	matcher  excel.Matcher
	encoding encoding.Encoding
}

// New builds an App from the config. Answers are read from in and all
// user-facing text goes to out.
func New(cfg *config.Config, in io.Reader, out io.Writer, cwd string) (*App, error) {
	enc, err := output.LookupEncoding(cfg.Output.Encoding)
	if err != nil {
		return nil, err
	}
	return &App{
		out:      out,
		cwd:      cwd,
		prompter: prompt.New(cfg.Prompt.Mode, in, out),
		matcher: excel.Matcher{
			Pattern: cfg.Discovery.Pattern,
			Strict:  cfg.Discovery.StrictExtension,
		},
		encoding: enc,
	}, nil
}

// Run carries out the invocation. A nil error means a clean exit, which
// includes the help, list and quit paths; anything else is an *ExitError.
func (a *App) Run(inv cli.Invocation) error {
	fmt.Fprintln(a.out)
	logger.Info("Starting conversion",
		"source", inv.Source.Value,
		"sheet", inv.Sheet.Value,
		"target", inv.Target.Value)

	wb, err := a.openWorkbook(inv.Source)
	if err != nil || wb == nil {
		return err
	}
	defer wb.Close()

	bookName := filepath.Base(inv.Source.Value)
	sheet, err := a.selectSheet(wb, bookName, inv.Sheet)
	if err != nil || sheet == nil {
		return err
	}

	if !inv.Target.Present {
		return usageError(ErrMissingArgument, cli.MissingArgument(cli.TargetPlaceholder))
	}

	lines, err := a.loadSheet(sheet)
	if err != nil {
		return err
	}

	target := inv.Target.Value
	mode, err := output.ResolveConflict(target, a.prompter, a.out)
	if errors.Is(err, output.ErrQuit) {
		return nil
	}
	if err != nil {
		return promptError(err)
	}

	if err := a.write(target, lines, mode); err != nil {
		return err
	}

	return a.offerView(target)
}

// openWorkbook opens the source, or prints help or the workbooks next to it.
// A nil workbook with a nil error means the run is over.
func (a *App) openWorkbook(source cli.Arg) (excel.Workbook, error) {
	dir := a.cwd

	if !source.Present {
		fmt.Fprintln(a.out, cli.MissingArgument(cli.SourcePlaceholder))
	} else {
		wb, err := excel.Open(source.Value)
		if err == nil {
			logger.Info("Opened workbook", "path", source.Value)
			return wb, nil
		}
		logger.Warn("Failed to open workbook", "path", source.Value, "error", err)

		name := filepath.Base(source.Value)
		switch {
		case strings.EqualFold(name, cli.HelpKeyword):
			fmt.Fprintln(a.out, cli.Help)
			return nil, nil
		case strings.EqualFold(name, cli.ListKeyword):
		default:
			fmt.Fprintf(a.out, "Error: Could not open file '%s'\n", source.Value)
			if !a.matcher.Match(source.Value) {
				return nil, fatal(ErrInvalidFileType, "Error: Source file not a valid Excel type.")
			}
		}
		dir = filepath.Dir(source.Value)
	}

	return nil, a.listWorkbooks(dir)
}

func (a *App) listWorkbooks(dir string) error {
	files, err := excel.ListExcelFiles(dir, a.matcher)
	if errors.Is(err, excel.ErrNoFilesFound) {
		return fatal(err, "No Excel files found in %s", dir)
	}
	if err != nil {
		return fatal(err, "Error: %v", err)
	}

	logger.Info("Listed workbooks", "directory", dir, "count", len(files))
	fmt.Fprintf(a.out, "Excel files found in %s:\n", dir)
	for _, name := range files {
		fmt.Fprintf(a.out, "  %s\n", name)
	}
	return nil
}

// selectSheet looks the sheet up, or prints the workbook's sheet names.
// A nil sheet with a nil error means the run is over.
func (a *App) selectSheet(wb excel.Workbook, bookName string, name cli.Arg) (*excel.Sheet, error) {
	if !name.Present {
		fmt.Fprintln(a.out, cli.MissingArgument(cli.SheetPlaceholder))
	} else {
		sheet, err := wb.Sheet(name.Value)
		if err == nil {
			logger.Info("Selected sheet", "sheet", name.Value)
			return sheet, nil
		}
		if !errors.Is(err, excel.ErrSheetNotFound) {
			return nil, fatal(err, "Error: Could not read sheet '%s': %v", name.Value, err)
		}
		if name.Value != cli.ListKeyword {
			fmt.Fprintf(a.out, "Sheet '%s' not found in '%s'\n", name.Value, bookName)
		}
	}

	fmt.Fprintf(a.out, "Sheet names in '%s':\n", bookName)
	for _, sheetName := range wb.SheetNames() {
		fmt.Fprintf(a.out, "  %s\n", sheetName)
	}
	return nil, nil
}

func (a *App) loadSheet(sheet *excel.Sheet) ([]string, error) {
	fmt.Fprintf(a.out, "Loading data from '%s'...\n", sheet.Name)

	lines, err := excel.SerializeSheet(sheet)
	if errors.Is(err, excel.ErrEmptySheet) {
		return nil, fatal(err, "'%s' contains no data", sheet.Name)
	}
	if err != nil {
		return nil, fatal(err, "Error: %v", err)
	}

	logger.Info("Serialized sheet", "sheet", sheet.Name, "rows", len(lines))
	return lines, nil
}

func (a *App) write(target string, lines []string, mode output.Mode) error {
	name := filepath.Base(target)

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%s '%s'...\n", mode.Status(), name)
	if err := output.WriteLines(target, lines, mode, a.encoding); err != nil {
		logger.Error("Failed to write target", "target", target, "error", err)
		return fatal(err, "Error: %v", err)
	}
	fmt.Fprintln(a.out, "Done.")

	logger.Info("Wrote target", "target", target, "mode", mode.String(), "rows", len(lines))
	return nil
}

func (a *App) offerView(target string) error {
	name := filepath.Base(target)

	yn, err := a.prompter.Ask(fmt.Sprintf("\nDisplay '%s' contents? (Y/N) ", name), []string{"y", "n"})
	if err != nil {
		return promptError(err)
	}
	if yn == "n" {
		return nil
	}

	if err := output.View(target, a.encoding, a.out); err != nil {
		return fatal(err, "Error: %v", err)
	}
	return nil
}
