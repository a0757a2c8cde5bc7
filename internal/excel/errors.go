package excel

import (
	"errors"
	"fmt"
)

var (
	// ErrSheetNotFound is returned when the workbook has no sheet with the requested name
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrEmptySheet is returned when a sheet holds nothing but the single blank row
	ErrEmptySheet = errors.New("sheet contains no data")

	// ErrNoFilesFound is returned when a directory holds no Excel-like files
	ErrNoFilesFound = errors.New("no Excel files found")

	// ErrNoWorkbookStream is returned for compound files that carry no workbook
	ErrNoWorkbookStream = errors.New("no workbook stream in file")
)

// OpenError reports a source file that could not be opened as a workbook.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open file %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
