package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// workbookExtensions are the extensions checked when matching is strict
var workbookExtensions = map[string]bool{
	".xls":  true,
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Matcher decides whether a file name looks like an Excel workbook.
// By default any name containing Pattern matches, so "report.xlsx.bak" does too.
// Strict compares the real extension instead.
type Matcher struct {
	Pattern string
	Strict  bool
}

// Match reports whether the base name of path looks like an Excel workbook
func (m Matcher) Match(path string) bool {
	name := filepath.Base(path)
	if m.Strict {
		return workbookExtensions[strings.ToLower(filepath.Ext(name))]
	}
	return strings.Contains(name, m.Pattern)
}

// ListExcelFiles returns the names of the files directly inside dir that the
// matcher accepts, in directory order. ErrNoFilesFound is returned when there are none.
func ListExcelFiles(dir string, m Matcher) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var xlFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if m.Match(entry.Name()) {
			xlFiles = append(xlFiles, entry.Name())
		}
	}

	if len(xlFiles) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFilesFound, dir)
	}
	return xlFiles, nil
}
