package excel

import (
	"fmt"
	"strings"
)

const (
	// cellSeparator follows every cell, including the last one of a row
	cellSeparator = " "
	// emptyCell stands in for cells without a value
	emptyCell = "None"
)

// SerializeSheet turns the sheet into one line per row, walking rows 1..MaxRow
// and columns 1..MaxColumn. A sheet whose only row is blank yields ErrEmptySheet.
func SerializeSheet(s *Sheet) ([]string, error) {
	maxRow, maxCol := s.MaxRow(), s.MaxColumn()

	lines := make([]string, 0, maxRow)
	blank := true
	for row := 1; row <= maxRow; row++ {
		var b strings.Builder
		for col := 1; col <= maxCol; col++ {
			value := s.Cell(row, col)
			if value == "" {
				value = emptyCell
			} else {
				blank = false
			}
			b.WriteString(value)
			b.WriteString(cellSeparator)
		}
		lines = append(lines, b.String())
	}

	if len(lines) == 1 && blank {
		return nil, fmt.Errorf("%w: %q", ErrEmptySheet, s.Name)
	}
	return lines, nil
}
