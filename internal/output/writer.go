package output

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// WriteLines writes each line followed by a newline to path. The file is
// always opened for appending; ModeOverwrite truncates it first and
// ModeAppend writes a blank separator line before the new content.
// Runes the encoding cannot represent are replaced.
func WriteLines(path string, lines []string, mode Mode, enc encoding.Encoding) (err error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if mode == ModeOverwrite {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("failed to open target file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close target file: %w", cerr)
		}
	}()

	encoded := transform.NewWriter(file, encoding.ReplaceUnsupported(enc.NewEncoder()))
	writer := bufio.NewWriter(encoded)

	if mode == ModeAppend {
		if _, err := writer.WriteString("\n"); err != nil {
			return fmt.Errorf("failed to write separator: %w", err)
		}
	}
	for i, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write target file: %w", err)
	}
	if err := encoded.Close(); err != nil {
		return fmt.Errorf("failed to write target file: %w", err)
	}
	return nil
}
