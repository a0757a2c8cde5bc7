package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const maxLineSize = 16 * 1024 * 1024

// View prints the non-blank lines of path, right-trimmed, between a header
// naming the file and an end-of-file footer.
func View(path string, enc encoding.Encoding, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	frame := lipgloss.NewRenderer(out).NewStyle().Bold(true)
	title := strings.ToUpper(filepath.Base(path))

	fmt.Fprintf(out, "\n%s\n\n", frame.Render("-- "+title+" --"))

	scanner := bufio.NewScanner(transform.NewReader(file, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if line != "" {
			fmt.Fprintln(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	fmt.Fprintf(out, "\n%s\n", frame.Render("-- END OF FILE --"))
	return nil
}
