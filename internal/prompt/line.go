package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// LinePrompter reads one answer per line. It is used for piped input.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *LinePrompter) Ask(question string, choices []string) (string, error) {
	for {
		fmt.Fprint(p.out, question)

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		if err != nil && line == "" {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}

		answer, matchErr := Match(line, choices)
		if matchErr == nil {
			return answer, nil
		}
		fmt.Fprintln(p.out, matchErr)

		if err != nil {
			return "", ErrInputClosed
		}
	}
}
