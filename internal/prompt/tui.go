package prompt

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUIPrompter runs a one-question bubbletea program per Ask
type TUIPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTUIPrompter(in io.Reader, out io.Writer) *TUIPrompter {
	return &TUIPrompter{in: in, out: out}
}

func (p *TUIPrompter) Ask(question string, choices []string) (string, error) {
	program := tea.NewProgram(newAskModel(question, choices),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m := final.(askModel)
	if m.interrupted {
		return "", ErrInterrupted
	}
	return m.answer, nil
}

type askModel struct {
	question string
	choices  []string

	input       []rune
	invalid     string
	answer      string
	done        bool
	interrupted bool

	// Styling
	questionStyle lipgloss.Style
	inputStyle    lipgloss.Style
	errorStyle    lipgloss.Style
	helpStyle     lipgloss.Style
}

func newAskModel(question string, choices []string) askModel {
	return askModel{
		question: strings.TrimRight(question, " \n"),
		choices:  choices,

		questionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		inputStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

func (m askModel) Init() tea.Cmd {
	return nil
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.interrupted = true
		return m, tea.Quit

	case tea.KeyEnter:
		answer, err := Match(string(m.input), m.choices)
		if err != nil {
			m.invalid = err.Error()
			m.input = nil
			return m, nil
		}
		m.answer = answer
		m.done = true
		return m, tea.Quit

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case tea.KeySpace:
		m.input = append(m.input, ' ')

	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m askModel) View() string {
	var b strings.Builder

	b.WriteString(m.questionStyle.Render(m.question))
	b.WriteString("\n")

	// Leave only the answer behind once the program exits
	if m.done {
		b.WriteString("> " + m.answer + "\n")
		return b.String()
	}
	if m.interrupted {
		return b.String()
	}

	b.WriteString("> " + m.inputStyle.Render(string(m.input)) + "_\n")
	if m.invalid != "" {
		b.WriteString(m.errorStyle.Render(m.invalid))
		b.WriteString("\n")
	}
	b.WriteString(m.helpStyle.Render(fmt.Sprintf("Choices: %s  •  ctrl+c to abort", strings.Join(m.choices, "/"))))
	b.WriteString("\n")
	return b.String()
}
