package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fstkit/fstkit/pkg/fst"
	"github.com/fstkit/fstkit/pkg/fst/transduce"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// traceStep is one rendered transition of a transduction trace.
type traceStep struct {
	src, dst string
	in, out  string
	inPos    int
	output   []string
}

// TraceModel is the bubbletea model for stepping through a transduction
// trace one transition at a time.
type TraceModel struct {
	graph  string
	input  []string
	steps  []traceStep
	output []string
	err    error
	Cursor int
	Height int
	Offset int
}

// newTraceModel resolves arc labels into displayable transitions.
func newTraceModel(f *fst.FST, input []string, steps []transduce.Step, output []string, err error) (TraceModel, error) {
	resolved := make([]traceStep, 0, len(steps))
	for _, step := range steps {
		a, infoErr := f.ArcInfo(step.Arc)
		if infoErr != nil {
			return TraceModel{}, infoErr
		}
		resolved = append(resolved, traceStep{
			src:    a.Src,
			dst:    a.Dst,
			in:     strings.Join(a.In, " "),
			out:    strings.Join(a.Out, " "),
			inPos:  step.InPos,
			output: step.Output,
		})
	}
	return TraceModel{
		graph:  f.Label(),
		input:  input,
		steps:  resolved,
		output: output,
		err:    err,
		Height: 15,
	}, nil
}

func (m TraceModel) Init() tea.Cmd {
	return nil
}

func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.steps)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor = 0
			m.Offset = 0
		case "end", "G":
			m.Cursor = len(m.steps) - 1
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TraceModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Trace: " + m.graph))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.steps) == 0 {
		b.WriteString(listDimStyle.Render("  no transitions"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.steps) {
		end = len(m.steps)
	}
	for i := m.Offset; i < end; i++ {
		s := m.steps[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s %s %-12s ( %s : %s )",
			cursor, s.src, iconArrow, s.dst, orSpace(s.in), orSpace(s.out))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	cur := m.steps[m.Cursor]
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  step %d/%d", m.Cursor+1, len(m.steps))))
	b.WriteString("\n")
	b.WriteString("  " + renderInput(m.input, cur.inPos))
	b.WriteString("\n")
	b.WriteString("  " + listDimStyle.Render("output so far: ") +
		StyleValue.Render(strings.Join(cur.output, " ")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString("  " + styleIconError.Render(iconError) + " " + m.err.Error())
	} else {
		b.WriteString("  " + styleIconSuccess.Render(iconSuccess) + " " +
			StyleSuccess.Render(strings.Join(m.output, " ")))
	}
	b.WriteString("\n")

	return b.String()
}

// renderInput shows the input string with the unconsumed tail highlighted.
func renderInput(input []string, pos int) string {
	if pos > len(input) {
		pos = len(input)
	}
	consumed := strings.Join(input[:pos], " ")
	rest := strings.Join(input[pos:], " ")
	return listDimStyle.Render("input: ") +
		listDimStyle.Render(consumed) + " " + StyleHighlight.Render(rest)
}

func orSpace(s string) string {
	if s == "" {
		return " "
	}
	return s
}
