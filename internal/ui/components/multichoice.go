package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainrot/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice is a multiple-choice selector. It does not reveal the
// correct option; choosing immediately reports the index.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
	}
}

// Update handles navigation. chosen is the picked option index, or -1
// when nothing was picked. Letters and digits pick directly.
func (m MultiChoice) Update(msg tea.Msg) (mc MultiChoice, chosen int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, -1
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, -1
	case "enter":
		return m, m.Selected
	}

	if i := directIndex(key); i >= 0 && i < len(m.Options) {
		m.Selected = i
		return m, i
	}
	return m, -1
}

// directIndex maps 1-9 and a-f (either case) to an option index.
func directIndex(key string) int {
	key = strings.ToLower(strings.TrimPrefix(key, "shift+"))
	if len(key) != 1 {
		return -1
	}
	c := key[0]
	switch {
	case c >= '1' && c <= '9':
		return int(c - '1')
	case c >= 'a' && c <= 'f':
		return int(c - 'a')
	}
	return -1
}

// View renders the question and its options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		style := theme.Unselected
		if i == m.Selected {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Width(width).Render(fmt.Sprintf("%s%s)  %s", prefix, label, opt)))
		b.WriteString("\n")
	}
	return b.String()
}
