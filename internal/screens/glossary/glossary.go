// Package glossary is the topic definition screen.
package glossary

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainrot/internal/content"
	gloss "github.com/abhisek/brainrot/internal/glossary"
	"github.com/abhisek/brainrot/internal/screen"
	"github.com/abhisek/brainrot/internal/ui/components"
	"github.com/abhisek/brainrot/internal/ui/layout"
	"github.com/abhisek/brainrot/internal/ui/theme"
)

// Definer produces topic definitions.
type Definer interface {
	DefineTopic(ctx context.Context, topicName string) (*content.DefinitionResult, error)
}

// definitionMsg carries the outcome of a definition request.
type definitionMsg struct {
	seq    uint64
	result *content.DefinitionResult
	err    error
}

// GlossaryScreen lists the topics and discloses one definition at a time.
type GlossaryScreen struct {
	definer Definer
	state   gloss.State
	menu    components.Menu
	spinner spinner.Model
}

var _ screen.Screen = (*GlossaryScreen)(nil)
var _ screen.KeyHintProvider = (*GlossaryScreen)(nil)

// New creates a GlossaryScreen.
func New(definer Definer) *GlossaryScreen {
	names := make([]string, len(content.Topics))
	for i, t := range content.Topics {
		names[i] = t.Name
	}
	return &GlossaryScreen{
		definer: definer,
		menu:    components.NewMenu(names),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (s *GlossaryScreen) Init() tea.Cmd {
	return nil
}

func (s *GlossaryScreen) Title() string {
	return "Định Nghĩa"
}

func (s *GlossaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Chọn chủ đề"},
		{Key: "Enter", Description: "Xem/Đóng"},
	}
	if s.state.Phase() == gloss.Failed {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Thử lại"})
	}
	return hints
}

func (s *GlossaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case definitionMsg:
		s.state.Resolve(msg.seq, msg.result, msg.err)
		return s, nil

	case spinner.TickMsg:
		if s.state.Phase() != gloss.Pending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GlossaryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "space", " ":
		topic := content.Topics[s.menu.Selected]
		seq, fetch := s.state.Select(topic.Key)
		if !fetch {
			return s, nil
		}
		return s, tea.Batch(s.fetch(seq, topic.Name), s.spinner.Tick)

	case "r":
		seq, fetch := s.state.Retry()
		if !fetch {
			return s, nil
		}
		topic, _ := content.TopicByKey(s.state.Key())
		return s, tea.Batch(s.fetch(seq, topic.Name), s.spinner.Tick)
	}

	s.menu, _ = s.menu.Update(msg)
	return s, nil
}

func (s *GlossaryScreen) fetch(seq uint64, topicName string) tea.Cmd {
	definer := s.definer
	return func() tea.Msg {
		res, err := definer.DefineTopic(context.Background(), topicName)
		return definitionMsg{seq: seq, result: res, err: err}
	}
}

func (s *GlossaryScreen) View(width, height int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(`Hiểu Về Nội Dung "Thối Não"`))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(inner).Render(
		"Chọn một chủ đề bên dưới để xem định nghĩa chi tiết, ví dụ minh họa và tìm hiểu tại sao chúng có thể ảnh hưởng tiêu cực đến tư duy của bạn."))
	b.WriteString("\n\n")

	for i, topic := range content.Topics {
		open := s.state.Phase() != gloss.Closed && s.state.Key() == topic.Key

		marker := "▸"
		if open {
			marker = "▾"
		}
		line := marker + " " + topic.Name
		if i == s.menu.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")

		if open {
			b.WriteString(theme.Card.Width(inner).Render(s.renderDisclosure(inner - 6)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *GlossaryScreen) renderDisclosure(width int) string {
	switch s.state.Phase() {
	case gloss.Pending:
		return s.spinner.View() + " " + theme.Hint.Render("Đang tải định nghĩa...")

	case gloss.Failed:
		return theme.ErrorText.Width(width).Render(s.state.ErrText())

	case gloss.Shown:
		res := s.state.Result()
		var b strings.Builder
		b.WriteString(theme.Heading.Render("Định nghĩa"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(width).Render(res.Definition))
		b.WriteString("\n\n")
		b.WriteString(theme.Heading.Render("Ví dụ"))
		for _, ex := range res.Examples {
			b.WriteString("\n")
			b.WriteString(theme.Body.Width(width).Render("• " + ex))
		}
		return b.String()
	}
	return ""
}
