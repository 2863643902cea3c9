// Package tracker is the consumption log screen.
package tracker

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainrot/internal/content"
	"github.com/abhisek/brainrot/internal/screen"
	trk "github.com/abhisek/brainrot/internal/tracker"
	"github.com/abhisek/brainrot/internal/ui/components"
	"github.com/abhisek/brainrot/internal/ui/layout"
	"github.com/abhisek/brainrot/internal/ui/theme"
)

// Analyzer assesses a consumption log.
type Analyzer interface {
	AnalyzeLogs(ctx context.Context, logs []content.ContentLog) (*content.AnalysisResult, error)
}

// analysisMsg carries the outcome of an analysis request.
type analysisMsg struct {
	seq    uint64
	result *content.AnalysisResult
	err    error
}

// TrackerScreen logs consumption and requests analysis.
type TrackerScreen struct {
	analyzer Analyzer
	tracker  *trk.Tracker
	types    components.Menu
	input    components.TextInput
	spinner  spinner.Model
}

var _ screen.Screen = (*TrackerScreen)(nil)
var _ screen.KeyHintProvider = (*TrackerScreen)(nil)

// New creates a TrackerScreen over an empty log.
func New(analyzer Analyzer, opts ...trk.Option) *TrackerScreen {
	return &TrackerScreen{
		analyzer: analyzer,
		tracker:  trk.New(opts...),
		types:    components.NewMenu(content.ContentTypes),
		input:    components.NewTextInput("VD: 30", true, 4),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}
}

func (s *TrackerScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *TrackerScreen) Title() string {
	return "Theo Dõi"
}

func (s *TrackerScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Loại nội dung"},
		{Key: "0-9", Description: "Phút"},
		{Key: "Enter", Description: "Thêm"},
	}
	if s.tracker.CanAnalyze() {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Phân tích"})
	}
	return hints
}

func (s *TrackerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisMsg:
		s.tracker.ResolveAnalysis(msg.seq, msg.result, msg.err)
		return s, nil

	case spinner.TickMsg:
		if !s.tracker.Analyzing() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if _, err := s.tracker.Add(s.types.Current(), s.input.Value()); err == nil {
				s.input.Reset()
			}
			return s, nil
		case "p":
			return s, s.analyze()
		case "up", "down":
			s.types, _ = s.types.Update(msg)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TrackerScreen) analyze() tea.Cmd {
	seq, logs, ok := s.tracker.StartAnalysis()
	if !ok {
		return nil
	}
	analyzer := s.analyzer
	fetch := func() tea.Msg {
		res, err := analyzer.AnalyzeLogs(context.Background(), logs)
		return analysisMsg{seq: seq, result: res, err: err}
	}
	return tea.Batch(fetch, s.spinner.Tick)
}

func (s *TrackerScreen) View(width, height int) string {
	leftWidth := width / 3
	if leftWidth < 36 {
		leftWidth = 36
	}
	rightWidth := width - leftWidth - 6
	if rightWidth < 30 {
		return lipgloss.JoinVertical(lipgloss.Left, s.renderForm(width-4), "", s.renderAnalysis(width-4))
	}

	left := lipgloss.NewStyle().Width(leftWidth).Render(s.renderForm(leftWidth))
	right := lipgloss.NewStyle().Width(rightWidth).Render(s.renderAnalysis(rightWidth))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (s *TrackerScreen) renderForm(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Ghi Nhật Ký"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Loại nội dung"))
	b.WriteString("\n")
	b.WriteString(s.types.View())
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Thời lượng (phút)"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("Thêm", "Enter", true).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Nhật ký hôm nay"))
	b.WriteString("\n")
	entries := s.tracker.Entries()
	if len(entries) == 0 {
		b.WriteString(theme.Hint.Render("Chưa có mục nào."))
		return b.String()
	}
	for _, e := range entries {
		minutes := fmt.Sprintf("%d phút", e.Duration)
		label := truncate(e.Type, width-lipgloss.Width(minutes)-2)
		gap := width - lipgloss.Width(label) - lipgloss.Width(minutes)
		if gap < 1 {
			gap = 1
		}
		b.WriteString(theme.Body.Render(label) + strings.Repeat(" ", gap) + theme.Heading.Render(minutes))
		b.WriteString("\n")
	}
	b.WriteString(theme.Score.Render(fmt.Sprintf("Tổng: %d phút", trk.TotalMinutes(entries))))
	return b.String()
}

func (s *TrackerScreen) renderAnalysis(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Phân Tích & Biểu Đồ"))
	b.WriteString("\n\n")

	entries := s.tracker.Entries()
	if len(entries) == 0 {
		b.WriteString(theme.Hint.Render("Thêm nhật ký để xem biểu đồ."))
		b.WriteString("\n")
	} else {
		for i, share := range trk.Breakdown(entries) {
			swatch := lipgloss.NewStyle().Foreground(theme.ChartColor(i)).Render("■")
			b.WriteString(swatch + " " + theme.Body.Render(truncate(share.Type, width-16)) +
				theme.Subtitle.Render(fmt.Sprintf("  %d phút", share.Minutes)))
			b.WriteString("\n")
			bar := components.NewProgressBar("", share.Percent/100, true, width)
			bar.Color = theme.ChartColor(i)
			b.WriteString(bar.View())
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	switch {
	case s.tracker.Analyzing():
		b.WriteString(components.NewButton("Đang phân tích...", "", false).View())
		b.WriteString("\n\n")
		b.WriteString(s.spinner.View())
	default:
		b.WriteString(components.NewButton("Phân Tích với AI", "P", s.tracker.CanAnalyze()).View())
	}
	b.WriteString("\n")

	if errText := s.tracker.AnalysisErr(); errText != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Width(width).Render(errText))
		b.WriteString("\n")
	}

	if res := s.tracker.Analysis(); res != nil {
		b.WriteString("\n")
		b.WriteString(theme.Heading.Render(`Mức Độ Tiềm Năng "Thối Não"`))
		b.WriteString("\n")
		b.WriteString(theme.Score.Render(strconv.FormatFloat(res.OverallScore, 'f', -1, 64) + "/100"))
		b.WriteString("\n\n")
		b.WriteString(theme.Heading.Render("Nhận định của AI:"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(width).Render(res.Analysis))
		b.WriteString("\n\n")
		b.WriteString(theme.Heading.Render("Gợi ý cho bạn:"))
		for _, sug := range res.Suggestions {
			b.WriteString("\n")
			b.WriteString(theme.Body.Width(width).Render("• " + sug))
		}
	}
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// CapturesInput reports true: digits always go to the duration field.
func (s *TrackerScreen) CapturesInput() bool {
	return true
}
