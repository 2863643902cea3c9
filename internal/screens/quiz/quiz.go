// Package quiz is the recognition quiz screen.
package quiz

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainrot/internal/content"
	qz "github.com/abhisek/brainrot/internal/quiz"
	"github.com/abhisek/brainrot/internal/screen"
	"github.com/abhisek/brainrot/internal/ui/components"
	"github.com/abhisek/brainrot/internal/ui/layout"
	"github.com/abhisek/brainrot/internal/ui/theme"
)

// Quizzer produces question batches and score feedback.
type Quizzer interface {
	GenerateQuiz(ctx context.Context) ([]content.QuizQuestion, error)
	EvaluateScore(ctx context.Context, score, total int) string
}

// questionsMsg carries the outcome of a batch request.
type questionsMsg struct {
	seq       uint64
	questions []content.QuizQuestion
	err       error
}

// feedbackMsg carries the score feedback text.
type feedbackMsg struct {
	seq  uint64
	text string
}

// QuizScreen runs one quiz session at a time.
type QuizScreen struct {
	quizzer Quizzer
	session qz.Session
	choice  components.MultiChoice
	spinner spinner.Model
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen.
func New(quizzer Quizzer) *QuizScreen {
	return &QuizScreen{
		quizzer: quizzer,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Trắc Nghiệm"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case qz.NotStarted:
		return []layout.KeyHint{{Key: "Enter", Description: "Bắt đầu"}}
	case qz.InProgress:
		if s.session.Loading() {
			return nil
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Chọn"},
			{Key: "Enter/A-D", Description: "Trả lời"},
		}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Làm lại"}}
	}
}

// CapturesInput reports whether digits currently pick answers.
func (s *QuizScreen) CapturesInput() bool {
	return s.session.Phase() == qz.InProgress && !s.session.Loading()
}

func (s *QuizScreen) busy() bool {
	return s.session.Loading() || s.session.FeedbackPending()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if s.session.ApplyQuestions(msg.seq, msg.questions, msg.err) {
			s.loadCurrent()
		}
		return s, nil

	case feedbackMsg:
		s.session.ApplyFeedback(msg.seq, msg.text)
		return s, nil

	case spinner.TickMsg:
		if !s.busy() {
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

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Phase() {
	case qz.NotStarted:
		if msg.String() == "enter" {
			return s, s.start()
		}

	case qz.InProgress:
		if s.session.Loading() {
			return s, nil
		}
		var chosen int
		s.choice, chosen = s.choice.Update(msg)
		if chosen < 0 {
			return s, nil
		}
		accepted, finished := s.session.Answer(chosen)
		switch {
		case finished:
			return s, tea.Batch(s.evaluate(), s.spinner.Tick)
		case accepted:
			s.loadCurrent()
		}

	case qz.Finished:
		if msg.String() == "enter" || msg.String() == "r" {
			s.session.Reset()
		}
	}
	return s, nil
}

func (s *QuizScreen) loadCurrent() {
	if q := s.session.Current(); q != nil {
		s.choice = components.NewMultiChoice(q.Question, q.Options)
	}
}

func (s *QuizScreen) start() tea.Cmd {
	seq, ok := s.session.Start()
	if !ok {
		return nil
	}
	quizzer := s.quizzer
	fetch := func() tea.Msg {
		qs, err := quizzer.GenerateQuiz(context.Background())
		return questionsMsg{seq: seq, questions: qs, err: err}
	}
	return tea.Batch(fetch, s.spinner.Tick)
}

func (s *QuizScreen) evaluate() tea.Cmd {
	seq, score, total := s.session.Seq(), s.session.Score(), s.session.Total()
	quizzer := s.quizzer
	return func() tea.Msg {
		return feedbackMsg{seq: seq, text: quizzer.EvaluateScore(context.Background(), score, total)}
	}
}

func (s *QuizScreen) View(width, height int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Trắc Nghiệm Nhận Diện"))
	b.WriteString("\n\n")

	switch s.session.Phase() {
	case qz.NotStarted:
		if errText := s.session.ErrText(); errText != "" {
			b.WriteString(theme.ErrorText.Render(errText))
			b.WriteString("\n\n")
			b.WriteString(components.NewButton("Thử lại", "Enter", true).View())
			break
		}
		b.WriteString(theme.Body.Width(inner).Render(
			`Kiểm tra khả năng nhận diện các loại nội dung "thối não" của bạn qua một bài trắc nghiệm ngắn.`))
		b.WriteString("\n\n")
		b.WriteString(components.NewButton("Bắt đầu", "Enter", true).View())

	case qz.InProgress:
		if s.session.Loading() {
			b.WriteString(s.spinner.View() + " " + theme.Hint.Render("Đang chuẩn bị câu hỏi..."))
			break
		}
		total := s.session.Total()
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Câu %d / %d", s.session.Index()+1, total)))
		b.WriteString("\n")
		b.WriteString(components.NewProgressBar("", float64(s.session.Index())/float64(total), false, inner).View())
		b.WriteString("\n\n")
		b.WriteString(s.choice.View(inner))

	case qz.Finished:
		b.WriteString(theme.Heading.Render("Hoàn thành!"))
		b.WriteString("\n")
		b.WriteString(theme.Score.Render(fmt.Sprintf("Điểm của bạn: %d / %d", s.session.Score(), s.session.Total())))
		b.WriteString("\n\n")
		if s.session.FeedbackPending() {
			b.WriteString(s.spinner.View())
		} else {
			b.WriteString(theme.Card.Width(inner).Render(s.session.Feedback()))
		}
		b.WriteString("\n\n")
		b.WriteString(components.NewButton("Làm lại", "Enter", true).View())
	}
	return b.String()
}
