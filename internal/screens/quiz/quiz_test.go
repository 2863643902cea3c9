package quiz

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/brainrot/internal/content"
	qz "github.com/abhisek/brainrot/internal/quiz"
)

type stubQuizzer struct {
	questions []content.QuizQuestion
	err       error
	feedback  string
	evaluated [][2]int
}

func (q *stubQuizzer) GenerateQuiz(context.Context) ([]content.QuizQuestion, error) {
	return q.questions, q.err
}

func (q *stubQuizzer) EvaluateScore(_ context.Context, score, total int) string {
	q.evaluated = append(q.evaluated, [2]int{score, total})
	return q.feedback
}

func fiveQuestions() []content.QuizQuestion {
	qs := make([]content.QuizQuestion, 5)
	for i := range qs {
		qs[i] = content.QuizQuestion{
			Question:           "Câu hỏi",
			Options:            []string{"Một", "Hai", "Ba"},
			CorrectAnswerIndex: i % 3,
		}
	}
	return qs
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// pending returns the gateway results produced by cmd, dropping spinner
// ticks.
func pending(cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case questionsMsg, feedbackMsg:
			out = append(out, msg)
		}
	}
	return out
}

func deliver(s *QuizScreen, msgs []tea.Msg) {
	for _, m := range msgs {
		s.Update(m)
	}
}

func startedScreen(t *testing.T, q *stubQuizzer) *QuizScreen {
	t.Helper()
	s := New(q)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	deliver(s, pending(cmd))
	require.Equal(t, qz.InProgress, s.session.Phase())
	return s
}

func TestQuizScreen_Title(t *testing.T) {
	assert.Equal(t, "Trắc Nghiệm", New(&stubQuizzer{}).Title())
}

func TestQuizScreen_StartShowsLoading(t *testing.T) {
	s := New(&stubQuizzer{questions: fiveQuestions()})
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)

	assert.True(t, s.session.Loading())
	assert.Contains(t, s.View(100, 40), "Đang chuẩn bị câu hỏi...")
	assert.Nil(t, s.KeyHints())

	deliver(s, pending(cmd))
	assert.Contains(t, s.View(100, 40), "Câu 1 / 5")
}

func TestQuizScreen_ThreeCorrectOfFive(t *testing.T) {
	q := &stubQuizzer{questions: fiveQuestions(), feedback: "Khá tốt!"}
	s := startedScreen(t, q)

	// Correct answers are 0,1,2,0,1. Pick A, B, A, A, A.
	var last tea.Cmd
	for _, r := range "abaaa" {
		_, last = s.Update(keyPress(r))
	}

	assert.Equal(t, qz.Finished, s.session.Phase())
	assert.Equal(t, 3, s.session.Score())
	assert.True(t, s.session.FeedbackPending())

	deliver(s, pending(last))
	assert.Equal(t, [][2]int{{3, 5}}, q.evaluated, "exactly one feedback request")

	view := s.View(100, 40)
	assert.Contains(t, view, "Điểm của bạn: 3 / 5")
	assert.Contains(t, view, "Khá tốt!")
}

func TestQuizScreen_ArrowAndEnterAnswer(t *testing.T) {
	s := startedScreen(t, &stubQuizzer{questions: fiveQuestions()})

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	assert.Equal(t, []int{1}, s.session.Answers())
	assert.Equal(t, 1, s.session.Index())
	assert.Equal(t, 0, s.choice.Selected, "cursor resets for the next question")
}

func TestQuizScreen_LoadFailure(t *testing.T) {
	s := New(&stubQuizzer{err: errors.New("unavailable")})
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	deliver(s, pending(cmd))

	assert.Equal(t, qz.NotStarted, s.session.Phase())
	view := s.View(100, 40)
	assert.Contains(t, view, qz.LoadErrorText)
	assert.Contains(t, view, "Thử lại")
}

func TestQuizScreen_EmptyBatch(t *testing.T) {
	s := New(&stubQuizzer{questions: []content.QuizQuestion{}})
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	deliver(s, pending(cmd))

	assert.Contains(t, s.View(100, 40), qz.LoadErrorText)
}

func TestQuizScreen_EmptyFeedback(t *testing.T) {
	s := startedScreen(t, &stubQuizzer{questions: fiveQuestions()[:1]})
	_, cmd := s.Update(keyPress('a'))
	deliver(s, pending(cmd))

	assert.Contains(t, s.View(100, 40), qz.NoFeedbackText)
}

func TestQuizScreen_RetryDiscardsLateFeedback(t *testing.T) {
	q := &stubQuizzer{questions: fiveQuestions()[:1], feedback: "Muộn"}
	s := startedScreen(t, q)
	_, cmd := s.Update(keyPress('a'))

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, qz.NotStarted, s.session.Phase())

	deliver(s, pending(cmd))
	assert.Empty(t, s.session.Feedback())
	assert.NotContains(t, s.View(100, 40), "Muộn")
}

func TestQuizScreen_KeysIgnoredWhileLoading(t *testing.T) {
	s := New(&stubQuizzer{questions: fiveQuestions()})
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(keyPress('a'))
	assert.Nil(t, cmd)
	assert.Empty(t, s.session.Answers())
}
