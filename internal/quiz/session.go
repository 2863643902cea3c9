// Package quiz holds the recognition quiz session state.
package quiz

import (
	"github.com/google/uuid"

	"github.com/abhisek/brainrot/internal/content"
)

// Localized texts.
const (
	LoadErrorText  = "Không thể tải câu hỏi. Vui lòng thử lại."
	NoFeedbackText = "Không thể nhận phản hồi."
)

// Phase is the session phase.
type Phase int

// Session phases.
const (
	NotStarted Phase = iota
	InProgress
	Finished
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session is one run through a question batch. The zero value is
// NotStarted.
//
// Start and Reset bump the sequence number; question batches and feedback
// are applied only when they carry the current one.
type Session struct {
	// ID identifies the run, regenerated on every Start.
	ID string

	phase     Phase
	loading   bool
	questions []content.QuizQuestion
	answers   []int
	score     int
	current   int
	errText   string

	feedback        string
	feedbackPending bool

	seq uint64
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Loading reports whether a question batch is being fetched.
func (s *Session) Loading() bool { return s.loading }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the batch size, zero before a batch arrives.
func (s *Session) Total() int { return len(s.questions) }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.current }

// Answers returns the chosen option per answered question, in order.
func (s *Session) Answers() []int { return s.answers }

// ErrText returns the localized load error, if the last Start failed.
func (s *Session) ErrText() string { return s.errText }

// Feedback returns the score feedback once it has arrived.
func (s *Session) Feedback() string { return s.feedback }

// FeedbackPending reports whether the feedback request is outstanding.
func (s *Session) FeedbackPending() bool { return s.feedbackPending }

// Seq returns the current sequence number.
func (s *Session) Seq() uint64 { return s.seq }

// Current returns the question being asked, or nil outside InProgress.
func (s *Session) Current() *content.QuizQuestion {
	if s.phase != InProgress || s.loading || s.current >= len(s.questions) {
		return nil
	}
	return &s.questions[s.current]
}

// Start begins a run. When ok is true the caller must fetch a batch and
// apply it with seq.
func (s *Session) Start() (seq uint64, ok bool) {
	if s.phase != NotStarted || s.loading {
		return s.seq, false
	}
	s.seq++
	s.ID = uuid.NewString()
	s.phase = InProgress
	s.loading = true
	s.errText = ""
	return s.seq, true
}

// ApplyQuestions resolves the batch fetch tagged seq. A failure or empty
// batch returns the session to NotStarted with LoadErrorText.
func (s *Session) ApplyQuestions(seq uint64, qs []content.QuizQuestion, err error) bool {
	if seq != s.seq || !s.loading {
		return false
	}
	s.loading = false

	if err != nil || len(qs) == 0 {
		s.phase = NotStarted
		s.errText = LoadErrorText
		return true
	}

	s.questions = qs
	s.answers = nil
	s.score = 0
	s.current = 0
	return true
}

// Answer records choice for the current question. It reports whether the
// answer was accepted and whether it finished the run. A finished run
// needs exactly one feedback fetch, tagged with Seq.
func (s *Session) Answer(choice int) (accepted, finished bool) {
	q := s.Current()
	if q == nil || choice < 0 || choice >= len(q.Options) {
		return false, false
	}

	if q.IsCorrect(choice) {
		s.score++
	}
	s.answers = append(s.answers, choice)

	if s.current+1 < len(s.questions) {
		s.current++
		return true, false
	}

	s.phase = Finished
	s.feedbackPending = true
	return true, true
}

// ApplyFeedback resolves the feedback fetch tagged seq.
func (s *Session) ApplyFeedback(seq uint64, text string) bool {
	if seq != s.seq || s.phase != Finished || !s.feedbackPending {
		return false
	}
	s.feedbackPending = false
	if text == "" {
		text = NoFeedbackText
	}
	s.feedback = text
	return true
}

// Reset discards the run and returns to NotStarted.
func (s *Session) Reset() {
	*s = Session{seq: s.seq + 1}
}
