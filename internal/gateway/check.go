package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/brainrot/internal/content"
)

// contractError is a semantic violation that the JSON schema cannot
// express. empty marks degenerate but well-formed responses.
type contractError struct {
	msg   string
	empty bool
}

func (e *contractError) Error() string { return e.msg }

func emptyResult(format string, args ...any) error {
	return &contractError{msg: fmt.Sprintf(format, args...), empty: true}
}

func violation(format string, args ...any) error {
	return &contractError{msg: fmt.Sprintf(format, args...)}
}

// checkFailureKind maps a check error to its failure class.
func checkFailureKind(err error) FailureKind {
	var ce *contractError
	if errors.As(err, &ce) && ce.empty {
		return FailureEmpty
	}
	return FailureMalformed
}

func checkDefinition(d *content.DefinitionResult) error {
	if strings.TrimSpace(d.Definition) == "" {
		return emptyResult("definition text is empty")
	}
	return nil
}

func checkQuiz(qs []content.QuizQuestion) error {
	if len(qs) == 0 {
		return emptyResult("quiz has no questions")
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Question) == "" {
			return violation("question %d: empty text", i+1)
		}
		if len(q.Options) < 2 {
			return violation("question %d: %d options, need at least 2", i+1, len(q.Options))
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			return violation("question %d: correctAnswerIndex %d out of range [0,%d)", i+1, q.CorrectAnswerIndex, len(q.Options))
		}
	}
	return nil
}

func checkAnalysis(a *content.AnalysisResult) error {
	if a.OverallScore < 0 || a.OverallScore > 100 {
		return violation("overallScore %v outside [0,100]", a.OverallScore)
	}
	if strings.TrimSpace(a.Analysis) == "" {
		return emptyResult("analysis text is empty")
	}
	return nil
}
