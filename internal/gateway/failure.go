package gateway

import (
	"errors"
	"fmt"

	"github.com/abhisek/brainrot/internal/llm"
)

// Kind names a request kind. It doubles as the LLM purpose label.
type Kind string

const (
	KindDefineTopic   Kind = "define-topic"
	KindGenerateQuiz  Kind = "generate-quiz"
	KindEvaluateScore Kind = "evaluate-score"
	KindAnalyzeLogs   Kind = "analyze-logs"
)

// FailureKind classifies why a request produced no result.
type FailureKind string

const (
	// FailureTransport means the provider call itself failed.
	FailureTransport FailureKind = "transport"

	// FailureMalformed means the response was not valid JSON or broke the
	// declared contract.
	FailureMalformed FailureKind = "malformed"

	// FailureEmpty means the call succeeded but produced nothing usable.
	FailureEmpty FailureKind = "empty"
)

// Failure is the single error type every gateway call returns.
type Failure struct {
	Kind    FailureKind
	Request Kind
	Err     error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", f.Request, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// IsTransport reports whether err is a transport-class Failure.
func IsTransport(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == FailureTransport
}

// classify maps a provider error to a failure class.
func classify(err error) FailureKind {
	var invalid *llm.ErrInvalidResponse
	var truncated *llm.ErrMaxTokensExceeded
	switch {
	case errors.As(err, &invalid), errors.As(err, &truncated):
		return FailureMalformed
	default:
		return FailureTransport
	}
}
