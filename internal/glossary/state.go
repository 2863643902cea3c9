// Package glossary holds the topic selection and disclosure state of the
// glossary view.
package glossary

import (
	"github.com/abhisek/brainrot/internal/content"
	"github.com/abhisek/brainrot/internal/gateway"
)

// Localized failure texts.
const (
	ErrConnectionText = "Đã xảy ra lỗi khi kết nối với AI. Vui lòng thử lại."
	ErrDefinitionText = "Không thể lấy định nghĩa. Vui lòng thử lại."
)

// Phase is the disclosure phase of the selected topic.
type Phase int

const (
	Closed  Phase = iota // No topic selected
	Pending              // Definition requested, not yet resolved
	Shown                // Definition displayed
	Failed               // Request failed, error text displayed
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Pending:
		return "pending"
	case Shown:
		return "shown"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the glossary state machine. The zero value is Closed.
//
// Every selection bumps the sequence number. A resolution carrying an
// older number belongs to a topic that was since collapsed or replaced
// and is dropped.
type State struct {
	phase   Phase
	key     string
	result  *content.DefinitionResult
	errText string
	seq     uint64
}

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Key returns the selected topic key, empty when Closed.
func (s *State) Key() string { return s.key }

// Result returns the definition, non-nil only when Shown.
func (s *State) Result() *content.DefinitionResult { return s.result }

// ErrText returns the localized failure text, non-empty only when Failed.
func (s *State) ErrText() string { return s.errText }

// Seq returns the latest issued sequence number.
func (s *State) Seq() uint64 { return s.seq }

// Select applies a click on topic key. Selecting the open topic collapses
// it; selecting any other topic opens it. When fetch is true the caller
// must request the definition and resolve it with seq.
func (s *State) Select(key string) (seq uint64, fetch bool) {
	s.seq++
	s.result = nil
	s.errText = ""

	if s.phase != Closed && s.key == key {
		s.phase = Closed
		s.key = ""
		return s.seq, false
	}

	s.phase = Pending
	s.key = key
	return s.seq, true
}

// Retry re-issues the request for a Failed topic.
func (s *State) Retry() (seq uint64, fetch bool) {
	if s.phase != Failed {
		return s.seq, false
	}
	s.seq++
	s.phase = Pending
	s.errText = ""
	return s.seq, true
}

// Resolve applies the outcome of the request tagged seq. It reports
// whether the outcome was applied.
func (s *State) Resolve(seq uint64, res *content.DefinitionResult, err error) bool {
	if seq != s.seq || s.phase != Pending {
		return false
	}

	if err != nil || res == nil {
		s.phase = Failed
		s.errText = FailureText(err)
		return true
	}

	s.phase = Shown
	s.result = res
	return true
}

// FailureText maps a gateway failure to its localized text.
func FailureText(err error) string {
	if gateway.IsTransport(err) {
		return ErrConnectionText
	}
	return ErrDefinitionText
}
