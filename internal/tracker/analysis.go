package tracker

import (
	"github.com/abhisek/brainrot/internal/content"
	"github.com/abhisek/brainrot/internal/gateway"
)

// Localized failure texts.
const (
	ErrConnectionText = "Đã xảy ra lỗi khi kết nối với AI. Vui lòng thử lại."
	ErrAnalysisText   = "Không thể phân tích dữ liệu. Vui lòng thử lại."
)

type analysisState struct {
	pending bool
	result  *content.AnalysisResult
	errText string
	seq     uint64
}

// CanAnalyze reports whether an analysis may be requested.
func (t *Tracker) CanAnalyze() bool {
	return len(t.entries) > 0 && !t.analysis.pending
}

// Analyzing reports whether an analysis request is outstanding.
func (t *Tracker) Analyzing() bool { return t.analysis.pending }

// Analysis returns the latest result, or nil.
func (t *Tracker) Analysis() *content.AnalysisResult { return t.analysis.result }

// AnalysisErr returns the localized failure text of the latest request.
func (t *Tracker) AnalysisErr() string { return t.analysis.errText }

// StartAnalysis clears any prior outcome and returns a snapshot of the log
// to send, tagged with seq.
func (t *Tracker) StartAnalysis() (seq uint64, logs []content.ContentLog, ok bool) {
	if !t.CanAnalyze() {
		return t.analysis.seq, nil, false
	}
	t.analysis.seq++
	t.analysis.pending = true
	t.analysis.result = nil
	t.analysis.errText = ""

	logs = make([]content.ContentLog, len(t.entries))
	copy(logs, t.entries)
	return t.analysis.seq, logs, true
}

// ResolveAnalysis applies the outcome of the request tagged seq.
func (t *Tracker) ResolveAnalysis(seq uint64, res *content.AnalysisResult, err error) bool {
	if seq != t.analysis.seq || !t.analysis.pending {
		return false
	}
	t.analysis.pending = false

	if err != nil || res == nil {
		t.analysis.errText = ErrAnalysisText
		if gateway.IsTransport(err) {
			t.analysis.errText = ErrConnectionText
		}
		return true
	}
	t.analysis.result = res
	return true
}
