package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryEventRepo is an in-process EventRepo. It is the default sink for
// a session's LLM request log and is safe for concurrent use, since
// gateway calls run on their own goroutines.
type MemoryEventRepo struct {
	mu     sync.Mutex
	events []LLMEvent
	now    func() time.Time
}

// NewMemoryEventRepo creates an empty in-memory log.
func NewMemoryEventRepo() *MemoryEventRepo {
	return &MemoryEventRepo{now: time.Now}
}

func (m *MemoryEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, LLMEvent{
		ID:                  len(m.events) + 1,
		Timestamp:           m.now().UTC(),
		LLMRequestEventData: data,
	})
	return nil
}

func (m *MemoryEventRepo) QueryLLMEvents(_ context.Context, opts QueryOpts) ([]LLMEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []LLMEvent
	for i := len(m.events) - 1; i >= 0; i-- {
		e := m.events[i]
		if opts.Purpose != "" && e.Purpose != opts.Purpose {
			continue
		}
		if !opts.From.IsZero() && e.Timestamp.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && e.Timestamp.After(opts.To) {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryEventRepo) GetLLMEvent(_ context.Context, id int) (*LLMEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || id > len(m.events) {
		return nil, nil
	}
	e := m.events[id-1]
	return &e, nil
}

func (m *MemoryEventRepo) LLMUsageByPurpose(_ context.Context) ([]PurposeUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byPurpose := map[string]*PurposeUsage{}
	latency := map[string]int64{}
	for _, e := range m.events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &PurposeUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
		}
		u.Calls++
		if !e.Success {
			u.Failures++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[e.Purpose] += e.LatencyMs
	}

	out := make([]PurposeUsage, 0, len(byPurpose))
	for p, u := range byPurpose {
		u.AvgLatencyMs = latency[p] / int64(u.Calls)
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (m *MemoryEventRepo) LLMUsageByModel(_ context.Context) ([]ModelUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byModel := map[string]*ModelUsage{}
	for _, e := range m.events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &ModelUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]ModelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

// Tee fans each appended event out to every writer. All writers are
// attempted; the first error is returned.
func Tee(writers ...EventWriter) EventWriter {
	return teeWriter(writers)
}

type teeWriter []EventWriter

func (t teeWriter) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	var first error
	for _, w := range t {
		if err := w.AppendLLMRequest(ctx, data); err != nil && first == nil {
			first = err
		}
	}
	return first
}
