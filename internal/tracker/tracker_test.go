package tracker

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/brainrot/internal/content"
	"github.com/abhisek/brainrot/internal/gateway"
)

var (
	shortVideo = content.ContentTypes[0]
	drama      = content.ContentTypes[3]
)

func fixedClock() func() time.Time {
	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	return func() time.Time { return ts }
}

func TestAdd(t *testing.T) {
	tr := New(WithClock(fixedClock()))

	entry, err := tr.Add(shortVideo, " 30 ")
	require.NoError(t, err)
	assert.Equal(t, shortVideo, entry.Type)
	assert.Equal(t, 30, entry.Duration)
	assert.Equal(t, "2024-05-01", entry.Date)
	assert.Len(t, entry.ID, 26)
	assert.Equal(t, 1, tr.Len())
}

func TestAddIDsAreUniqueAndOrdered(t *testing.T) {
	tr := New(WithClock(fixedClock()))
	var prev string
	for i := 0; i < 20; i++ {
		e, err := tr.Add(drama, "1")
		require.NoError(t, err)
		assert.Greater(t, e.ID, prev)
		prev = e.ID
	}
}

func TestAddRejects(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		input string
		want  error
	}{
		{"zero", shortVideo, "0", ErrInvalidDuration},
		{"negative", shortVideo, "-5", ErrInvalidDuration},
		{"empty", shortVideo, "", ErrInvalidDuration},
		{"blank", shortVideo, "   ", ErrInvalidDuration},
		{"words", shortVideo, "ba mươi", ErrInvalidDuration},
		{"partial number", shortVideo, "30abc", ErrInvalidDuration},
		{"decimal", shortVideo, "1.5", ErrInvalidDuration},
		{"longer than a day", shortVideo, "1441", ErrInvalidDuration},
		{"max int", shortVideo, "9223372036854775807", ErrInvalidDuration},
		{"beyond int range", shortVideo, "99999999999999999999", ErrInvalidDuration},
		{"unknown type", "Podcast", "30", ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			_, err := tr.Add(tt.typ, tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Zero(t, tr.Len())
		})
	}
}

func TestAddGrowsAggregate(t *testing.T) {
	tr := New()
	for _, d := range []int{1, 7, 120, MaxDuration} {
		before := Aggregate(tr.Entries())[drama]
		n := tr.Len()

		_, err := tr.Add(drama, strconv.Itoa(d))
		require.NoError(t, err)
		assert.Equal(t, n+1, tr.Len())
		assert.Equal(t, before+d, Aggregate(tr.Entries())[drama])
	}
}

func TestAggregateScenario(t *testing.T) {
	tr := New()
	tr.Add(shortVideo, "30")
	tr.Add(drama, "15")
	tr.Add(shortVideo, "10")

	assert.Equal(t, map[string]int{shortVideo: 40, drama: 15}, Aggregate(tr.Entries()))
	assert.Equal(t, 55, TotalMinutes(tr.Entries()))
}

func TestAggregateOrderIndependent(t *testing.T) {
	logs := []content.ContentLog{
		{Type: shortVideo, Duration: 30},
		{Type: drama, Duration: 15},
		{Type: content.ContentTypes[6], Duration: 5},
		{Type: shortVideo, Duration: 10},
		{Type: drama, Duration: 2},
	}
	want := Aggregate(logs)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]content.ContentLog(nil), logs...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestBreakdown(t *testing.T) {
	logs := []content.ContentLog{
		{Type: drama, Duration: 15},
		{Type: shortVideo, Duration: 30},
		{Type: drama, Duration: 5},
	}

	got := Breakdown(logs)
	require.Len(t, got, 2)
	assert.Equal(t, drama, got[0].Type, "first appearance order")
	assert.Equal(t, 20, got[0].Minutes)
	assert.InDelta(t, 40.0, got[0].Percent, 1e-9)
	assert.Equal(t, shortVideo, got[1].Type)
	assert.InDelta(t, 60.0, got[1].Percent, 1e-9)

	assert.Empty(t, Breakdown(nil))
}

func TestAnalysisLifecycle(t *testing.T) {
	tr := New()
	assert.False(t, tr.CanAnalyze(), "empty log")
	_, _, ok := tr.StartAnalysis()
	assert.False(t, ok)

	tr.Add(shortVideo, "30")
	require.True(t, tr.CanAnalyze())

	seq, logs, ok := tr.StartAnalysis()
	require.True(t, ok)
	assert.Len(t, logs, 1)
	assert.True(t, tr.Analyzing())
	assert.False(t, tr.CanAnalyze(), "outstanding request")

	res := &content.AnalysisResult{OverallScore: 55, Analysis: "Khá nhiều video ngắn."}
	require.True(t, tr.ResolveAnalysis(seq, res, nil))
	assert.Same(t, res, tr.Analysis())
	assert.Empty(t, tr.AnalysisErr())
	assert.True(t, tr.CanAnalyze())

	seq, _, _ = tr.StartAnalysis()
	assert.Nil(t, tr.Analysis(), "prior result cleared")
	require.True(t, tr.ResolveAnalysis(seq, nil, &gateway.Failure{Kind: gateway.FailureMalformed}))
	assert.Equal(t, ErrAnalysisText, tr.AnalysisErr())
	assert.Nil(t, tr.Analysis())

	seq, _, _ = tr.StartAnalysis()
	assert.Empty(t, tr.AnalysisErr(), "prior error cleared")
	require.True(t, tr.ResolveAnalysis(seq, nil, &gateway.Failure{Kind: gateway.FailureTransport}))
	assert.Equal(t, ErrConnectionText, tr.AnalysisErr())
}

func TestAnalysisSnapshotIsolated(t *testing.T) {
	tr := New()
	tr.Add(shortVideo, "30")
	_, logs, _ := tr.StartAnalysis()

	tr.Add(drama, "10")
	assert.Len(t, logs, 1)
	assert.Equal(t, 2, tr.Len())
}

func TestStaleAnalysisDiscarded(t *testing.T) {
	tr := New()
	tr.Add(shortVideo, "30")
	seq, _, _ := tr.StartAnalysis()

	assert.False(t, tr.ResolveAnalysis(seq+1, &content.AnalysisResult{}, nil))
	assert.True(t, tr.Analyzing())
	require.True(t, tr.ResolveAnalysis(seq, &content.AnalysisResult{OverallScore: 10, Analysis: "ok"}, nil))
	assert.False(t, tr.ResolveAnalysis(seq, nil, errors.New("late")))
	assert.NotNil(t, tr.Analysis())
}
