package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicByKey(t *testing.T) {
	topic, ok := TopicByKey("clickbait")
	require.True(t, ok)
	assert.Equal(t, "Tin tức giật gân (Clickbait)", topic.Name)

	_, ok = TopicByKey("nope")
	assert.False(t, ok)
}

func TestTopicKeysUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, topic := range Topics {
		assert.False(t, seen[topic.Key], "duplicate key %q", topic.Key)
		seen[topic.Key] = true
	}
	assert.Len(t, Topics, 5)
}

func TestIsContentType(t *testing.T) {
	assert.True(t, IsContentType("Khác"))
	assert.True(t, IsContentType("Video ngắn (TikTok, Reels, Shorts)"))
	assert.False(t, IsContentType("khác"))
	assert.False(t, IsContentType(""))
	assert.Len(t, ContentTypes, 7)
}

func TestQuizQuestion_IsCorrect(t *testing.T) {
	q := QuizQuestion{Question: "q", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 2}
	assert.True(t, q.IsCorrect(2))
	assert.False(t, q.IsCorrect(0))
}

func TestWireFieldNames(t *testing.T) {
	data, err := json.Marshal(ContentLog{ID: "x", Type: "Khác", Duration: 5, Date: "2024-05-01"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x","type":"Khác","duration":5,"date":"2024-05-01"}`, string(data))

	var a AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(`{"overallScore":42.5,"analysis":"ok","suggestions":["s"]}`), &a))
	assert.Equal(t, 42.5, a.OverallScore)
	assert.Equal(t, []string{"s"}, a.Suggestions)
}
