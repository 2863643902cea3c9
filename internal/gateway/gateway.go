// Package gateway is the single boundary between the views and the
// generative model. Every call is one attempt; every failure comes back
// as a *Failure with a nil result.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/brainrot/internal/content"
	"github.com/abhisek/brainrot/internal/llm"
)

// Config tunes generation.
type Config struct {
	// QuizSize is how many questions a quiz batch asks for.
	QuizSize int

	// MaxTokens caps each response. Zero leaves it to the provider.
	MaxTokens int

	// Temperature is passed through to the provider.
	Temperature float64
}

// DefaultConfig returns the settings the views are built around.
func DefaultConfig() Config {
	return Config{
		QuizSize:    content.QuizSize,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Gateway builds prompts, calls the provider and validates responses.
type Gateway struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// New creates a Gateway. A nil logger discards output.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.QuizSize <= 0 {
		cfg.QuizSize = content.QuizSize
	}
	return &Gateway{provider: provider, cfg: cfg, log: log.Named("gateway")}
}

// DefineTopic asks for a definition and examples of one topic.
func (g *Gateway) DefineTopic(ctx context.Context, topicName string) (*content.DefinitionResult, error) {
	var out content.DefinitionResult
	err := g.structured(ctx, KindDefineTopic, buildDefinitionPrompt(topicName), DefinitionSchema, &out,
		func() error { return checkDefinition(&out) })
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateQuiz asks for a batch of recognition questions.
func (g *Gateway) GenerateQuiz(ctx context.Context) ([]content.QuizQuestion, error) {
	var out []content.QuizQuestion
	err := g.structured(ctx, KindGenerateQuiz, buildQuizPrompt(g.cfg.QuizSize), QuizSchema, &out,
		func() error { return checkQuiz(out) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyzeLogs asks for an assessment of the whole consumption log.
func (g *Gateway) AnalyzeLogs(ctx context.Context, logs []content.ContentLog) (*content.AnalysisResult, error) {
	logsJSON, err := json.Marshal(logs)
	if err != nil {
		return nil, g.fail(KindAnalyzeLogs, FailureMalformed, fmt.Errorf("encode logs: %w", err))
	}

	var out content.AnalysisResult
	err = g.structured(ctx, KindAnalyzeLogs, buildAnalysisPrompt(string(logsJSON)), AnalysisSchema, &out,
		func() error { return checkAnalysis(&out) })
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EvaluateScore asks for short free-text feedback on a quiz result. It
// never fails: on any error it returns FeedbackFallback.
func (g *Gateway) EvaluateScore(ctx context.Context, score, total int) string {
	ctx = llm.WithPurpose(ctx, string(KindEvaluateScore))

	resp, err := g.provider.Generate(ctx, g.request(buildFeedbackPrompt(score, total), nil))
	if err != nil {
		g.fail(KindEvaluateScore, classify(err), err)
		return FeedbackFallback
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.fail(KindEvaluateScore, FailureEmpty, fmt.Errorf("empty feedback"))
		return FeedbackFallback
	}
	return text
}

// structured runs one schema-constrained request, decodes it into out
// and applies check.
func (g *Gateway) structured(ctx context.Context, kind Kind, prompt string, schema *llm.Schema, out any, check func() error) error {
	ctx = llm.WithPurpose(ctx, string(kind))

	resp, err := g.provider.Generate(ctx, g.request(prompt, schema))
	if err != nil {
		return g.fail(kind, classify(err), err)
	}

	if err := json.Unmarshal(resp.Content, out); err != nil {
		return g.fail(kind, FailureMalformed, fmt.Errorf("decode response: %w", err))
	}

	if err := check(); err != nil {
		return g.fail(kind, checkFailureKind(err), err)
	}
	return nil
}

func (g *Gateway) request(prompt string, schema *llm.Schema) llm.Request {
	return llm.Request{
		Messages:    llm.UserPrompt(prompt),
		Schema:      schema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}
}

// fail logs the failure once and wraps it.
func (g *Gateway) fail(kind Kind, fk FailureKind, err error) *Failure {
	g.log.Warn("request failed",
		zap.String("request", string(kind)),
		zap.String("failure", string(fk)),
		zap.Error(err),
	)
	return &Failure{Kind: fk, Request: kind, Err: err}
}
