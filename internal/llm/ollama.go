package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider implements Provider against a local Ollama server via
// langchaingo. Ollama has no schema-constrained decoding, only a JSON
// mode, so the schema is described in the system prompt and enforced by
// validation afterwards.
type OllamaProvider struct {
	client *ollama.LLM
	model  string
}

// NewOllamaProvider creates a provider for the configured Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	return newOllamaProvider(cfg, http.DefaultClient)
}

func newOllamaProvider(cfg OllamaConfig, httpClient *http.Client) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	opts := []ollama.Option{
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.ServerURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create Ollama client: %w", err)
	}

	return &OllamaProvider{client: client, model: cfg.Model}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	system := req.System
	var callOpts []llms.CallOption

	// JSON mode reliably yields objects, so array schemas are wrapped.
	wrapped := isArraySchema(req.Schema)
	if req.Schema != nil {
		sent := req.Schema
		if wrapped {
			sent = objectRootSchema(req.Schema)
		}
		schemaBytes, err := json.Marshal(sent.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema: %w", err)
		}
		system = strings.TrimSpace(system + "\n\nRespond with JSON only, matching this JSON Schema:\n" + string(schemaBytes))
		callOpts = append(callOpts, llms.WithJSONMode())
	}
	if req.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(req.MaxTokens))
	}

	var messages []llms.MessageContent
	if system != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, m.Content))
	}

	result, err := p.client.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if len(result.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in Ollama response")}
	}

	choice := result.Choices[0]
	content := json.RawMessage(choice.Content)

	if req.Schema != nil {
		if wrapped {
			if content, err = unwrapItems(content); err != nil {
				return nil, err
			}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    content,
		Usage:      ollamaUsage(choice.GenerationInfo),
		Model:      p.model,
		StopReason: "end",
	}, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

// ollamaUsage reads the token counters langchaingo copies into
// GenerationInfo. Missing counters stay zero.
func ollamaUsage(info map[string]any) Usage {
	count := func(key string) int {
		switch v := info[key].(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
		return 0
	}
	u := Usage{
		InputTokens:  count("PromptTokens"),
		OutputTokens: count("CompletionTokens"),
		TotalTokens:  count("TotalTokens"),
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}
