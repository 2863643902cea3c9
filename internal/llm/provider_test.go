package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockJSON(`{"b":2}`),
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: UserPrompt("first")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: UserPrompt("second")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(`{"name":"only"}`))
	_, err := mock.Generate(context.Background(), Request{Schema: testSchema()})
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockJSON(`{}`))

	_, _ = mock.Generate(context.Background(), Request{
		System:   "sys",
		Messages: UserPrompt("hello"),
	})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok || last.System != "sys" {
		t.Fatalf("expected system 'sys', got %q", last.System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockError(&ErrRateLimit{}))

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "define-topic")
	if p := PurposeFrom(ctx); p != "define-topic" {
		t.Fatalf("expected 'define-topic', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"ollama needs a model", Config{Provider: ProviderOllama}, true},
		{"ollama with model", Config{Provider: ProviderOllama, Ollama: OllamaConfig{Model: "qwen3:4b"}}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderGemini {
		t.Fatalf("expected gemini default, got %q", cfg.Provider)
	}
	if got := resolveModel(cfg.Gemini.Model, geminiModels); got != "gemini-2.5-flash" {
		t.Fatalf("expected gemini-2.5-flash, got %q", got)
	}
	if cfg.HasCredential() {
		t.Fatal("default config has no key")
	}
}

func TestSelectProvider(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		found    bool
		provider string
	}{
		{"nothing set", map[string]string{}, false, ""},
		{"API_KEY is gemini", map[string]string{"API_KEY": "a", "OPENAI_API_KEY": "o"}, true, ProviderGemini},
		{"gemini before openai", map[string]string{"GEMINI_API_KEY": "g", "OPENAI_API_KEY": "o"}, true, ProviderGemini},
		{"openai before anthropic", map[string]string{"OPENAI_API_KEY": "o", "ANTHROPIC_API_KEY": "a"}, true, ProviderOpenAI},
		{"anthropic", map[string]string{"ANTHROPIC_API_KEY": "a"}, true, ProviderAnthropic},
		{"openrouter last", map[string]string{"OPENROUTER_API_KEY": "r"}, true, ProviderOpenRouter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Provider = ""
			cfg.FillKeys(func(k string) string { return tt.env[k] })
			ok := cfg.SelectProvider()
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && cfg.Provider != tt.provider {
				t.Fatalf("provider = %q, want %q", cfg.Provider, tt.provider)
			}
			if ok && !cfg.HasCredential() {
				t.Fatal("selected config should validate")
			}
		})
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock model, got %q", p.ModelID())
	}
	if _, ok := p.(*LoggingProvider); !ok {
		t.Fatalf("expected logging decorator, got %T", p)
	}
}

func TestNewProvider_RejectsMissingKey(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-2.8) > 1e-9 {
		t.Fatalf("expected $2.80, got %v", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
