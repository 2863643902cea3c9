package llm

import (
	"fmt"
	"os"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which back end to use. One of the Provider* names.
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
	Ollama     OllamaConfig
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Any OpenAI-compatible endpoint.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// OllamaConfig points at a local Ollama server. No key is needed.
type OllamaConfig struct {
	ServerURL string // Default: "http://localhost:11434"
	Model     string // Default: "qwen3:4b"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Ollama: OllamaConfig{
			ServerURL: "http://localhost:11434",
			Model:     "qwen3:4b",
		},
	}
}

// FillKeys sets empty API keys from the standard credential variables.
func (c *Config) FillKeys(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	fill := func(dst *string, names ...string) {
		for _, n := range names {
			if *dst != "" {
				return
			}
			*dst = getenv(n)
		}
	}
	fill(&c.Gemini.APIKey, "API_KEY", "GEMINI_API_KEY")
	fill(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	fill(&c.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	fill(&c.OpenRouter.APIKey, "OPENROUTER_API_KEY")
}

// SelectProvider picks the first keyed provider when Provider is empty.
// It reports whether a provider is selected afterwards.
func (c *Config) SelectProvider() bool {
	if c.Provider != "" {
		return true
	}
	switch {
	case c.Gemini.APIKey != "":
		c.Provider = ProviderGemini
	case c.OpenAI.APIKey != "":
		c.Provider = ProviderOpenAI
	case c.Anthropic.APIKey != "":
		c.Provider = ProviderAnthropic
	case c.OpenRouter.APIKey != "":
		c.Provider = ProviderOpenRouter
	default:
		return false
	}
	return true
}

// HasCredential reports whether the selected provider can be built
// without further input.
func (c Config) HasCredential() bool {
	return c.Validate() == nil
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("llm.gemini.api_key (or API_KEY) is required for the gemini provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("llm.openai.api_key is required for the openai provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("llm.anthropic.api_key is required for the anthropic provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("llm.openrouter.api_key is required for the openrouter provider")
		}
	case ProviderOllama:
		if c.Ollama.Model == "" {
			return fmt.Errorf("llm.ollama.model is required for the ollama provider")
		}
	case ProviderMock:
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
