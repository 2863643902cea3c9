package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/brainrot/internal/llm"
	"github.com/abhisek/brainrot/internal/logger"
)

// EnvPrefix is the prefix for every environment override, e.g.
// BRAINROT_LLM_PROVIDER for llm.provider.
const EnvPrefix = "BRAINROT"

// Config is the fully resolved application configuration.
type Config struct {
	LLM llm.Config
	Log logger.Config

	// DB is the optional SQLite path for the LLM request log.
	DB string

	// File is the config file that was read, if any.
	File string
}

// Options controls where configuration is read from.
type Options struct {
	// ConfigFile is an explicit config file. When empty, brainrot.yaml is
	// looked up in the working directory and $XDG_CONFIG_HOME/brainrot.
	ConfigFile string

	// EnvFile is a dotenv file loaded before anything else. Missing files
	// are ignored. Default ".env".
	EnvFile string

	// Overrides are highest-priority values, typically from flags the
	// user set explicitly. Keys use dotted form ("llm.provider").
	Overrides map[string]string

	// Getenv reads the process environment. Default os.Getenv.
	Getenv func(string) string
}

// Load resolves configuration from, in increasing priority: defaults,
// the config file, BRAINROT_* variables (a .env file feeds these), and
// Overrides. When no provider is named anywhere, the standard credential
// variables are probed.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	if err := loadDotenv(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("brainrot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "brainrot"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	cfg := &Config{
		LLM: llmConfig(v),
		Log: logger.Config{
			Level: v.GetString("log.level"),
			Env:   v.GetString("log.env"),
			File:  v.GetString("log.file"),
		},
		DB:   v.GetString("db"),
		File: v.ConfigFileUsed(),
	}
	if cfg.Log.File == "" {
		cfg.Log.File = logger.DefaultFile()
	}

	resolveProvider(&cfg.LLM, opts.Getenv)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.ollama.model", d.Ollama.Model)
	v.SetDefault("llm.ollama.server_url", d.Ollama.ServerURL)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "development")

	// Keys without defaults still need registering so AutomaticEnv can
	// see them through Get.
	for _, k := range []string{
		"llm.provider",
		"llm.gemini.api_key", "llm.openai.api_key", "llm.openai.base_url",
		"llm.anthropic.api_key", "llm.openrouter.api_key", "llm.openrouter.base_url",
		"log.file", "db",
	} {
		v.SetDefault(k, "")
	}
}

func llmConfig(v *viper.Viper) llm.Config {
	return llm.Config{
		Provider: v.GetString("llm.provider"),
		Gemini: llm.GeminiConfig{
			APIKey: v.GetString("llm.gemini.api_key"),
			Model:  v.GetString("llm.gemini.model"),
		},
		OpenAI: llm.OpenAIConfig{
			APIKey:  v.GetString("llm.openai.api_key"),
			Model:   v.GetString("llm.openai.model"),
			BaseURL: v.GetString("llm.openai.base_url"),
		},
		Anthropic: llm.AnthropicConfig{
			APIKey: v.GetString("llm.anthropic.api_key"),
			Model:  v.GetString("llm.anthropic.model"),
		},
		OpenRouter: llm.OpenRouterConfig{
			APIKey:  v.GetString("llm.openrouter.api_key"),
			Model:   v.GetString("llm.openrouter.model"),
			BaseURL: v.GetString("llm.openrouter.base_url"),
		},
		Ollama: llm.OllamaConfig{
			ServerURL: v.GetString("llm.ollama.server_url"),
			Model:     v.GetString("llm.ollama.model"),
		},
	}
}

// resolveProvider fills empty API keys from the standard credential
// variables and picks a provider when none was configured.
func resolveProvider(cfg *llm.Config, getenv func(string) string) {
	cfg.FillKeys(getenv)
	if !cfg.SelectProvider() {
		cfg.Provider = llm.ProviderGemini
	}
}

func loadDotenv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
