package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/brainrot/internal/llm"
	"github.com/abhisek/brainrot/internal/logger"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func noDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{EnvFile: noDotenv(t), Getenv: env(nil)})
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-flash", cfg.LLM.Gemini.Model)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Ollama.ServerURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Log.File)
	assert.Empty(t, cfg.DB)
	assert.False(t, cfg.LLM.HasCredential())
}

func TestLoad_APIKeyMeansGemini(t *testing.T) {
	cfg, err := Load(Options{EnvFile: noDotenv(t), Getenv: env(map[string]string{
		"API_KEY":        "g-key",
		"OPENAI_API_KEY": "o-key",
	})})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "o-key", cfg.LLM.OpenAI.APIKey)
	assert.True(t, cfg.LLM.HasCredential())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brainrot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
llm:
  provider: ollama
  ollama:
    model: llama3.2
log:
  level: debug
  file: "off"
db: /tmp/brainrot-test.db
`), 0o644))

	cfg, err := Load(Options{ConfigFile: path, EnvFile: noDotenv(t), Getenv: env(nil)})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, "llama3.2", cfg.LLM.Ollama.Model)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, logger.Off, cfg.Log.File)
	assert.Equal(t, "/tmp/brainrot-test.db", cfg.DB)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"), EnvFile: noDotenv(t)})
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brainrot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: ollama\n"), 0o644))
	t.Setenv("BRAINROT_LLM_PROVIDER", "openai")
	t.Setenv("BRAINROT_LLM_OPENAI_API_KEY", "sk-env")

	cfg, err := Load(Options{ConfigFile: path, EnvFile: noDotenv(t), Getenv: env(nil)})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-env", cfg.LLM.OpenAI.APIKey)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("BRAINROT_LLM_PROVIDER", "openai")
	cfg, err := Load(Options{
		EnvFile:   noDotenv(t),
		Getenv:    env(nil),
		Overrides: map[string]string{"llm.provider": "mock", "log.file": logger.Off},
	})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderMock, cfg.LLM.Provider)
	assert.Equal(t, logger.Off, cfg.Log.File)
}

func TestLoad_Dotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BRAINROT_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("BRAINROT_LOG_LEVEL") })

	cfg, err := Load(Options{EnvFile: path, Getenv: env(nil)})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_KeyedProviderWithoutStandardVar(t *testing.T) {
	t.Setenv("BRAINROT_LLM_ANTHROPIC_API_KEY", "sk-ant")
	cfg, err := Load(Options{EnvFile: noDotenv(t), Getenv: env(nil)})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
}
