package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/brainrot/internal/config"
	"github.com/abhisek/brainrot/internal/gateway"
	"github.com/abhisek/brainrot/internal/llm"
	"github.com/abhisek/brainrot/internal/logger"
	"github.com/abhisek/brainrot/internal/store"
)

const credentialHint = "Set API_KEY (Gemini), GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY " +
	"or OPENROUTER_API_KEY, or pass --provider ollama for a local model."

// env is the wired dependency graph shared by the commands that talk to
// the model.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	events  *store.MemoryEventRepo
	gateway *gateway.Gateway

	closers []func() error
}

// newEnv loads configuration and builds the gateway. A provider that
// cannot be configured is replaced by one that fails every request; the
// reason is written to warn.
func newEnv(cmd *cobra.Command, warn io.Writer) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	e := &env{cfg: cfg, log: log, events: store.NewMemoryEventRepo()}
	e.closers = append(e.closers, closeLog)

	var events store.EventWriter = e.events
	if cfg.DB != "" {
		if err := store.EnsureDir(cfg.DB); err != nil {
			e.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(cfg.DB)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		e.closers = append(e.closers, st.Close)
		events = store.Tee(e.events, st.EventRepo())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, events, log)
	if err != nil {
		fmt.Fprintln(warn, "LLM provider not configured:", err)
		if !cfg.LLM.HasCredential() {
			fmt.Fprintln(warn, credentialHint)
		}
		fmt.Fprintln(warn, "AI features will be unavailable.")
		log.Warn("llm provider unavailable", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		provider = llm.WithLogging(llm.NewUnavailableProvider(err), cfg.LLM.Provider, events, log)
	}

	log.Info("starting",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", provider.ModelID()),
		zap.String("config", cfg.File),
		zap.Bool("request_log", cfg.DB != ""),
	)

	e.gateway = gateway.New(provider, gateway.DefaultConfig(), log)
	return e, nil
}

// logUsage writes the session's per-purpose request counts.
func (e *env) logUsage(ctx context.Context) {
	usage, err := e.events.LLMUsageByPurpose(ctx)
	if err != nil || len(usage) == 0 {
		return
	}
	for _, u := range usage {
		e.log.Info("llm usage",
			zap.String("purpose", u.Purpose),
			zap.Int("calls", u.Calls),
			zap.Int("failures", u.Failures),
			zap.Int("input_tokens", u.InputTokens),
			zap.Int("output_tokens", u.OutputTokens),
			zap.Int64("avg_latency_ms", u.AvgLatencyMs),
		)
	}
}

// Close releases resources in reverse order of acquisition.
func (e *env) Close() {
	_ = e.log.Sync()
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i]()
	}
}
