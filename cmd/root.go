package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/brainrot/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "brainrot",
	Short: "Learn to recognize and cut down brain-rot content",
	Long: "brainrot: a terminal app that explains brain-rot content categories, quizzes you on " +
		"recognizing them and analyzes your daily consumption log with AI.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ./brainrot.yaml or $XDG_CONFIG_HOME/brainrot/brainrot.yaml)")
	flags.String("db", "", "SQLite file for the LLM request log (overrides BRAINROT_DB)")
	flags.String("log-file", "", `Log file, or "off" (default $XDG_STATE_HOME/brainrot/brainrot.log)`)
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("provider", "", "LLM provider: gemini, openai, anthropic, openrouter, ollama, mock")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(defineCmd)
	rootCmd.AddCommand(llmCmd)
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"db":        "db",
	"log-file":  "log.file",
	"log-level": "log.level",
	"provider":  "llm.provider",
}

// loadConfig resolves configuration with explicitly set flags taking
// precedence over every other source.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := config.Options{Overrides: map[string]string{}}
	opts.ConfigFile, _ = cmd.Flags().GetString("config")

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			opts.Overrides[key] = f.Value.String()
		}
	}
	return config.Load(opts)
}
