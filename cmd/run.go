package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/brainrot/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := newEnv(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()
	defer e.logUsage(cmd.Context())

	return app.Run(e.gateway)
}
