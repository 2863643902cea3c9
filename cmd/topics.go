package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/brainrot/internal/content"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List glossary topics and tracker content types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Glossary topics")
		for _, t := range content.Topics {
			fmt.Fprintf(out, "  %-20s  %s\n", t.Key, t.Name)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Content types")
		for _, ct := range content.ContentTypes {
			fmt.Fprintf(out, "  %s\n", ct)
		}
	},
}
