package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/brainrot/internal/content"
	"github.com/abhisek/brainrot/internal/glossary"
)

var defineCmd = &cobra.Command{
	Use:   "define <topic-key>",
	Short: "Print the definition and examples of a glossary topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, ok := content.TopicByKey(args[0])
		if !ok {
			return fmt.Errorf("unknown topic %q (see 'brainrot topics')", args[0])
		}

		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		res, err := e.gateway.DefineTopic(cmd.Context(), topic.Name)
		if err != nil {
			return errors.New(glossary.FailureText(err))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, topic.Name)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Định nghĩa:")
		fmt.Fprintln(out, res.Definition)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Ví dụ:")
		for _, ex := range res.Examples {
			fmt.Fprintf(out, "  • %s\n", ex)
		}
		return nil
	},
}
