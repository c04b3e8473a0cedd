package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	qz "github.com/abhisek/cs52quiz/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a quiz definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := qz.LoadFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok\n", args[0])
		fmt.Fprintf(out, "  %q, %d questions, max score %d\n", q.Title, q.Len(), q.MaxScore())
		for _, t := range q.Tiers {
			fmt.Fprintf(out, "  %3d+  %s\n", t.MinScore, t.Title)
		}
		return nil
	},
}
