package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every recorded result",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("this deletes all recorded results; rerun with --yes to confirm")
		}

		rt, err := loadRuntime(cmd, storeAlways)
		if err != nil {
			return err
		}
		defer rt.Close()

		n, err := rt.attempts().Clear(cmd.Context())
		if err != nil {
			return err
		}
		rt.log.Info("result log cleared", zap.Int64("deleted", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d results.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
