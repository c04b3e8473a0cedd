package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cs52quiz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past results and score statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd, storeAlways)
		if err != nil {
			return err
		}
		defer rt.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		all, _ := cmd.Flags().GetBool("all")

		opts := store.QueryOpts{Limit: limit}
		if !all {
			opts.QuizTitle = rt.quiz.Title
		}

		repo := rt.attempts()
		ctx := cmd.Context()
		stats, err := repo.Stats(ctx, store.QueryOpts{QuizTitle: opts.QuizTitle})
		if err != nil {
			return err
		}
		recent, err := repo.RecentAttempts(ctx, opts)
		if err != nil {
			return err
		}

		printHistory(cmd.OutOrStdout(), stats, recent)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of recent attempts to list (0 for all)")
	historyCmd.Flags().Bool("all", false, "Include attempts of every quiz, not just the current one")
}

func printHistory(w io.Writer, stats store.Stats, recent []store.AttemptRecord) {
	if stats.Attempts == 0 {
		fmt.Fprintln(w, "No finished attempts yet.")
		return
	}

	fmt.Fprintf(w, "Attempts: %d   Best: %d   Average: %.1f\n", stats.Attempts, stats.BestScore, stats.AverageScore)
	for _, tc := range stats.Tiers {
		fmt.Fprintf(w, "  %-12s %d\n", tc.Tier, tc.Count)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-17s  %-7s  %-12s  %s\n", "Completed", "Score", "Tier", "Quiz")
	fmt.Fprintln(w, strings.Repeat("─", 64))
	for _, a := range recent {
		fmt.Fprintf(w, "%-17s  %2d / %-2d  %-12s  %s\n",
			a.CompletedAt.Local().Format("2006-01-02 15:04"), a.Score, a.MaxScore, a.Tier, a.QuizTitle)
	}
}
