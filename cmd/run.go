package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/cs52quiz/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	rt, err := loadRuntime(cmd, storeIfRecording)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.log.Info("starting",
		zap.String("quiz", rt.quiz.Title),
		zap.Bool("record", rt.store != nil),
	)

	err = app.Run(app.Options{
		Quiz:        rt.quiz,
		Attempts:    rt.attempts(),
		Logger:      rt.log,
		SkipWelcome: skipWelcome,
	})
	if err != nil {
		rt.log.Error("program exited", zap.Error(err))
	}
	return err
}
