package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/cs52quiz/internal/config"
	"github.com/abhisek/cs52quiz/internal/logging"
	qz "github.com/abhisek/cs52quiz/internal/quiz"
	"github.com/abhisek/cs52quiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cs52quiz",
	Short: "Will you survive CS52? A terminal personality quiz",
	Long: "cs52quiz asks seven questions about how you work, adds up the weight of " +
		"each answer and tells you how you'll fare in CS52.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/cs52quiz/config.yaml)")
	flags.String("db", "", "Path to SQLite result log (overrides CS52QUIZ_DB env var)")
	flags.String("quiz", "", "Quiz definition file (JSON or YAML); the built-in quiz when empty")
	flags.String("log-file", "", "Path to the log file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("no-record", false, "Do not write finished attempts to the result log")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// runtime holds what every command builds from flags and config.
type runtime struct {
	cfg      *config.Config
	log      *zap.Logger
	closeLog func() error
	quiz     *qz.Quiz
	store    *store.Store // nil when recording is off
}

func (r *runtime) Close() {
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			r.log.Warn("close store", zap.Error(err))
		}
	}
	_ = r.closeLog()
}

// attempts returns the result log, or nil when recording is off.
func (r *runtime) attempts() store.AttemptRepo {
	if r.store == nil {
		return nil
	}
	return r.store.AttemptRepo()
}

// loadConfig resolves configuration with flags taking precedence over
// env vars, the config file and defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"store.path": "db",
		"quiz.file":  "quiz",
		"log.path":   "log-file",
		"log.level":  "log-level",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}

	path, _ := flags.GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, err
	}
	if noRecord, _ := flags.GetBool("no-record"); noRecord {
		cfg.Store.Record = false
	}
	return cfg, nil
}

// storeNeed says whether a command opens the result log.
type storeNeed int

const (
	storeNone storeNeed = iota
	storeIfRecording
	storeAlways
)

// loadRuntime builds config, logger, quiz and, when needed, the store.
func loadRuntime(cmd *cobra.Command, need storeNeed) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("command", cmd.Name()))

	q := qz.Default()
	if cfg.Quiz.File != "" {
		q, err = qz.LoadFile(cfg.Quiz.File)
		if err != nil {
			_ = closeLog()
			return nil, err
		}
		log.Info("quiz loaded", zap.String("file", cfg.Quiz.File), zap.String("title", q.Title))
	}

	rt := &runtime{cfg: cfg, log: log, closeLog: closeLog, quiz: q}
	if need == storeAlways || (need == storeIfRecording && cfg.Store.Record) {
		st, err := store.OpenPath(cfg.Store.Path)
		if err != nil {
			_ = closeLog()
			return nil, fmt.Errorf("open store: %w", err)
		}
		rt.store = st
	}
	return rt, nil
}
