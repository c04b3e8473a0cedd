package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// AppName is used for XDG directories and the env prefix.
const AppName = "cs52quiz"

type Config struct {
	Quiz  QuizConfig  `mapstructure:"quiz"`
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
}

type QuizConfig struct {
	// File is an optional quiz definition; empty means the built-in quiz.
	File string `mapstructure:"file"`
}

type StoreConfig struct {
	Path   string `mapstructure:"path"`
	Record bool   `mapstructure:"record"`
}

type LogConfig struct {
	Path       string `mapstructure:"path"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// envAliases are env vars accepted next to the CS52QUIZ_<KEY> form.
var envAliases = map[string]string{
	"store.path": "CS52QUIZ_DB",
}

// Load reads configuration into v from, in increasing priority: defaults,
// the config file (explicit path or $XDG_CONFIG_HOME/cs52quiz/config.yaml),
// CS52QUIZ_* env vars, and any flags already bound to v.
// A missing default config file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Store.Path == "" {
		return errors.New("store path is empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) error {
	dataDir, err := dataDir()
	if err != nil {
		return err
	}
	stateDir, err := stateDir()
	if err != nil {
		return err
	}

	v.SetDefault("quiz.file", "")
	v.SetDefault("store.path", filepath.Join(dataDir, AppName+".db"))
	v.SetDefault("store.record", true)
	v.SetDefault("log.path", filepath.Join(stateDir, AppName+".log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	return nil
}

func configDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

func dataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func stateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// xdgDir resolves $env/cs52quiz, falling back to ~/fallback/cs52quiz.
func xdgDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, AppName), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
