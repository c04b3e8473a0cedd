package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Quiz.File)
	assert.Equal(t, filepath.Join(dir, "data", AppName, "cs52quiz.db"), cfg.Store.Path)
	assert.True(t, cfg.Store.Record)
	assert.Equal(t, filepath.Join(dir, "state", AppName, "cs52quiz.log"), cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
quiz:
  file: /tmp/quiz.yaml
store:
  record: false
log:
  level: debug
`), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/quiz.yaml", cfg.Quiz.File)
	assert.False(t, cfg.Store.Record)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DefaultFileLocation(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", AppName)
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("CS52QUIZ_DB", "/tmp/results.db")
	t.Setenv("CS52QUIZ_LOG_LEVEL", "error")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/results.db", cfg.Store.Path)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)
	_, err := Load(viper.New(), filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadLevel(t *testing.T) {
	isolate(t)
	t.Setenv("CS52QUIZ_LOG_LEVEL", "loud")

	_, err := Load(viper.New(), "")
	assert.ErrorContains(t, err, "log level")
}

func TestLoad_DBAliasOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  path: /from/file.db\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "/from/file.db", cfg.Store.Path)

	t.Setenv("CS52QUIZ_DB", "/from/env.db")
	cfg, err = Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Store.Path)
}
