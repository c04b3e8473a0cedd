package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/cs52quiz/internal/config"
)

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quiz.log")
	log, closeLog, err := New(config.LogConfig{Path: path, Level: "info", MaxSizeMB: 1})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("quiz started", zap.Int("questions", 7))
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"quiz started"`)
	assert.Contains(t, string(data), `"questions":7`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "shout"})
	assert.Error(t, err)
}

func TestClose_ReleasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")
	log, closeLog, err := New(config.LogConfig{Path: path, Level: "info", MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info("before close")
	require.NoError(t, closeLog())

	// A write after close reopens the file; closing again releases it.
	log.Info("after close")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
}
