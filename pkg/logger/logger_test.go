package logger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/limbo/basetracker/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "basetracker.log")
	log, closeFn, err := logger.New(logger.Config{Level: "debug", Encoding: "json", File: path})
	require.NoError(t, err)

	log.Debug("habit toggled", slog.String("habit_id", "abc"))
	log.Info("identity switched")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"habit toggled"`)
	assert.Contains(t, string(data), `"habit_id":"abc"`)
	assert.Contains(t, string(data), "identity switched")
}

func TestNewLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warn.log")
	log, closeFn, err := logger.New(logger.Config{Level: "warn", File: path})
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("visible")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := logger.New(logger.Config{Level: "loud"})
	assert.Error(t, err)
}
