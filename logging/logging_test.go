package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetrust.log")

	logger, err := New("debug", path)
	require.NoError(t, err)
	logger.Debug("spawned", zap.String("kind", "T"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"spawned"`)
	assert.Contains(t, string(data), `"kind":"T"`)
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetrust.log")

	logger, err := New("warn", path)
	require.NoError(t, err)
	logger.Info("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewRejectsLevel(t *testing.T) {
	_, err := New("chatty", "")
	assert.Error(t, err)
}
