package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smiles.log")

	logger, err := New(path, "info", false)
	require.NoError(t, err)
	logger.Info("campaign loaded")
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "campaign loaded")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_Verbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smiles.log")

	logger, err := New(path, "warn", true)
	require.NoError(t, err)
	logger.Debug("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "smiles.log"), "loud", false)
	assert.Error(t, err)
}

func TestNew_EmptyFileIsNop(t *testing.T) {
	logger, err := New("", "", false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
