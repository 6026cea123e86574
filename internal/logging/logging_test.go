package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := New(Options{OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Info("catalog loaded")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog loaded")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_Verbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := New(Options{Verbose: true, Development: true, OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Debug("icon fallback")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "icon fallback"))
}

func TestNew_BadOutputPath(t *testing.T) {
	_, err := New(Options{OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "dir", "app.log")}})
	assert.Error(t, err)

	assert.NotNil(t, Must(Options{OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "dir", "app.log")}}))
}
