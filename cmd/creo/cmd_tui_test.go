package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/checklist"
	"github.com/creodex/creo-checklist/internal/tui"
)

// captureStderr runs fn with os.Stderr redirected and returns what was written
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

// driveTUI builds the terminal model with the tui logger and presses save,
// load and open
func driveTUI(t *testing.T, c *cli) {
	t.Helper()

	cat, err := catalog.Load(writeCatalog(t))
	require.NoError(t, err)
	store := checklist.NewStore(cat.IDs())

	logger, err := c.tuiLogger()
	require.NoError(t, err)

	m := tui.New(cat, store, tui.Options{
		SavePath: filepath.Join(t.TempDir(), "save.json"),
		Logger:   logger,
		OpenURL:  func(*url.URL) error { return nil },
	})
	defer m.Close()

	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")},
		tea.KeyMsg{Type: tea.KeyCtrlS},
		tea.KeyMsg{Type: tea.KeyCtrlL},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")},
	} {
		m.Update(msg)
	}
	_ = logger.Sync()
}

func TestTUILogger_KeepsStderrClean(t *testing.T) {
	c := &cli{verbose: true}

	out := captureStderr(t, func() { driveTUI(t, c) })
	assert.Empty(t, out)
}

func TestTUILogger_WritesToLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "tui.log")
	c := &cli{verbose: true, logFile: logFile}

	out := captureStderr(t, func() { driveTUI(t, c) })
	assert.Empty(t, out)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "checklist saved")
}
