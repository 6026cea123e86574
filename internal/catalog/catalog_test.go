package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creodex/creo-checklist/internal/model"
)

const sampleJSON = `{
  "metadata": {"last_updated": "Jan 18, 2026", "source": "In-game"},
  "003": {"name": "Deor", "icon": "icons/003.png"},
  "001": {"name": "Sparkitt", "icon": "icons/001.png"},
  "002": {"name": "Fleye"}
}`

const sampleYAML = `
"003":
  name: Deor
  icon: icons/003.png
metadata:
  last_updated: Jan 18, 2026
"001":
  name: Sparkitt
"002":
  name: Fleye
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_JSONKeepsFileOrder(t *testing.T) {
	c, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"003", "001", "002"}, c.IDs())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, model.Metadata{LastUpdated: "Jan 18, 2026", Source: "In-game"}, c.Metadata())

	e, ok := c.Lookup("002")
	require.True(t, ok)
	assert.Equal(t, "Fleye", e.Name)
	assert.False(t, e.HasIcon())
}

func TestParse_YAMLKeepsFileOrder(t *testing.T) {
	c, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"003", "001", "002"}, c.IDs())
	assert.Equal(t, "Jan 18, 2026", c.Metadata().LastUpdated)

	e, ok := c.Lookup("003")
	require.True(t, ok)
	assert.Equal(t, "icons/003.png", e.Icon)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"not an object", `["001"]`, FormatJSON},
		{"entry is a string", `{"001": "Sparkitt"}`, FormatJSON},
		{"entry is null", `{"001": null}`, FormatJSON},
		{"yaml null entry", "\"001\": ~\n", FormatYAML},
		{"trailing data", `{"001": {"name": "Sparkitt"}} garbage`, FormatJSON},
		{"second object", `{"001": {"name": "Sparkitt"}} {}`, FormatJSON},
		{"only metadata", `{"metadata": {}}`, FormatJSON},
		{"truncated", `{"001": {"name": "Sparkitt"}`, FormatJSON},
		{"yaml sequence", "- a\n- b\n", FormatYAML},
		{"yaml scalar entry", "\"001\": Sparkitt\n", FormatYAML},
		{"unknown format", `{}`, Format("toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestParse_DuplicateID(t *testing.T) {
	_, err := Parse([]byte(`{"001": {"name": "A"}, "001": {"name": "B"}}`), FormatJSON)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParse_OnlyMetadataIsEmpty(t *testing.T) {
	_, err := Parse([]byte(`{"metadata": {"source": "x"}}`), FormatJSON)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "creos.json", sampleJSON)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, c.Dir())
	assert.Equal(t, path, c.Path())

	entries := c.Entries()
	entries[0].Name = "changed"
	first, _ := c.Lookup("003")
	assert.Equal(t, "Deor", first.Name, "Entries must return a copy")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("creos.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("CREOS.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("creos.json"))
	assert.Equal(t, FormatJSON, FormatForPath("creos"))
}
