package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/creodex/creo-checklist/internal/model"
)

const (
	// MetadataKey is the reserved catalog key that does not describe an entry
	MetadataKey = "metadata"

	// DefaultFile is the catalog looked up when none is configured
	DefaultFile = "creos1.json"
)

// Format is the on-disk encoding of a catalog file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrDuplicateID is returned when two catalog keys name the same entry
	ErrDuplicateID = errors.New("duplicate entry id")

	// ErrEmptyCatalog is returned when the file contains no entries
	ErrEmptyCatalog = errors.New("catalog has no entries")
)

// record is the per-entry value stored in the catalog file
type record struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// Catalog is the ordered, read-only set of entries loaded at startup
type Catalog struct {
	path     string
	entries  []model.Entry
	index    map[string]int
	metadata model.Metadata
}

// FormatForPath picks the decoder from the file extension, defaulting to JSON
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses the catalog file at path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	c.path = absPath
	return c, nil
}

// Parse decodes catalog data in the given format
func Parse(data []byte, format Format) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int)}

	var err error
	switch format {
	case FormatYAML:
		err = c.decodeYAML(data)
	case FormatJSON:
		err = c.decodeJSON(data)
	default:
		err = fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if len(c.entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// decodeJSON walks the top-level object token by token so key order survives
func (c *Catalog) decodeJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("json: catalog must be an object of id -> entry")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("json: %w", err)
		}
		id, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("json: entry %q: %w", id, err)
		}

		if id == MetadataKey {
			// Malformed metadata is not worth failing startup over
			_ = json.Unmarshal(raw, &c.metadata)
			continue
		}

		if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
			return fmt.Errorf("json: entry %q must be an object", id)
		}

		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("json: entry %q: %w", id, err)
		}
		if err := c.add(id, rec); err != nil {
			return err
		}
	}

	tok, err = dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '}' {
		return fmt.Errorf("json: unexpected token %v after entries", tok)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("json: unexpected data after catalog object")
	}
	return nil
}

// decodeYAML uses the node tree rather than a map to keep key order
func (c *Catalog) decodeYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return ErrEmptyCatalog
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("yaml: catalog must be a mapping of id -> entry (line %d)", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		id := key.Value

		if id == MetadataKey {
			_ = value.Decode(&c.metadata)
			continue
		}

		if value.Kind != yaml.MappingNode {
			return fmt.Errorf("yaml: entry %q must be a mapping (line %d)", id, value.Line)
		}

		var rec record
		if err := value.Decode(&rec); err != nil {
			return fmt.Errorf("yaml: entry %q: %w", id, err)
		}
		if err := c.add(id, rec); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) add(id string, rec record) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("entry with empty id")
	}
	if _, exists := c.index[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	c.index[id] = len(c.entries)
	c.entries = append(c.entries, model.Entry{
		ID:   id,
		Name: rec.Name,
		Icon: rec.Icon,
	})
	return nil
}

// Entries returns the entries in catalog order. The slice is a copy.
func (c *Catalog) Entries() []model.Entry {
	return slices.Clone(c.entries)
}

// IDs returns entry identifiers in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry with the given identifier
func (c *Catalog) Lookup(id string) (model.Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Entry{}, false
	}
	return c.entries[i], true
}

// Metadata returns the catalog's reserved metadata block
func (c *Catalog) Metadata() model.Metadata {
	return c.metadata
}

// Path returns the absolute path the catalog was loaded from, if any
func (c *Catalog) Path() string {
	return c.path
}

// Dir returns the directory icon paths are relative to
func (c *Catalog) Dir() string {
	if c.path == "" {
		return "."
	}
	return filepath.Dir(c.path)
}
