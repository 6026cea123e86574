package checklist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/creodex/creo-checklist/internal/model"
)

// MetadataKey is the reserved save-file key that does not describe an entry
const MetadataKey = "metadata"

// ErrNotObject is returned for save files whose top level is not a JSON object
var ErrNotObject = errors.New("save file must be an object of id -> flags")

// SaveMetadata is written under MetadataKey
type SaveMetadata struct {
	ChecklistID string    `json:"checklist_id,omitempty"`
	SavedAt     time.Time `json:"saved_at,omitempty"`
}

// SaveFile is a decoded save file
type SaveFile struct {
	Metadata SaveMetadata
	Entries  map[string]model.Flags
}

// LoadResult reports what Apply did
type LoadResult struct {
	// Entries is the number of entries present in the save file
	Entries int
	// Applied is the number of catalog entries found in the save file
	Applied int
	// Unknown lists ids in the file that are not in the catalog
	Unknown []string
}

// flagValue accepts true/false, 0/1 and null
type flagValue bool

func (v *flagValue) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	switch s {
	case "true":
		*v = true
	case "false", "null":
		*v = false
	default:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("flag value %s is neither boolean nor number", s)
		}
		*v = n != 0
	}
	return nil
}

// savedFlags is the current per-entry object; Checked is the older single flag
type savedFlags struct {
	Seen    *flagValue `json:"seen"`
	Caught  *flagValue `json:"caught"`
	Checked *flagValue `json:"checked"`
}

// Decode parses save-file bytes. An entry may be an object {seen, caught} or
// a single legacy boolean, which loads as caught (and therefore seen).
func Decode(data []byte) (SaveFile, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return SaveFile{}, fmt.Errorf("decode save file: %w", err)
	}
	if raw == nil {
		return SaveFile{}, fmt.Errorf("decode save file: %w", ErrNotObject)
	}

	sf := SaveFile{Entries: make(map[string]model.Flags, len(raw))}
	for id, value := range raw {
		if id == MetadataKey {
			// Older save files have no metadata; a bad block is not fatal
			_ = json.Unmarshal(value, &sf.Metadata)
			continue
		}

		flags, err := decodeEntry(value)
		if err != nil {
			return SaveFile{}, fmt.Errorf("decode save file: entry %q: %w", id, err)
		}
		sf.Entries[id] = flags
	}
	return sf, nil
}

func decodeEntry(value json.RawMessage) (model.Flags, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var sf savedFlags
		if err := json.Unmarshal(trimmed, &sf); err != nil {
			return model.Flags{}, err
		}
		var f model.Flags
		if sf.Checked != nil {
			f.Caught = bool(*sf.Checked)
		}
		if sf.Seen != nil {
			f.Seen = bool(*sf.Seen)
		}
		if sf.Caught != nil {
			f.Caught = bool(*sf.Caught)
		}
		return normalize(f), nil
	}

	var legacy flagValue
	if err := json.Unmarshal(trimmed, &legacy); err != nil {
		return model.Flags{}, err
	}
	return normalize(model.Flags{Caught: bool(legacy)}), nil
}

// normalize restores caught => seen for hand-edited files
func normalize(f model.Flags) model.Flags {
	if f.Caught {
		f.Seen = true
	}
	return f
}

// Marshal encodes the store as an indented save file, entries in catalog order
func (s *Store) Marshal() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')

	meta, err := json.Marshal(SaveMetadata{ChecklistID: s.checklistID, SavedAt: s.now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	compact.WriteString(strconv.Quote(MetadataKey))
	compact.WriteByte(':')
	compact.Write(meta)

	for _, id := range s.ids {
		key, err := json.Marshal(id)
		if err != nil {
			return nil, fmt.Errorf("encode id %q: %w", id, err)
		}
		value, err := json.Marshal(s.flags[id])
		if err != nil {
			return nil, fmt.Errorf("encode entry %q: %w", id, err)
		}
		compact.WriteByte(',')
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indent save file: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Unmarshal decodes data and applies it to the store
func (s *Store) Unmarshal(data []byte) (LoadResult, error) {
	sf, err := Decode(data)
	if err != nil {
		return LoadResult{}, err
	}
	return s.Apply(sf), nil
}

// Apply overwrites the store with a decoded save file. Catalog entries the
// file does not mention are reset to false; ids the catalog does not know
// are ignored.
func (s *Store) Apply(sf SaveFile) LoadResult {
	res := LoadResult{Entries: len(sf.Entries)}

	for _, id := range s.ids {
		f, ok := sf.Entries[id]
		if ok {
			res.Applied++
		}
		s.flags[id] = normalize(f)
	}

	for id := range sf.Entries {
		if _, ok := s.flags[id]; !ok {
			res.Unknown = append(res.Unknown, id)
		}
	}
	slices.Sort(res.Unknown)

	if sf.Metadata.ChecklistID != "" {
		s.checklistID = sf.Metadata.ChecklistID
	}

	s.notify(Change{})
	return res
}
