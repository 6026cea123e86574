package checklist

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/creodex/creo-checklist/internal/model"
)

var (
	// ErrUnknownEntry is returned when an id is not part of the catalog
	ErrUnknownEntry = errors.New("unknown entry")

	// ErrSeenLocked is returned when seen is edited while caught is set
	ErrSeenLocked = errors.New("seen is locked while caught is set")

	// ErrInvalidFlag is returned for a flag other than seen or caught
	ErrInvalidFlag = errors.New("invalid flag")
)

// Change describes a state mutation. ID is empty when many entries changed
// at once (bulk set, reset, load).
type Change struct {
	ID    string
	Flags model.Flags
}

// IsBulk returns true if the change touched more than one entry
func (c Change) IsBulk() bool {
	return c.ID == ""
}

// Listener receives change notifications
type Listener func(Change)

// Store is the checklist state for every catalog entry
type Store struct {
	ids         []string
	flags       map[string]model.Flags
	checklistID string
	now         func() time.Time

	listeners    map[int]Listener
	nextListener int
}

// NewStore creates a store with every id at seen=false, caught=false
func NewStore(ids []string) *Store {
	s := &Store{
		ids:         slices.Clone(ids),
		flags:       make(map[string]model.Flags, len(ids)),
		checklistID: uuid.NewString(),
		now:         time.Now,
		listeners:   make(map[int]Listener),
	}
	for _, id := range ids {
		s.flags[id] = model.Flags{}
	}
	return s
}

// ChecklistID identifies this checklist across save files
func (s *Store) ChecklistID() string {
	return s.checklistID
}

// IDs returns the entry ids in catalog order
func (s *Store) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of tracked entries
func (s *Store) Len() int {
	return len(s.ids)
}

// Flags returns the full flag set of an entry
func (s *Store) Flags(id string) (model.Flags, bool) {
	f, ok := s.flags[id]
	return f, ok
}

// Get returns a single flag; unknown ids read as false
func (s *Store) Get(id string, flag model.Flag) bool {
	return s.flags[id].Get(flag)
}

// SeenEditable reports whether the user may change seen for id
func (s *Store) SeenEditable(id string) bool {
	return s.flags[id].SeenEditable()
}

// Set changes one flag of one entry.
// Setting caught also sets seen; clearing caught leaves seen as it was.
// Changing seen while caught is set fails with ErrSeenLocked.
func (s *Store) Set(id string, flag model.Flag, value bool) error {
	current, ok := s.flags[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}

	next, err := apply(current, flag, value)
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	if next == current {
		return nil
	}

	s.flags[id] = next
	s.notify(Change{ID: id, Flags: next})
	return nil
}

// Toggle inverts one flag of one entry
func (s *Store) Toggle(id string, flag model.Flag) error {
	return s.Set(id, flag, !s.Get(id, flag))
}

// apply computes the flags after setting flag to value
func apply(f model.Flags, flag model.Flag, value bool) (model.Flags, error) {
	switch flag {
	case model.FlagSeen:
		if f.Seen == value {
			return f, nil
		}
		if !f.SeenEditable() {
			return f, ErrSeenLocked
		}
		f.Seen = value
	case model.FlagCaught:
		f.Caught = value
		if value {
			f.Seen = true
		}
	default:
		return f, fmt.Errorf("%w: %q", ErrInvalidFlag, flag)
	}
	return f, nil
}

// BulkSet sets flag to value on every entry that allows it and returns the
// number of entries that changed. Entries whose seen is locked are skipped.
func (s *Store) BulkSet(flag model.Flag, value bool) (int, error) {
	if !flag.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFlag, flag)
	}

	changed := 0
	for _, id := range s.ids {
		current := s.flags[id]
		next, err := apply(current, flag, value)
		if err != nil || next == current {
			continue
		}
		s.flags[id] = next
		changed++
	}

	if changed > 0 {
		s.notify(Change{})
	}
	return changed, nil
}

// AllSet reports whether every entry has flag set
func (s *Store) AllSet(flag model.Flag) bool {
	if len(s.ids) == 0 {
		return false
	}
	for _, id := range s.ids {
		if !s.flags[id].Get(flag) {
			return false
		}
	}
	return true
}

// ToggleAll clears flag everywhere when every entry already has it and sets
// it everywhere otherwise. It returns the value that was applied.
func (s *Store) ToggleAll(flag model.Flag) (bool, error) {
	value := !s.AllSet(flag)
	if _, err := s.BulkSet(flag, value); err != nil {
		return false, err
	}
	return value, nil
}

// Reset clears every flag
func (s *Store) Reset() {
	changed := false
	for _, id := range s.ids {
		if s.flags[id] != (model.Flags{}) {
			s.flags[id] = model.Flags{}
			changed = true
		}
	}
	if changed {
		s.notify(Change{})
	}
}

// snapshot returns a copy of all flags keyed by id
func (s *Store) snapshot() map[string]model.Flags {
	out := make(map[string]model.Flags, len(s.flags))
	for id, f := range s.flags {
		out[id] = f
	}
	return out
}

// Summary counts entries by status
func (s *Store) Summary() model.Summary {
	var sum model.Summary
	for _, id := range s.ids {
		sum.Add(s.flags[id])
	}
	return sum
}

// Subscribe registers l for change notifications and returns a function
// that removes it
func (s *Store) Subscribe(l Listener) func() {
	key := s.nextListener
	s.nextListener++
	s.listeners[key] = l
	return func() {
		delete(s.listeners, key)
	}
}

func (s *Store) notify(c Change) {
	keys := make([]int, 0, len(s.listeners))
	for k := range s.listeners {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if l, ok := s.listeners[k]; ok {
			l(c)
		}
	}
}
