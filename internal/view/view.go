// Package view projects the catalog and checklist state onto the rows a front
// end should display. It keeps no state of its own.
package view

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/creodex/creo-checklist/internal/model"
)

// Criteria selects visible entries
type Criteria struct {
	Query       string
	SeenOnly    bool // seen but not yet caught
	CaughtOnly  bool
	MissingOnly bool // neither seen nor caught
}

// IsZero returns true if no filter is active
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// FlagSource provides the current flags of an entry; *checklist.Store
// satisfies it
type FlagSource interface {
	Flags(id string) (model.Flags, bool)
}

// Row is one visible entry with its current flags
type Row struct {
	Entry        model.Entry
	Flags        model.Flags
	SeenEditable bool
}

// matcher holds the folded query for one pass over the entries
type matcher struct {
	criteria Criteria
	caser    cases.Caser
	query    string
}

func newMatcher(c Criteria) *matcher {
	caser := cases.Fold()
	return &matcher{
		criteria: c,
		caser:    caser,
		query:    caser.String(c.Query),
	}
}

func (m *matcher) matchesQuery(e model.Entry) bool {
	if m.query == "" {
		return true
	}
	if m.caser.String(e.ID) == m.query {
		return true
	}
	return strings.Contains(m.caser.String(e.Name), m.query)
}

func (m *matcher) visible(e model.Entry, f model.Flags) bool {
	return m.matchesQuery(e) && m.matchesFlags(f)
}

func (m *matcher) matchesFlags(f model.Flags) bool {
	if m.criteria.SeenOnly && !(f.Seen && !f.Caught) {
		return false
	}
	if m.criteria.CaughtOnly && !f.Caught {
		return false
	}
	if m.criteria.MissingOnly && !f.Missing() {
		return false
	}
	return true
}

// Apply returns the visible rows in catalog order
func Apply(c Criteria, entries []model.Entry, flags FlagSource) []Row {
	m := newMatcher(c)
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		f, _ := flags.Flags(e.ID)
		if !m.visible(e, f) {
			continue
		}
		rows = append(rows, Row{
			Entry:        e,
			Flags:        f,
			SeenEditable: f.SeenEditable(),
		})
	}
	return rows
}
