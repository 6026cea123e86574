package model

import (
	"net/url"
	"strings"
)

// DefaultWikiBaseURL is where entry names link to unless configured otherwise
const DefaultWikiBaseURL = "https://evocreo.fandom.com/wiki"

// Entry is a single catalog item ("creo")
type Entry struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"` // path relative to the catalog file
}

// HasIcon returns true if the catalog declared an icon for the entry
func (e Entry) HasIcon() bool {
	return strings.TrimSpace(e.Icon) != ""
}

// DisplayName returns the name, or the ID when the catalog left the name empty
func (e Entry) DisplayName() string {
	if name := strings.TrimSpace(e.Name); name != "" {
		return name
	}
	return e.ID
}

// WikiURL builds the wiki page link for the entry under baseURL.
// Spaces become underscores, matching wiki page naming.
func (e Entry) WikiURL(baseURL string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, err
	}
	page := strings.ReplaceAll(e.DisplayName(), " ", "_")
	return base.JoinPath(page), nil
}

// Metadata is the catalog's reserved "metadata" block
type Metadata struct {
	LastUpdated string `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
}

// IsEmpty returns true if the catalog carried no metadata
func (m Metadata) IsEmpty() bool {
	return m.LastUpdated == "" && m.Source == ""
}

// Footer returns the attribution line shown under the checklist
func (m Metadata) Footer() string {
	var parts []string
	if m.LastUpdated != "" {
		parts = append(parts, "Accurate as of "+m.LastUpdated)
	}
	if m.Source != "" {
		parts = append(parts, "Source: "+m.Source)
	}
	return strings.Join(parts, " | ")
}

// Summary counts entries by status
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Seen    int `json:"seen" yaml:"seen"`
	Caught  int `json:"caught" yaml:"caught"`
	Missing int `json:"missing" yaml:"missing"`
}

// Add accumulates one entry's flags into the summary
func (s *Summary) Add(f Flags) {
	s.Total++
	if f.Seen {
		s.Seen++
	}
	if f.Caught {
		s.Caught++
	}
	if f.Missing() {
		s.Missing++
	}
}
