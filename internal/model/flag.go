package model

import (
	"fmt"
	"slices"
)

// Flag names one of the two per-entry status checkboxes
type Flag string

const (
	// FlagSeen means the creo has been encountered
	FlagSeen Flag = "seen"

	// FlagCaught means the creo has been caught; caught implies seen
	FlagCaught Flag = "caught"
)

// AllFlags lists the flags in display order
var AllFlags = []Flag{FlagSeen, FlagCaught}

// String returns the string representation of Flag
func (f Flag) String() string {
	return string(f)
}

// Valid reports whether f is a known flag
func (f Flag) Valid() bool {
	return slices.Contains(AllFlags, f)
}

// ParseFlag converts user input into a Flag
func ParseFlag(s string) (Flag, error) {
	f := Flag(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown flag %q (want one of %v)", s, AllFlags)
	}
	return f, nil
}

// Flags is the checkbox state of a single entry
type Flags struct {
	Seen   bool `json:"seen" yaml:"seen"`
	Caught bool `json:"caught" yaml:"caught"`
}

// Get returns the value of a single flag
func (f Flags) Get(flag Flag) bool {
	switch flag {
	case FlagSeen:
		return f.Seen
	case FlagCaught:
		return f.Caught
	default:
		return false
	}
}

// SeenEditable returns true if the seen checkbox may be changed by the user.
// Seen is locked while caught is set.
func (f Flags) SeenEditable() bool {
	return !f.Caught
}

// Missing returns true if the entry is neither seen nor caught
func (f Flags) Missing() bool {
	return !f.Seen && !f.Caught
}
