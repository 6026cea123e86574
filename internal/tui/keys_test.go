package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"ToggleSeen", km.ToggleSeen},
		{"ToggleCaught", km.ToggleCaught},
		{"AllSeen", km.AllSeen},
		{"AllCaught", km.AllCaught},
		{"Filter", km.Filter},
		{"SeenOnly", km.SeenOnly},
		{"CaughtOnly", km.CaughtOnly},
		{"MissingOnly", km.MissingOnly},
		{"Open", km.Open},
		{"Save", km.Save},
		{"Load", km.Load},
		{"Help", km.Help},
		{"Quit", km.Quit},
		{"ForceQuit", km.ForceQuit},
	}

	for _, b := range bindings {
		if len(b.binding.Keys()) == 0 {
			t.Errorf("%s binding should have keys", b.name)
		}
		if b.binding.Help().Desc == "" {
			t.Errorf("%s binding should have help description", b.name)
		}
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if len(km.FullHelp()) != 4 {
		t.Errorf("Expected 4 help columns, got %d", len(km.FullHelp()))
	}
}
