package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/creodex/creo-checklist/internal/model"
	"github.com/creodex/creo-checklist/internal/view"
)

type flagCall struct {
	id    string
	flag  model.Flag
	value bool
}

func TestEntryRow_SetRowDoesNotFireCallbacks(t *testing.T) {
	test.NewApp()
	row := NewEntryRow()

	var calls []flagCall
	row.SetCallbacks(func(id string, flag model.Flag, value bool) {
		calls = append(calls, flagCall{id, flag, value})
	}, nil)

	row.SetRow(view.Row{
		Entry:        model.Entry{ID: "007", Name: "Pyrin"},
		Flags:        model.Flags{Seen: true, Caught: true},
		SeenEditable: false,
	}, nil, false)

	if len(calls) != 0 {
		t.Errorf("SetRow should not report changes, got %v", calls)
	}
	if !row.seenCheck.Checked || !row.caughtCheck.Checked {
		t.Error("Checks should mirror the row flags")
	}
	if !row.seenCheck.Disabled() {
		t.Error("Seen should be disabled while caught")
	}
	if row.idLabel.Text != "007" || row.nameLink.Text != "Pyrin" {
		t.Errorf("Unexpected labels: %s %s", row.idLabel.Text, row.nameLink.Text)
	}
	if row.iconImage.Visible() {
		t.Error("Icon should be hidden when icons are off")
	}
}

func TestEntryRow_UserToggle(t *testing.T) {
	test.NewApp()
	row := NewEntryRow()

	var calls []flagCall
	row.SetCallbacks(func(id string, flag model.Flag, value bool) {
		calls = append(calls, flagCall{id, flag, value})
	}, nil)
	row.SetRow(view.Row{
		Entry:        model.Entry{ID: "001", Name: "Deor"},
		SeenEditable: true,
	}, nil, true)

	test.Tap(row.caughtCheck)
	test.Tap(row.seenCheck)

	want := []flagCall{
		{"001", model.FlagCaught, true},
		{"001", model.FlagSeen, true},
	}
	if len(calls) != len(want) {
		t.Fatalf("Expected %d calls, got %v", len(want), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Call %d: expected %v, got %v", i, want[i], calls[i])
		}
	}
}

func TestEntryRow_OpenLink(t *testing.T) {
	test.NewApp()
	row := NewEntryRow()

	var opened model.Entry
	row.SetCallbacks(nil, func(e model.Entry) { opened = e })

	// An empty row has nothing to open
	row.nameLink.OnTapped()
	if opened.ID != "" {
		t.Error("Empty row should not open a link")
	}

	row.SetRow(view.Row{Entry: model.Entry{ID: "003", Name: "Deor Mata"}, SeenEditable: true}, nil, true)
	row.nameLink.OnTapped()
	if opened.ID != "003" {
		t.Errorf("Expected link for 003, got %q", opened.ID)
	}
}
