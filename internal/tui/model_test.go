package tui

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/checklist"
	"github.com/creodex/creo-checklist/internal/model"
)

const testCatalog = `{
  "metadata": {"last_updated": "2024-05-01", "source": "EvoCreo Wiki"},
  "000": {"name": "Deor Mata", "icon": ""},
  "001": {"name": "Deor", "icon": ""},
  "002": {"name": "Pyrin", "icon": ""}
}`

func newTestModel(t *testing.T) (*Model, *checklist.Store, *[]string) {
	t.Helper()

	cat, err := catalog.Parse([]byte(testCatalog), catalog.FormatJSON)
	if err != nil {
		t.Fatalf("Failed to parse catalog: %v", err)
	}
	store := checklist.NewStore(cat.IDs())

	var opened []string
	m := New(cat, store, Options{
		SavePath: filepath.Join(t.TempDir(), "save.json"),
		OpenURL: func(u *url.URL) error {
			opened = append(opened, u.String())
			return nil
		},
	})
	t.Cleanup(m.Close)
	return m, store, &opened
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestModel_InitialView(t *testing.T) {
	m, _, _ := newTestModel(t)

	if len(m.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(m.rows))
	}

	out := m.View()
	for _, want := range []string{"0 / 3 seen", "Deor Mata", "Pyrin", "Accurate as of 2024-05-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestModel_ToggleCaughtImpliesSeen(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyDown}, runes("c"))

	f, _ := store.Flags("001")
	if !f.Seen || !f.Caught {
		t.Errorf("Expected 001 seen and caught, got %+v", f)
	}

	// Seen is locked while caught
	press(m, runes("s"))
	if !store.Get("001", model.FlagSeen) {
		t.Error("Seen should stay set while caught")
	}
	if !m.statusErr {
		t.Error("Locked seen should report a status error")
	}

	press(m, runes("c"))
	f, _ = store.Flags("001")
	if !f.Seen || f.Caught {
		t.Errorf("Clearing caught should keep seen, got %+v", f)
	}
}

func TestModel_ToggleAll(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, runes("S"))
	if !store.AllSet(model.FlagSeen) {
		t.Fatal("Expected all seen")
	}
	press(m, runes("S"))
	if store.Summary().Seen != 0 {
		t.Errorf("Expected none seen, got %d", store.Summary().Seen)
	}

	press(m, runes("C"))
	if !store.AllSet(model.FlagCaught) || !store.AllSet(model.FlagSeen) {
		t.Error("Catching all should mark every entry seen")
	}
}

func TestModel_Filter(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, runes("/"), runes("p"), runes("Y"))
	if !m.filtering {
		t.Fatal("Expected filter input to be active")
	}
	if len(m.rows) != 1 || m.rows[0].Entry.ID != "002" {
		t.Fatalf("Expected only 002 for 'pY', got %v", m.rows)
	}

	// Keys typed into the filter do not toggle entries
	if store.Summary().Seen != 0 {
		t.Error("Typing in the filter should not change state")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.filtering {
		t.Error("Enter should leave the filter input")
	}
	if len(m.rows) != 1 {
		t.Error("Query should stay applied after enter")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.rows) != 3 {
		t.Errorf("Esc should clear filters, got %d rows", len(m.rows))
	}
}

func TestModel_IDQueryMatchesExactly(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, runes("/"), runes("001"))
	if len(m.rows) != 1 || m.rows[0].Entry.ID != "001" {
		t.Errorf("Expected only 001, got %v", m.rows)
	}
}

func TestModel_FlagFilters(t *testing.T) {
	m, store, _ := newTestModel(t)

	if err := store.Set("000", model.FlagSeen, true); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("002", model.FlagCaught, true); err != nil {
		t.Fatal(err)
	}

	press(m, runes("1"))
	if len(m.rows) != 1 || m.rows[0].Entry.ID != "000" {
		t.Errorf("Seen only should show 000, got %v", m.rows)
	}

	press(m, runes("1"), runes("2"))
	if len(m.rows) != 1 || m.rows[0].Entry.ID != "002" {
		t.Errorf("Caught only should show 002, got %v", m.rows)
	}

	press(m, runes("2"), runes("3"))
	if len(m.rows) != 1 || m.rows[0].Entry.ID != "001" {
		t.Errorf("Missing only should show 001, got %v", m.rows)
	}
}

func TestModel_CursorStaysInRange(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, runes("G"))
	if m.cursor != 2 {
		t.Errorf("Expected cursor at 2, got %d", m.cursor)
	}

	press(m, runes("/"), runes("Deor Mata"))
	if m.cursor != 0 {
		t.Errorf("Cursor should be clamped to the filtered rows, got %d", m.cursor)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc}, runes("/"), runes("zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.rows) != 0 {
		t.Fatalf("Expected no rows, got %d", len(m.rows))
	}
	// Toggles on an empty list are no-ops
	press(m, runes("c"), tea.KeyMsg{Type: tea.KeyUp})
	if !strings.Contains(m.View(), "No creos match the filter") {
		t.Error("Empty list should say so")
	}
}

func TestModel_SaveAndLoad(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, runes("L"))
	if m.status != "No Save Found" {
		t.Errorf("Expected 'No Save Found', got %q", m.status)
	}

	press(m, runes("c"), runes("w"))
	if m.status != "Saved 3 Creo(s) successfully!" {
		t.Errorf("Unexpected save status %q", m.status)
	}
	if _, err := os.Stat(m.savePath); err != nil {
		t.Fatalf("Save file missing: %v", err)
	}

	store.Reset()
	press(m, runes("L"))
	if m.status != "Loaded 3 Creo(s) successfully!" {
		t.Errorf("Unexpected load status %q", m.status)
	}
	if !store.Get("000", model.FlagCaught) {
		t.Error("Expected 000 caught after load")
	}
}

func TestModel_OpenLink(t *testing.T) {
	m, _, opened := newTestModel(t)

	press(m, runes("o"))
	if len(*opened) != 1 || (*opened)[0] != "https://evocreo.fandom.com/wiki/Deor_Mata" {
		t.Errorf("Unexpected opened links %v", *opened)
	}

	m.openURL = func(*url.URL) error { return errors.New("no browser") }
	press(m, runes("o"))
	if !m.statusErr {
		t.Error("Failed open should report an error")
	}
}

func TestModel_ExternalChangesRerender(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, runes("3"))
	if err := store.Set("000", model.FlagSeen, true); err != nil {
		t.Fatal(err)
	}
	if len(m.rows) != 2 {
		t.Errorf("Missing only should drop 000 after it is seen, got %d rows", len(m.rows))
	}
}

func TestModel_WindowSizeAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	if m.listHeight() != 4 {
		t.Errorf("Expected 4 list lines, got %d", m.listHeight())
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit should return tea.Quit")
	}
}

func TestModel_CtrlCQuitsWhileFiltering(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, runes("/"), runes("q"))
	if !m.filtering {
		t.Fatal("Expected filter input to keep focus")
	}
	if m.filter.Value() != "q" {
		t.Errorf("q should be typed into the filter, got %q", m.filter.Value())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should return tea.Quit while filtering")
	}
}
