package tui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/checklist"
	"github.com/creodex/creo-checklist/internal/model"
	"github.com/creodex/creo-checklist/internal/platform"
	"github.com/creodex/creo-checklist/internal/view"
)

// Layout
const (
	defaultHeight = 24
	chromeLines   = 8 // title, filter, flags, header, status, footer, help, spacing
	minListLines  = 3
	idWidth       = 6
)

// Options configures the terminal checklist
type Options struct {
	SavePath    string // quick-save file; defaults to checklist_save.json beside the catalog
	WikiBaseURL string
	Logger      *zap.Logger
	OpenURL     func(*url.URL) error
}

// Model is the bubbletea model of the checklist
type Model struct {
	catalog  *catalog.Catalog
	store    *checklist.Store
	savePath string
	wikiBase string
	logger   *zap.Logger
	openURL  func(*url.URL) error

	keys   KeyMap
	help   help.Model
	filter textinput.Model

	filtering bool
	criteria  view.Criteria
	rows      []view.Row
	cursor    int
	offset    int
	width     int
	height    int

	status    string
	statusErr bool

	unsubscribe func()
}

// New creates the model for cat and store. The model re-renders on every
// store change, including changes made outside the TUI.
func New(cat *catalog.Catalog, store *checklist.Store, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.SavePath == "" {
		opts.SavePath = checklist.DefaultSavePath(cat.Dir())
	}
	if opts.WikiBaseURL == "" {
		opts.WikiBaseURL = model.DefaultWikiBaseURL
	}
	if opts.OpenURL == nil {
		opts.OpenURL = platform.OpenURL
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name or id"
	ti.CharLimit = 64

	m := &Model{
		catalog:  cat,
		store:    store,
		savePath: opts.SavePath,
		wikiBase: opts.WikiBaseURL,
		logger:   opts.Logger,
		openURL:  opts.OpenURL,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		filter:   ti,
		height:   defaultHeight,
	}
	m.unsubscribe = store.Subscribe(func(checklist.Change) { m.refresh() })
	m.refresh()
	return m
}

// Run starts the program on the terminal and blocks until the user quits
func Run(cat *catalog.Catalog, store *checklist.Store, opts Options) error {
	m := New(cat, store, opts)
	defer m.Close()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Close stops listening for store changes
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.setQuery("")
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.setQuery(m.filter.Value())
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listHeight())
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.rows))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows))

	case key.Matches(msg, m.keys.ToggleSeen):
		m.toggle(model.FlagSeen)
	case key.Matches(msg, m.keys.ToggleCaught):
		m.toggle(model.FlagCaught)
	case key.Matches(msg, m.keys.AllSeen):
		m.toggleAll(model.FlagSeen)
	case key.Matches(msg, m.keys.AllCaught):
		m.toggleAll(model.FlagCaught)

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.SeenOnly):
		m.criteria.SeenOnly = !m.criteria.SeenOnly
		m.refresh()
	case key.Matches(msg, m.keys.CaughtOnly):
		m.criteria.CaughtOnly = !m.criteria.CaughtOnly
		m.refresh()
	case key.Matches(msg, m.keys.MissingOnly):
		m.criteria.MissingOnly = !m.criteria.MissingOnly
		m.refresh()
	case key.Matches(msg, m.keys.ClearFilter):
		m.filter.SetValue("")
		m.criteria = view.Criteria{}
		m.refresh()

	case key.Matches(msg, m.keys.Open):
		m.openCurrent()
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Load):
		m.load()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) setQuery(q string) {
	m.criteria.Query = q
	m.refresh()
}

// refresh recomputes the visible rows and keeps the cursor in range
func (m *Model) refresh() {
	m.rows = view.Apply(m.criteria, m.catalog.Entries(), m.store)
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) listHeight() int {
	h := m.height - chromeLines
	if m.help.ShowAll {
		h -= len(m.keys.FullHelp()[0]) - 1
	}
	if h < minListLines {
		h = minListLines
	}
	return h
}

// current returns the row under the cursor
func (m *Model) current() (view.Row, bool) {
	if len(m.rows) == 0 {
		return view.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) toggle(flag model.Flag) {
	row, ok := m.current()
	if !ok {
		return
	}
	if err := m.store.Toggle(row.Entry.ID, flag); err != nil {
		if errors.Is(err, checklist.ErrSeenLocked) {
			m.setStatus("Seen stays checked while caught is checked", true)
			return
		}
		m.setStatus(err.Error(), true)
	}
}

func (m *Model) toggleAll(flag model.Flag) {
	value, err := m.store.ToggleAll(flag)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	verb := "Unchecked"
	if value {
		verb = "Checked"
	}
	m.setStatus(fmt.Sprintf("%s all %s", verb, flag), false)
}

func (m *Model) openCurrent() {
	row, ok := m.current()
	if !ok {
		return
	}
	link, err := row.Entry.WikiURL(m.wikiBase)
	if err == nil {
		err = m.openURL(link)
	}
	if err != nil {
		m.logger.Warn("failed to open link", zap.String("id", row.Entry.ID), zap.Error(err))
		m.setStatus("Could not open link: "+err.Error(), true)
		return
	}
	m.setStatus("Opened "+link.String(), false)
}

func (m *Model) save() {
	n, err := checklist.SaveFileAt(m.savePath, m.store)
	if err != nil {
		m.logger.Error("save failed", zap.String("path", m.savePath), zap.Error(err))
		m.setStatus(err.Error(), true)
		return
	}
	m.logger.Info("checklist saved", zap.String("path", m.savePath), zap.Int("entries", n))
	m.setStatus(fmt.Sprintf("Saved %d Creo(s) successfully!", n), false)
}

func (m *Model) load() {
	res, err := checklist.LoadFileAt(m.savePath, m.store)
	switch {
	case errors.Is(err, checklist.ErrNoSave):
		m.setStatus("No Save Found", true)
	case err != nil:
		m.logger.Error("load failed", zap.String("path", m.savePath), zap.Error(err))
		m.setStatus(err.Error(), true)
	default:
		if len(res.Unknown) > 0 {
			m.logger.Debug("ignored unknown ids in save file", zap.Strings("ids", res.Unknown))
		}
		m.setStatus(fmt.Sprintf("Loaded %d Creo(s) successfully!", res.Applied), false)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	sum := m.store.Summary()
	b.WriteString(TitleStyle.Render("EvoCreo Checklist"))
	b.WriteString("  ")
	b.WriteString(SummaryStyle.Render(fmt.Sprintf("%d / %d seen · %d caught · %d missing",
		sum.Seen, sum.Total, sum.Caught, sum.Missing)))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(FilterStyle.Render(m.filter.View()))
	} else {
		b.WriteString(SummaryStyle.Render("/ filter by name or id"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderFlags())
	b.WriteString("\n")

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("  %-4s %-6s %-*s %s", "Seen", "Caught", idWidth, "ID", "Name")))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(EmptyStyle.Render("No creos match the filter"))
		b.WriteString("\n")
	} else {
		end := min(m.offset+m.listHeight(), len(m.rows))
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(i))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = ErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if footer := m.catalog.Metadata().Footer(); footer != "" {
		b.WriteString(FooterStyle.Render(footer))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return AppStyle.Render(b.String())
}

func (m *Model) renderFlags() string {
	flag := func(label string, on bool) string {
		if on {
			return ActiveFlagStyle.Render("[" + label + "]")
		}
		return SummaryStyle.Render(" " + label + " ")
	}
	parts := []string{
		flag("1 seen only", m.criteria.SeenOnly),
		flag("2 caught only", m.criteria.CaughtOnly),
		flag("3 missing only", m.criteria.MissingOnly),
	}
	if !m.criteria.IsZero() {
		parts = append(parts, SummaryStyle.Render(fmt.Sprintf("%d shown", len(m.rows))))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderRow(i int) string {
	row := m.rows[i]

	seen := BoxUnchecked
	switch {
	case !row.SeenEditable:
		seen = BoxLocked
	case row.Flags.Seen:
		seen = BoxChecked
	}
	caught := BoxUnchecked
	if row.Flags.Caught {
		caught = BoxChecked
	}

	line := fmt.Sprintf("%s  %s    %s %s",
		seen, caught,
		IDStyle.Render(fmt.Sprintf("%-*s", idWidth, row.Entry.ID)),
		row.Entry.DisplayName())

	if i == m.cursor {
		return CursorStyle.Render("> ") + SelectedRowStyle.Render(line)
	}
	return "  " + line
}
