package ui

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"net/url"
	"path/filepath"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/checklist"
	"github.com/creodex/creo-checklist/internal/config"
	"github.com/creodex/creo-checklist/internal/model"
	"github.com/creodex/creo-checklist/internal/view"
)

// RootUI represents the main checklist window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	catalog      *catalog.Catalog
	store        *checklist.Store
	icons        *iconCache
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	// openURL opens entry links; replaced in tests
	openURL func(*url.URL) error

	criteria    view.Criteria
	rows        []view.Row
	unsubscribe func()

	// Filter bar
	filterLabel      *widget.Label
	filterEntry      *widget.Entry
	seenOnlyCheck    *widget.Check
	caughtOnlyCheck  *widget.Check
	missingOnlyCheck *widget.Check

	// Bulk toggles
	seenAllBtn   *widget.Button
	caughtAllBtn *widget.Button

	// Column headers
	seenHeader   *widget.Label
	caughtHeader *widget.Label
	idHeader     *widget.Label
	iconHeader   *widget.Label
	nameHeader   *widget.Label

	entryList      *widget.List
	noMatchesLabel *widget.Label

	// Footer
	summaryLabel  *widget.Label
	visibleLabel  *widget.Label
	metadataLabel *widget.Label
}

// NewRootUI creates the checklist window content for cat and store
func NewRootUI(window fyne.Window, app fyne.App, cat *catalog.Catalog, store *checklist.Store, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		catalog:      cat,
		store:        store,
		icons:        newIconCache(catalog.NewIconResolver(cat.Dir(), logger)),
		settings:     settings,
		localization: localization,
		logger:       logger,
		openURL:      app.OpenURL,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.unsubscribe = store.Subscribe(ui.onStoreChange)
	ui.refreshRows()

	logger.Debug("checklist window ready",
		zap.Int("entries", cat.Len()),
		zap.String("catalog", cat.Path()))
	return ui
}

// Close stops listening for store changes
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
		ui.unsubscribe = nil
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	ui.createShortcuts()

	t := ui.localization.GetText

	// Filter bar
	ui.filterLabel = widget.NewLabel(t(KeyFilterLabel))
	ui.filterEntry = widget.NewEntry()
	ui.filterEntry.SetPlaceHolder(t(KeyFilterPlaceholder))
	ui.filterEntry.OnChanged = func(query string) {
		ui.criteria.Query = query
		ui.refreshRows()
	}

	ui.seenOnlyCheck = widget.NewCheck(t(KeySeenOnly), func(on bool) {
		ui.criteria.SeenOnly = on
		ui.refreshRows()
	})
	ui.caughtOnlyCheck = widget.NewCheck(t(KeyCaughtOnly), func(on bool) {
		ui.criteria.CaughtOnly = on
		ui.refreshRows()
	})
	ui.missingOnlyCheck = widget.NewCheck(t(KeyMissingOnly), func(on bool) {
		ui.criteria.MissingOnly = on
		ui.refreshRows()
	})

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var leading fyne.CanvasObject = ui.filterLabel
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		leading = container.NewHBox(logoImage, ui.filterLabel)
		ui.window.SetIcon(logo)
	}

	filterRow := container.NewBorder(nil, nil, leading, settingsBtn, ui.filterEntry)
	flagRow := container.NewHBox(ui.seenOnlyCheck, ui.caughtOnlyCheck, ui.missingOnlyCheck)

	// Bulk toggles reflect the current state of every entry
	ui.seenAllBtn = widget.NewButton("", func() { ui.onToggleAll(model.FlagSeen) })
	ui.caughtAllBtn = widget.NewButton("", func() { ui.onToggleAll(model.FlagCaught) })
	bulkRow := container.NewHBox(ui.seenAllBtn, ui.caughtAllBtn)

	// Column headers line up with EntryRow
	ui.seenHeader = newHeaderLabel(t(KeyColSeen))
	ui.caughtHeader = newHeaderLabel(t(KeyColCaught))
	ui.idHeader = newHeaderLabel(t(KeyColID))
	ui.iconHeader = newHeaderLabel(t(KeyColIcon))
	ui.nameHeader = newHeaderLabel(t(KeyColName))
	header := container.NewBorder(nil, nil,
		container.NewHBox(
			fixedWidth(CheckColumnWidth, ui.seenHeader),
			fixedWidth(CheckColumnWidth, ui.caughtHeader),
			fixedWidth(IDColumnWidth, ui.idHeader),
			fixedWidth(IconColumnWidth, ui.iconHeader),
		),
		nil,
		ui.nameHeader,
	)

	top := container.NewVBox(filterRow, flagRow, bulkRow, widget.NewSeparator(), header)

	ui.entryList = widget.NewList(
		func() int {
			return len(ui.rows)
		},
		func() fyne.CanvasObject { return ui.createEntryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateEntryItem(id, obj) },
	)

	ui.noMatchesLabel = widget.NewLabel(t(KeyNoMatches))
	ui.noMatchesLabel.Alignment = fyne.TextAlignCenter
	ui.noMatchesLabel.Hide()

	// Footer
	ui.summaryLabel = widget.NewLabel("")
	ui.visibleLabel = widget.NewLabel("")
	ui.visibleLabel.Alignment = fyne.TextAlignTrailing
	ui.metadataLabel = widget.NewLabel(ui.catalog.Metadata().Footer())
	ui.metadataLabel.TextStyle = fyne.TextStyle{Italic: true}
	ui.metadataLabel.Truncation = fyne.TextTruncateEllipsis
	if ui.catalog.Metadata().IsEmpty() {
		ui.metadataLabel.Hide()
	}
	footer := container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, ui.summaryLabel, ui.visibleLabel),
		ui.metadataLabel,
	)

	content := container.NewBorder(
		top,    // top
		footer, // bottom
		nil,    // left
		nil,    // right
		container.NewStack(ui.entryList, container.NewCenter(ui.noMatchesLabel)),
	)

	// Keep the window from shrinking below a usable size
	minSpacer := canvas.NewRectangle(color.Transparent)
	minSpacer.SetMinSize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	ui.window.SetContent(container.NewStack(minSpacer, content))
}

func newHeaderLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.TextStyle = fyne.TextStyle{Bold: true}
	return l
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	fileMenu := fyne.NewMenu(t(KeyFile),
		fyne.NewMenuItem(t(KeyQuickSave), ui.onQuickSave),
		fyne.NewMenuItem(t(KeyQuickLoad), ui.onQuickLoad),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeySaveAs), ui.onSaveAs),
		fyne.NewMenuItem(t(KeyOpenSave), ui.onOpenSave),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyReset), ui.onReset),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeySettings), ui.onShowSettings),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(t(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(languages)) {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// createShortcuts binds quick save and load to Ctrl/Cmd+S and Ctrl/Cmd+L
func (ui *RootUI) createShortcuts() {
	c := ui.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { ui.onQuickSave() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyL, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { ui.onQuickLoad() })
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))

	ui.filterLabel.SetText(t(KeyFilterLabel))
	ui.filterEntry.SetPlaceHolder(t(KeyFilterPlaceholder))
	ui.seenOnlyCheck.Text = t(KeySeenOnly)
	ui.seenOnlyCheck.Refresh()
	ui.caughtOnlyCheck.Text = t(KeyCaughtOnly)
	ui.caughtOnlyCheck.Refresh()
	ui.missingOnlyCheck.Text = t(KeyMissingOnly)
	ui.missingOnlyCheck.Refresh()

	ui.seenHeader.SetText(t(KeyColSeen))
	ui.caughtHeader.SetText(t(KeyColCaught))
	ui.idHeader.SetText(t(KeyColID))
	ui.iconHeader.SetText(t(KeyColIcon))
	ui.nameHeader.SetText(t(KeyColName))
	ui.noMatchesLabel.SetText(t(KeyNoMatches))

	ui.refreshRows()
}

// onStoreChange re-renders after any state mutation
func (ui *RootUI) onStoreChange(c checklist.Change) {
	if !c.IsBulk() {
		ui.logger.Debug("entry changed",
			zap.String("id", c.ID),
			zap.Bool("seen", c.Flags.Seen),
			zap.Bool("caught", c.Flags.Caught))
	}
	ui.refreshRows()
}

// refreshRows recomputes the visible rows, bulk buttons and footer
func (ui *RootUI) refreshRows() {
	ui.rows = view.Apply(ui.criteria, ui.catalog.Entries(), ui.store)

	if len(ui.rows) == 0 {
		ui.noMatchesLabel.Show()
	} else {
		ui.noMatchesLabel.Hide()
	}

	ui.updateBulkButtons()
	ui.updateFooter()
	ui.entryList.Refresh()
}

// updateBulkButtons labels each bulk toggle with the action it will take
func (ui *RootUI) updateBulkButtons() {
	t := ui.localization.GetText

	if ui.store.AllSet(model.FlagSeen) {
		ui.seenAllBtn.SetText(t(KeyUncheckAllSeen))
	} else {
		ui.seenAllBtn.SetText(t(KeyCheckAllSeen))
	}

	if ui.store.AllSet(model.FlagCaught) {
		ui.caughtAllBtn.SetText(t(KeyUncheckAllCaught))
	} else {
		ui.caughtAllBtn.SetText(t(KeyCheckAllCaught))
	}
}

func (ui *RootUI) updateFooter() {
	sum := ui.store.Summary()
	ui.summaryLabel.SetText(fmt.Sprintf(SummaryFormat, sum.Seen, sum.Total, sum.Caught, sum.Missing))

	if ui.criteria.IsZero() {
		ui.visibleLabel.SetText("")
	} else {
		ui.visibleLabel.SetText(fmt.Sprintf(VisibleFormat, len(ui.rows)))
	}
}

// createEntryItem creates a new list item widget
func (ui *RootUI) createEntryItem() fyne.CanvasObject {
	row := NewEntryRow()
	row.SetCallbacks(ui.onSetFlag, ui.onOpenLink)
	return row
}

// updateEntryItem fills a recycled list item with the row at id
func (ui *RootUI) updateEntryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.rows) {
		return
	}
	entryRow, ok := item.(*EntryRow)
	if !ok {
		return
	}

	row := ui.rows[id]
	showIcons := ui.settings.GetShowIcons()

	var icon fyne.Resource
	if showIcons {
		icon = ui.icons.Resource(row.Entry)
	}
	entryRow.SetRow(row, icon, showIcons)
}

// onSetFlag applies a checkbox change to the store
func (ui *RootUI) onSetFlag(id string, flag model.Flag, value bool) {
	if err := ui.store.Set(id, flag, value); err != nil {
		if errors.Is(err, checklist.ErrSeenLocked) {
			ui.logger.Debug("seen is locked", zap.String("id", id))
			ui.refreshRows()
			return
		}
		ui.logger.Error("failed to update entry", zap.String("id", id), zap.Error(err))
		dialog.ShowError(err, ui.window)
		ui.refreshRows()
	}
}

// onToggleAll sets or clears flag on every entry
func (ui *RootUI) onToggleAll(flag model.Flag) {
	value, err := ui.store.ToggleAll(flag)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.logger.Debug("bulk toggle", zap.Stringer("flag", flag), zap.Bool("value", value))
}

// onOpenLink opens the wiki page for entry in the system browser
func (ui *RootUI) onOpenLink(entry model.Entry) {
	link, err := entry.WikiURL(ui.settings.GetWikiBaseURL())
	if err == nil {
		err = ui.openURL(link)
	}
	if err != nil {
		ui.logger.Warn("failed to open link", zap.String("id", entry.ID), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningLink), err), ui.window)
	}
}

// quickSavePath is the fixed save file beside the catalog
func (ui *RootUI) quickSavePath() string {
	return checklist.DefaultSavePath(ui.catalog.Dir())
}

// onQuickSave writes the checklist to the quick-save file
func (ui *RootUI) onQuickSave() {
	path := ui.quickSavePath()
	n, err := checklist.SaveFileAt(path, ui.store)
	if err != nil {
		ui.logger.Error("save failed", zap.String("path", path), zap.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}
	ui.logger.Info("checklist saved", zap.String("path", path), zap.Int("entries", n))
	ui.showSaved(n)
}

// onQuickLoad reads the quick-save file into the checklist
func (ui *RootUI) onQuickLoad() {
	path := ui.quickSavePath()
	res, err := checklist.LoadFileAt(path, ui.store)
	ui.handleLoad(path, res, err)
}

// onSaveAs writes the checklist to a file chosen by the user
func (ui *RootUI) onSaveAs() {
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()

		path := w.URI().Path()
		n, err := checklist.Write(w, ui.store)
		if err != nil {
			ui.logger.Error("save failed", zap.String("path", path), zap.Error(err))
			dialog.ShowError(err, ui.window)
			return
		}
		ui.settings.SetLastSavePath(path)
		ui.logger.Info("checklist saved", zap.String("path", path), zap.Int("entries", n))
		ui.showSaved(n)
	}, ui.window)

	save.SetFileName(checklist.DefaultSaveFileName)
	save.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	ui.setDialogLocation(save)
	save.Show()
}

// onOpenSave reads a save file chosen by the user
func (ui *RootUI) onOpenSave() {
	open := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		path := r.URI().Path()
		res, err := checklist.Read(r, ui.store)
		if err == nil {
			ui.settings.SetLastSavePath(path)
		}
		ui.handleLoad(path, res, err)
	}, ui.window)

	open.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	ui.setDialogLocation(open)
	open.Show()
}

// setDialogLocation starts file dialogs in the folder last saved to, or the
// catalog folder
func (ui *RootUI) setDialogLocation(d *dialog.FileDialog) {
	dir := ui.catalog.Dir()
	if last := ui.settings.GetLastSavePath(); last != "" {
		dir = filepath.Dir(last)
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	d.SetLocation(lister)
}

func (ui *RootUI) handleLoad(path string, res checklist.LoadResult, err error) {
	t := ui.localization.GetText

	switch {
	case errors.Is(err, checklist.ErrNoSave):
		ui.logger.Info("no save file", zap.String("path", path))
		dialog.ShowInformation(t(KeyNoSaveTitle), t(KeyNoSaveMessage), ui.window)
	case err != nil:
		ui.logger.Error("load failed", zap.String("path", path), zap.Error(err))
		dialog.ShowError(err, ui.window)
	default:
		if len(res.Unknown) > 0 {
			ui.logger.Debug("ignored unknown ids in save file",
				zap.String("path", path),
				zap.Strings("ids", res.Unknown))
		}
		ui.logger.Info("checklist loaded", zap.String("path", path), zap.Int("entries", res.Applied))
		dialog.ShowInformation(t(KeyLoadedTitle), ui.localization.Format(KeyLoadedMessage, res.Applied), ui.window)
	}
}

func (ui *RootUI) showSaved(n int) {
	dialog.ShowInformation(ui.localization.GetText(KeySavedTitle),
		ui.localization.Format(KeySavedMessage, n), ui.window)
}

// onReset clears every mark after confirmation
func (ui *RootUI) onReset() {
	t := ui.localization.GetText
	dialog.ShowConfirm(t(KeyReset), t(KeyResetConfirm), func(ok bool) {
		if ok {
			ui.store.Reset()
		}
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved(result SettingsResult) {
	t := ui.localization.GetText

	if result.LanguageChanged {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}
	ui.refreshRows()

	message := t(KeySettingsSaved)
	if result.CatalogChanged {
		message = t(KeyRestartRequired)
	}
	dialog.ShowInformation(t(KeySettings), message, ui.window)
}
