package ui

import (
	"errors"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/creodex/creo-checklist/internal/config"
)

// SettingsResult reports what a saved settings dialog changed
type SettingsResult struct {
	CatalogChanged  bool
	LanguageChanged bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsResult)

	// UI components
	catalogEntry   *widget.Entry
	wikiEntry      *widget.Entry
	showIconsCheck *widget.Check
	languageSelect *widget.Select

	// languageCodes maps select labels back to language codes
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(SettingsResult)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(SettingsResult)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.catalogEntry = widget.NewEntry()
	sd.catalogEntry.SetPlaceHolder(config.DefaultCatalogFile)
	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseCatalog)
	catalogRow := container.NewBorder(nil, nil, nil, browseBtn, sd.catalogEntry)

	sd.wikiEntry = widget.NewEntry()
	sd.wikiEntry.SetPlaceHolder(config.DefaultWikiBaseURL)
	sd.wikiEntry.Validator = func(s string) error {
		if s == "" || config.ValidWikiBaseURL(s) {
			return nil
		}
		return errors.New("URL must start with http:// or https://")
	}

	sd.showIconsCheck = widget.NewCheck(t(KeyShowIcons), nil)

	options := sd.settings.GetLanguageOptions()
	sd.languageCodes = make(map[string]string, len(options))
	labels := make([]string, 0, len(options))
	for code, label := range options {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	slices.Sort(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyCatalogPath)+":"),
		catalogRow,
		widget.NewLabel(t(KeyWikiBaseURL)+":"),
		sd.wikiEntry,
		sd.showIconsCheck,
		widget.NewSeparator(),
		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.catalogEntry.SetText(sd.settings.GetCatalogPath())
	sd.wikiEntry.SetText(sd.settings.GetWikiBaseURL())
	sd.showIconsCheck.SetChecked(sd.settings.GetShowIcons())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseCatalog picks a JSON or YAML catalog file
func (sd *SettingsDialog) onBrowseCatalog() {
	open := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		sd.catalogEntry.SetText(r.URI().Path())
	}, sd.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".json", ".yaml", ".yml"}))
	open.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	var result SettingsResult

	catalogPath := sd.catalogEntry.Text
	if catalogPath != sd.settings.GetCatalogPath() {
		sd.settings.SetCatalogPath(catalogPath)
		result.CatalogChanged = true
	}

	// SetWikiBaseURL falls back to the default for invalid input
	sd.settings.SetWikiBaseURL(sd.wikiEntry.Text)
	sd.settings.SetShowIcons(sd.showIconsCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		result.LanguageChanged = true
	}

	if sd.onSaved != nil {
		sd.onSaved(result)
	}
}
