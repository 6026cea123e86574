package config

import (
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/model"
	"github.com/creodex/creo-checklist/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogPath  = "catalog_path"
	KeyLastSavePath = "last_save_path"
	KeyWikiBaseURL  = "wiki_base_url"
	KeyLanguage     = "app_language"
	KeyShowIcons    = "show_icons"
)

// Default values
const (
	DefaultCatalogFile = catalog.DefaultFile
	DefaultWikiBaseURL = model.DefaultWikiBaseURL
	DefaultLanguage    = "system"
	DefaultShowIcons   = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCatalogPath returns the configured catalog file. Without a stored value
// it looks for the default catalog in the working directory and beside the
// executable; the lookup result is not persisted.
func (s *Settings) GetCatalogPath() string {
	path := s.app.Preferences().String(KeyCatalogPath)
	if path != "" {
		return path
	}
	if found, err := platform.FindDataFile(DefaultCatalogFile); err == nil {
		return found
	}
	return filepath.Join(platform.ExecutableDir(), DefaultCatalogFile)
}

// SetCatalogPath sets the catalog file; an empty path restores the lookup
func (s *Settings) SetCatalogPath(path string) {
	s.app.Preferences().SetString(KeyCatalogPath, strings.TrimSpace(path))
}

// GetLastSavePath returns the save file last used with Save As / Open, if any
func (s *Settings) GetLastSavePath() string {
	return s.app.Preferences().String(KeyLastSavePath)
}

// SetLastSavePath remembers the save file chosen in a file dialog
func (s *Settings) SetLastSavePath(path string) {
	s.app.Preferences().SetString(KeyLastSavePath, path)
}

// GetWikiBaseURL returns the base URL entry names are linked under
func (s *Settings) GetWikiBaseURL() string {
	base := s.app.Preferences().String(KeyWikiBaseURL)
	if base == "" {
		s.SetWikiBaseURL(DefaultWikiBaseURL)
		return DefaultWikiBaseURL
	}
	return base
}

// SetWikiBaseURL sets the wiki base URL; invalid or non-web URLs fall back
// to the default
func (s *Settings) SetWikiBaseURL(base string) {
	base = strings.TrimSpace(base)
	if !ValidWikiBaseURL(base) {
		base = DefaultWikiBaseURL
	}
	s.app.Preferences().SetString(KeyWikiBaseURL, base)
}

// ValidWikiBaseURL reports whether base is an absolute http(s) URL
func ValidWikiBaseURL(base string) bool {
	u, err := url.Parse(base)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetShowIcons returns whether the icon column is shown
func (s *Settings) GetShowIcons() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowIcons, DefaultShowIcons)
}

// SetShowIcons sets whether the icon column is shown
func (s *Settings) SetShowIcons(show bool) {
	s.app.Preferences().SetBool(KeyShowIcons, show)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
