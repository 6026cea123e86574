package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySettings          = "settings"
	KeyQuickSave         = "quick_save"
	KeyQuickLoad         = "quick_load"
	KeySaveAs            = "save_as"
	KeyOpenSave          = "open_save"
	KeyReset             = "reset"
	KeyResetConfirm      = "reset_confirm"
	KeyFilterLabel       = "filter_label"
	KeyFilterPlaceholder = "filter_placeholder"
	KeySeenOnly          = "seen_only"
	KeyCaughtOnly        = "caught_only"
	KeyMissingOnly       = "missing_only"
	KeyCheckAllSeen      = "check_all_seen"
	KeyUncheckAllSeen    = "uncheck_all_seen"
	KeyCheckAllCaught    = "check_all_caught"
	KeyUncheckAllCaught  = "uncheck_all_caught"
	KeyColSeen           = "col_seen"
	KeyColCaught         = "col_caught"
	KeyColID             = "col_id"
	KeyColIcon           = "col_icon"
	KeyColName           = "col_name"
	KeySavedTitle        = "saved_title"
	KeySavedMessage      = "saved_message"
	KeyLoadedTitle       = "loaded_title"
	KeyLoadedMessage     = "loaded_message"
	KeyNoSaveTitle       = "no_save_title"
	KeyNoSaveMessage     = "no_save_message"
	KeyErrorOpeningLink  = "error_opening_link"
	KeyNoMatches         = "no_matches"
	KeyCatalogPath       = "catalog_path"
	KeyWikiBaseURL       = "wiki_base_url"
	KeyShowIcons         = "show_icons"
	KeyBrowse            = "browse"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "EvoCreo Offline Checklist",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySettings:          "Settings",
		KeyQuickSave:         "Save Checklist",
		KeyQuickLoad:         "Load Checklist",
		KeySaveAs:            "Save Checklist As...",
		KeyOpenSave:          "Open Checklist...",
		KeyReset:             "Clear All Marks",
		KeyResetConfirm:      "Clear every seen and caught mark?",
		KeyFilterLabel:       "Filter by Name or ID:",
		KeyFilterPlaceholder: "Name or ID",
		KeySeenOnly:          "Seen only",
		KeyCaughtOnly:        "Caught only",
		KeyMissingOnly:       "Missing only",
		KeyCheckAllSeen:      "Check All Seen",
		KeyUncheckAllSeen:    "Uncheck All Seen",
		KeyCheckAllCaught:    "Check All Caught",
		KeyUncheckAllCaught:  "Uncheck All Caught",
		KeyColSeen:           "Seen",
		KeyColCaught:         "Caught",
		KeyColID:             "ID",
		KeyColIcon:           "Icon",
		KeyColName:           "Name",
		KeySavedTitle:        "Checklist Saved",
		KeySavedMessage:      "Saved %d Creo(s) successfully!",
		KeyLoadedTitle:       "Checklist Loaded",
		KeyLoadedMessage:     "Loaded %d Creo(s) successfully!",
		KeyNoSaveTitle:       "No Save Found",
		KeyNoSaveMessage:     "No saved checklist file was found.",
		KeyErrorOpeningLink:  "Could not open link",
		KeyNoMatches:         "No creos match the filter",
		KeyCatalogPath:       "Catalog File",
		KeyWikiBaseURL:       "Wiki Base URL",
		KeyShowIcons:         "Show icons",
		KeyBrowse:            "Browse",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Catalog changes take effect after restart.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "EvoCreo: офлайн-список",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySettings:          "Настройки",
		KeyQuickSave:         "Сохранить список",
		KeyQuickLoad:         "Загрузить список",
		KeySaveAs:            "Сохранить список как...",
		KeyOpenSave:          "Открыть список...",
		KeyReset:             "Снять все отметки",
		KeyResetConfirm:      "Снять все отметки «видел» и «поймал»?",
		KeyFilterLabel:       "Фильтр по имени или ID:",
		KeyFilterPlaceholder: "Имя или ID",
		KeySeenOnly:          "Только увиденные",
		KeyCaughtOnly:        "Только пойманные",
		KeyMissingOnly:       "Только отсутствующие",
		KeyCheckAllSeen:      "Отметить всех увиденными",
		KeyUncheckAllSeen:    "Снять «видел» у всех",
		KeyCheckAllCaught:    "Отметить всех пойманными",
		KeyUncheckAllCaught:  "Снять «поймал» у всех",
		KeyColSeen:           "Видел",
		KeyColCaught:         "Поймал",
		KeyColID:             "ID",
		KeyColIcon:           "Иконка",
		KeyColName:           "Имя",
		KeySavedTitle:        "Список сохранён",
		KeySavedMessage:      "Сохранено записей: %d",
		KeyLoadedTitle:       "Список загружен",
		KeyLoadedMessage:     "Загружено записей: %d",
		KeyNoSaveTitle:       "Сохранение не найдено",
		KeyNoSaveMessage:     "Файл сохранённого списка не найден.",
		KeyErrorOpeningLink:  "Не удалось открыть ссылку",
		KeyNoMatches:         "Нет записей, подходящих под фильтр",
		KeyCatalogPath:       "Файл каталога",
		KeyWikiBaseURL:       "Базовый URL вики",
		KeyShowIcons:         "Показывать иконки",
		KeyBrowse:            "Обзор",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Изменение каталога вступит в силу после перезапуска.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Checklist Offline EvoCreo",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySettings:          "Configurações",
		KeyQuickSave:         "Salvar Checklist",
		KeyQuickLoad:         "Carregar Checklist",
		KeySaveAs:            "Salvar Checklist Como...",
		KeyOpenSave:          "Abrir Checklist...",
		KeyReset:             "Limpar Todas as Marcações",
		KeyResetConfirm:      "Limpar todas as marcações de visto e capturado?",
		KeyFilterLabel:       "Filtrar por Nome ou ID:",
		KeyFilterPlaceholder: "Nome ou ID",
		KeySeenOnly:          "Somente vistos",
		KeyCaughtOnly:        "Somente capturados",
		KeyMissingOnly:       "Somente faltando",
		KeyCheckAllSeen:      "Marcar Todos Vistos",
		KeyUncheckAllSeen:    "Desmarcar Todos Vistos",
		KeyCheckAllCaught:    "Marcar Todos Capturados",
		KeyUncheckAllCaught:  "Desmarcar Todos Capturados",
		KeyColSeen:           "Visto",
		KeyColCaught:         "Capturado",
		KeyColID:             "ID",
		KeyColIcon:           "Ícone",
		KeyColName:           "Nome",
		KeySavedTitle:        "Checklist Salvo",
		KeySavedMessage:      "%d Creo(s) salvos com sucesso!",
		KeyLoadedTitle:       "Checklist Carregado",
		KeyLoadedMessage:     "%d Creo(s) carregados com sucesso!",
		KeyNoSaveTitle:       "Nenhum Salvamento",
		KeyNoSaveMessage:     "Nenhum arquivo de checklist salvo foi encontrado.",
		KeyErrorOpeningLink:  "Não foi possível abrir o link",
		KeyNoMatches:         "Nenhum creo corresponde ao filtro",
		KeyCatalogPath:       "Arquivo de Catálogo",
		KeyWikiBaseURL:       "URL Base da Wiki",
		KeyShowIcons:         "Mostrar ícones",
		KeyBrowse:            "Navegar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "Mudanças no catálogo valem após reiniciar.",
	}
}
