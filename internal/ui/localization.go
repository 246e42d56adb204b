package ui

import (
	"fmt"

	"github.com/ytget/rm-browser/internal/browse"
	"github.com/ytget/rm-browser/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyView              = "view"
	KeyLanguage          = "language"
	KeyReload            = "reload"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySearchPlaceholder = "search_placeholder"
	KeyClearSearch       = "clear_search"
	KeyStatusAll         = "status_all"
	KeyStatusAlive       = "status_alive"
	KeyStatusDead        = "status_dead"
	KeyStatusUnknown     = "status_unknown"
	KeyFavoritesOnly     = "favorites_only"
	KeyPrevPage          = "prev_page"
	KeyNextPage          = "next_page"
	KeyPageOf            = "page_of"
	KeyPage              = "page"
	KeyMessageAll        = "message_all"
	KeyMessageAlive      = "message_alive"
	KeyMessageDead       = "message_dead"
	KeyMessageUnknown    = "message_unknown"
	KeyMessageNoResults  = "message_no_results"
	KeyHeading           = "heading"
	KeyHeadingCount      = "heading_count"
	KeyLoading           = "loading"
	KeyLoadFailed        = "load_failed"
	KeyNoFavoritesHere   = "no_favorites_here"
	KeySearchDelay       = "search_delay"
	KeyInterface         = "interface"
	KeySearch            = "search"
	KeySettingsSaved     = "settings_saved"
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

// Format returns localized text for key with args applied
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
		"es": "Español",
		"ru": "Русский",
	}
}

// MessageText returns the heading for a list kind, or the no-results sentence
func (l *Localization) MessageText(kind browse.MessageKind) string {
	switch kind {
	case browse.MessageNoResults:
		return l.GetText(KeyMessageNoResults)
	case browse.MessageAlive:
		return l.GetText(KeyMessageAlive)
	case browse.MessageDead:
		return l.GetText(KeyMessageDead)
	case browse.MessageUnknown:
		return l.GetText(KeyMessageUnknown)
	case browse.MessageAll:
		return l.GetText(KeyMessageAll)
	default:
		return ""
	}
}

// SummaryText returns the localized summary line, e.g. "Dead characters (55):"
func (l *Localization) SummaryText(ind browse.Indicator) string {
	message := l.MessageText(ind.Message)
	switch {
	case !ind.Message.IsHeading():
		return message
	case ind.TotalCount > 0:
		return l.Format(KeyHeadingCount, message, ind.TotalCount)
	default:
		return l.Format(KeyHeading, message)
	}
}

// PageText returns "Page X of Y", or "Page X" when the total is unknown
func (l *Localization) PageText(ind browse.Indicator) string {
	if ind.TotalPages > 0 {
		return l.Format(KeyPageOf, ind.Page, ind.TotalPages)
	}
	return l.Format(KeyPage, ind.Page)
}

// StatusFilterText returns the chip label for a status filter
func (l *Localization) StatusFilterText(sf model.StatusFilter) string {
	switch sf {
	case model.StatusAlive:
		return l.GetText(KeyStatusAlive)
	case model.StatusDead:
		return l.GetText(KeyStatusDead)
	case model.StatusUnknown:
		return l.GetText(KeyStatusUnknown)
	default:
		return l.GetText(KeyStatusAll)
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Character Browser",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyView:              "View",
		KeyLanguage:          "Language",
		KeyReload:            "Reload",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySearchPlaceholder: "Search by name...",
		KeyClearSearch:       "Clear",
		KeyStatusAll:         "All",
		KeyStatusAlive:       "Alive",
		KeyStatusDead:        "Dead",
		KeyStatusUnknown:     "Unknown",
		KeyFavoritesOnly:     "Favorites only",
		KeyPrevPage:          "Previous",
		KeyNextPage:          "Next",
		KeyPageOf:            "Page %d of %d",
		KeyPage:              "Page %d",
		KeyMessageAll:        browse.MessageAll.Heading(),
		KeyMessageAlive:      browse.MessageAlive.Heading(),
		KeyMessageDead:       browse.MessageDead.Heading(),
		KeyMessageUnknown:    browse.MessageUnknown.Heading(),
		KeyMessageNoResults:  browse.NoResultsText,
		KeyHeading:           browse.HeadingFormat,
		KeyHeadingCount:      browse.HeadingCountFormat,
		KeyLoading:           "Loading characters...",
		KeyLoadFailed:        "Could not load characters",
		KeyNoFavoritesHere:   "No favorites on this page.",
		KeySearchDelay:       "Search delay (ms)",
		KeyInterface:         "Interface",
		KeySearch:            "Search",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:          "Explorador de personajes",
		KeySettings:          "Ajustes",
		KeyFile:              "Archivo",
		KeyView:              "Ver",
		KeyLanguage:          "Idioma",
		KeyReload:            "Recargar",
		KeySave:              "Guardar",
		KeyCancel:            "Cancelar",
		KeySearchPlaceholder: "Buscar por nombre...",
		KeyClearSearch:       "Limpiar",
		KeyStatusAll:         "Todos",
		KeyStatusAlive:       "Vivos",
		KeyStatusDead:        "Muertos",
		KeyStatusUnknown:     "Desconocidos",
		KeyFavoritesOnly:     "Solo favoritos",
		KeyPrevPage:          "Anterior",
		KeyNextPage:          "Siguiente",
		KeyPageOf:            "Página %d de %d",
		KeyPage:              "Página %d",
		KeyMessageAll:        "Lista de todos los personajes",
		KeyMessageAlive:      "Lista de personajes vivos",
		KeyMessageDead:       "Lista de personajes muertos",
		KeyMessageUnknown:    "Lista de personajes desconocidos",
		KeyMessageNoResults:  "No hay resultados para tu búsqueda/filtro.",
		KeyHeading:           "%s:",
		KeyHeadingCount:      "%s (%d):",
		KeyLoading:           "Cargando personajes...",
		KeyLoadFailed:        "No se pudieron cargar los personajes",
		KeyNoFavoritesHere:   "No hay favoritos en esta página.",
		KeySearchDelay:       "Retardo de búsqueda (ms)",
		KeyInterface:         "Interfaz",
		KeySearch:            "Búsqueda",
		KeySettingsSaved:     "¡Ajustes guardados!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Каталог персонажей",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyView:              "Вид",
		KeyLanguage:          "Язык",
		KeyReload:            "Обновить",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySearchPlaceholder: "Поиск по имени...",
		KeyClearSearch:       "Очистить",
		KeyStatusAll:         "Все",
		KeyStatusAlive:       "Живые",
		KeyStatusDead:        "Мёртвые",
		KeyStatusUnknown:     "Неизвестно",
		KeyFavoritesOnly:     "Только избранное",
		KeyPrevPage:          "Назад",
		KeyNextPage:          "Вперёд",
		KeyPageOf:            "Страница %d из %d",
		KeyPage:              "Страница %d",
		KeyMessageAll:        "Все персонажи",
		KeyMessageAlive:      "Живые персонажи",
		KeyMessageDead:       "Мёртвые персонажи",
		KeyMessageUnknown:    "Персонажи с неизвестным статусом",
		KeyMessageNoResults:  "Ничего не найдено по вашему запросу/фильтру.",
		KeyHeading:           "%s:",
		KeyHeadingCount:      "%s (всего %d):",
		KeyLoading:           "Загрузка персонажей...",
		KeyLoadFailed:        "Не удалось загрузить персонажей",
		KeyNoFavoritesHere:   "На этой странице нет избранных.",
		KeySearchDelay:       "Задержка поиска (мс)",
		KeyInterface:         "Интерфейс",
		KeySearch:            "Поиск",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}
}
