package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeySearchDebounce = "search_debounce_ms"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultSearchDebounceMs = 300
	MaxSearchDebounceMs     = 2000
)

// Settings manages user preferences that survive restarts
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetSearchDebounceMs returns the delay between the last keystroke and the search
func (s *Settings) GetSearchDebounceMs() int {
	value := s.app.Preferences().IntWithFallback(KeySearchDebounce, DefaultSearchDebounceMs)
	switch {
	case value < 0:
		s.SetSearchDebounceMs(DefaultSearchDebounceMs)
		return DefaultSearchDebounceMs
	case value > MaxSearchDebounceMs:
		// Hand-edited preferences may exceed the range the setter enforces.
		s.SetSearchDebounceMs(MaxSearchDebounceMs)
		return MaxSearchDebounceMs
	}
	return value
}

// SetSearchDebounceMs sets the search debounce, clamped to [0, MaxSearchDebounceMs]
func (s *Settings) SetSearchDebounceMs(ms int) {
	if ms < 0 {
		ms = 0
	}
	if ms > MaxSearchDebounceMs {
		ms = MaxSearchDebounceMs
	}
	s.app.Preferences().SetInt(KeySearchDebounce, ms)
}

// GetSearchDebounce returns the search debounce as a duration
func (s *Settings) GetSearchDebounce() time.Duration {
	return time.Duration(s.GetSearchDebounceMs()) * time.Millisecond
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
		"ru":     "Русский",
	}
}
