package storage

import (
	"fyne.io/fyne/v2"
)

// PreferencesStore keeps blobs as string preferences of a Fyne app.
// It is opt-in (storage.driver: preferences); SQLite is the durable default.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore creates a store over the given preferences
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Load returns the stored value, or ErrNotFound when the slot is empty
func (s *PreferencesStore) Load(key string) ([]byte, error) {
	if s.prefs == nil {
		return nil, ErrUnavailable
	}
	value := s.prefs.String(key)
	if value == "" {
		return nil, ErrNotFound
	}
	return []byte(value), nil
}

// Save overwrites the slot. Fyne flushes preferences to disk asynchronously,
// so a write made just before a crash may be lost.
func (s *PreferencesStore) Save(key string, value []byte) error {
	if s.prefs == nil {
		return ErrUnavailable
	}
	s.prefs.SetString(key, string(value))
	return nil
}
