package repository

import (
	"sync"

	"smart_hub/internal/models"
)

// MemorySettingsStore keeps settings for the lifetime of the process.
type MemorySettingsStore struct {
	mu       sync.RWMutex
	settings models.Settings
}

var _ SettingsStore = (*MemorySettingsStore)(nil)

func NewMemorySettingsStore(initial models.Settings) *MemorySettingsStore {
	if initial.ID == "" {
		initial.ID = models.SettingsID
	}
	return &MemorySettingsStore{settings: initial}
}

// Get returns a copy of the current record.
func (s *MemorySettingsStore) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Set replaces the whole record. The id never changes.
func (s *MemorySettingsStore) Set(next models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next.ID = s.settings.ID
	s.settings = next
}
