package services

import (
	"fmt"

	"beautestore/internal/models"
	"beautestore/internal/normalize"
	"beautestore/internal/store"
)

// SettingsService handles the singleton site-settings record: listing
// returns at most one entry and creating replaces whatever existed.
type SettingsService struct {
	store store.Store
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(s store.Store) *SettingsService {
	return &SettingsService{store: s}
}

// List returns the settings collection (zero or one record).
func (s *SettingsService) List() ([]models.SiteSettings, error) {
	records, err := s.store.Get(store.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	out := make([]models.SiteSettings, 0, 1)
	for _, rec := range records {
		out = append(out, normalize.Settings(rec))
		break
	}
	return out, nil
}

// Replace stores body as the new singleton, dropping any previous
// record.
func (s *SettingsService) Replace(body store.Record) (models.SiteSettings, error) {
	rec := stamp(pickAllowed(body, models.SettingsFields))
	if err := s.store.ReplaceAll(store.Settings, rec); err != nil {
		return models.SiteSettings{}, fmt.Errorf("failed to replace settings: %w", err)
	}
	stored, err := findByID(s.store, store.Settings, rec["id"].(string))
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("failed to reload settings: %w", err)
	}
	return normalize.Settings(stored), nil
}

// Update applies a partial patch to the stored singleton.
func (s *SettingsService) Update(id string, body store.Record) (models.SiteSettings, error) {
	patch := pickAllowed(body, models.SettingsFields)
	if len(patch) == 0 {
		return models.SiteSettings{}, ErrEmptyPatch
	}
	updated, err := s.store.UpdateByID(store.Settings, id, patch)
	if err != nil {
		return models.SiteSettings{}, err
	}
	return normalize.Settings(updated), nil
}
