package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// documentKeys maps collection names to the top-level keys of the JSON
// document. The settings collection keeps its historical camelCase key.
var documentKeys = map[string]string{
	Settings:   "siteSettings",
	Categories: "categories",
	Products:   "products",
	Orders:     "orders",
	Users:      "users",
}

// FileStore persists everything in a single JSON document, rewritten in
// full on every mutation. A mutex serializes mutations; this backend is
// meant for single-admin, low-concurrency deployments.
type FileStore struct {
	path string
	mu   sync.Mutex
	doc  map[string][]Record
}

// NewFileStore loads the document at path, seeding a default document if
// the file does not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fs.doc = defaultDocument()
		if err := fs.persist(); err != nil {
			return nil, fmt.Errorf("failed to seed data file %s: %w", path, err)
		}
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &fs.doc); err != nil {
		return nil, fmt.Errorf("failed to decode data file %s: %w", path, err)
	}
	if fs.doc == nil {
		fs.doc = map[string][]Record{}
	}
	return fs, nil
}

// persist rewrites the whole document. Callers must hold the mutex.
func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data document: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) key(collection string) (string, error) {
	key, ok := documentKeys[collection]
	if !ok {
		return "", fmt.Errorf("unknown collection %s", collection)
	}
	return key, nil
}

// Get returns a copy of the collection's record list.
func (s *FileStore) Get(collection string) ([]Record, error) {
	key, err := s.key(collection)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.doc[key]
	out := make([]Record, len(records))
	copy(out, records)
	return out, nil
}

// Insert appends rec to the collection and rewrites the document.
func (s *FileStore) Insert(collection string, rec Record) error {
	key, err := s.key(collection)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc[key] = append(s.doc[key], rec)
	return s.persist()
}

// UpdateByID merges patch into the matching record.
func (s *FileStore) UpdateByID(collection, id string, patch Record) (Record, error) {
	key, err := s.key(collection)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.doc[key] {
		if fmt.Sprint(rec["id"]) != id {
			continue
		}
		merged := Record{}
		for k, v := range rec {
			merged[k] = v
		}
		for k, v := range patch {
			merged[k] = v
		}
		s.doc[key][i] = merged
		if err := s.persist(); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, ErrNotFound
}

// DeleteByID removes the matching record.
func (s *FileStore) DeleteByID(collection, id string) error {
	key, err := s.key(collection)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.doc[key] {
		if fmt.Sprint(rec["id"]) != id {
			continue
		}
		s.doc[key] = append(s.doc[key][:i], s.doc[key][i+1:]...)
		return s.persist()
	}
	return ErrNotFound
}

// ReplaceAll keeps rec as the collection's only record.
func (s *FileStore) ReplaceAll(collection string, rec Record) error {
	key, err := s.key(collection)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc[key] = []Record{rec}
	return s.persist()
}

// defaultDocument seeds a fresh deployment: branding defaults, three
// categories, an empty catalog and order book, and the admin account.
func defaultDocument() map[string][]Record {
	now := time.Now().Format(time.RFC3339)
	return map[string][]Record{
		"siteSettings": {
			{
				"id":                      "settings-1",
				"site_name":               "Beauté Store",
				"banner_title":            "Équipements professionnels de beauté",
				"banner_subtitle":         "Découvrez une sélection premium pour votre salon",
				"contact_phone":           "+225 07 00 00 00 00",
				"contact_email":           "contact@beautestore.ci",
				"contact_address":         "Abidjan, Côte d'Ivoire",
				"delivery_fee":            2000,
				"free_delivery_threshold": 100000,
				"cgv_text":                "Conditions générales de vente par défaut.",
				"shipping_policy":         "Livraison en 2 à 5 jours ouvrés.",
				"return_policy":           "Retours acceptés sous 7 jours.",
				"primary_color":           "#E8B4B8",
				"secondary_color":         "#D4AF37",
				"created_date":            now,
			},
		},
		"categories": {
			{"id": "cat-1", "name": "Coiffure", "order": 1, "created_date": now},
			{"id": "cat-2", "name": "Esthétique", "order": 2, "created_date": now},
			{"id": "cat-3", "name": "Équipement", "order": 3, "created_date": now},
		},
		"products": {},
		"orders":   {},
		"users": {
			{
				"id":        "user-1",
				"full_name": "Admin Beauté Store",
				"email":     "admin@beautestore.ci",
				"role":      "admin",
			},
		},
	}
}
