package store

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Row structs exist for schema migration only; all data access goes
// through map-based Table() queries so both backends speak Record.
type settingsRow struct {
	ID                    string `gorm:"primaryKey;type:varchar(36)"`
	SiteName              string
	LogoURL               string
	BannerImage           string
	BannerTitle           string
	BannerSubtitle        string
	ContactPhone          string
	ContactWhatsapp       string
	ContactEmail          string
	ContactAddress        string
	FacebookURL           string
	InstagramURL          string
	DeliveryFee           int
	FreeDeliveryThreshold int
	AboutText             string
	CgvText               string
	ShippingPolicy        string
	ReturnPolicy          string
	PrimaryColor          string
	SecondaryColor        string
	CreatedDate           string
}

type categoryRow struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Name        string
	Description string
	ImageURL    string
	OrderIndex  int
	CreatedDate string
}

type productRow struct {
	ID               string `gorm:"primaryKey;type:varchar(36)"`
	Name             string
	Description      string
	ShortDescription string
	Price            int
	OriginalPrice    int
	CategoryID       string `gorm:"type:varchar(36);index"`
	Images           string `gorm:"type:text"` // JSON-encoded array of URLs
	IsNew            bool
	IsPromo          bool
	IsFeatured       bool
	IsAvailable      bool
	Stock            int
	TechnicalDetails string
	Views            int
	CreatedDate      string
}

type orderRow struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	OrderNumber   string
	ClientName    string
	ClientPhone   string
	ClientEmail   string
	ClientAddress string
	Items         string `gorm:"type:text"` // JSON-encoded line items
	Subtotal      int
	DeliveryFee   int
	Total         int
	Status        string
	Notes         string
	AdminNotes    string
	CreatedDate   string
}

type userRow struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	FullName     string
	Email        string `gorm:"uniqueIndex;type:varchar(255)"`
	Role         string
	PasswordHash string
}

var tableModels = map[string]any{
	Settings:   &settingsRow{},
	Categories: &categoryRow{},
	Products:   &productRow{},
	Orders:     &orderRow{},
	Users:      &userRow{},
}

// GormStore keeps each collection in its own relational table, with
// nested sequences (product images, order line items) stored as
// JSON-encoded text columns.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the schema and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(
		&settingsRow{}, &categoryRow{}, &productRow{}, &orderRow{}, &userRow{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) table(collection string) (string, error) {
	if _, ok := tableModels[collection]; !ok {
		return "", fmt.Errorf("unknown collection %s", collection)
	}
	return collection, nil
}

// encodeRow shapes a Record for SQL storage: slices and maps become
// JSON-encoded text, and the category rank moves to its column name.
func encodeRow(collection string, rec Record) Record {
	row := Record{}
	for k, v := range rec {
		switch v.(type) {
		case []any, []string, map[string]any:
			raw, err := json.Marshal(v)
			if err != nil {
				continue
			}
			row[k] = string(raw)
		default:
			row[k] = v
		}
	}
	if collection == Categories {
		if rank, ok := row["order"]; ok {
			row["order_index"] = rank
			delete(row, "order")
		}
	}
	return row
}

// Get returns every row of the collection, raw. JSON-encoded columns
// stay encoded; the normalize package decodes them.
func (s *GormStore) Get(collection string) ([]Record, error) {
	table, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	tx := s.db.Table(table)
	if collection != Users {
		// Keep creation order so both backends list alike.
		tx = tx.Order("created_date")
	}
	var rows []map[string]any
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = Record(row)
	}
	return out, nil
}

// Insert creates one row from the record.
func (s *GormStore) Insert(collection string, rec Record) error {
	table, err := s.table(collection)
	if err != nil {
		return err
	}
	row := map[string]any(encodeRow(collection, rec))
	if err := s.db.Table(table).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// UpdateByID applies the patch to the matching row and returns it.
func (s *GormStore) UpdateByID(collection, id string, patch Record) (Record, error) {
	table, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	row := map[string]any(encodeRow(collection, patch))
	res := s.db.Table(table).Where("id = ?", id).Updates(row)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update %s/%s: %w", table, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var updated map[string]any
	if err := s.db.Table(table).Where("id = ?", id).Take(&updated).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload %s/%s: %w", table, id, err)
	}
	return Record(updated), nil
}

// DeleteByID removes the matching row.
func (s *GormStore) DeleteByID(collection, id string) error {
	table, err := s.table(collection)
	if err != nil {
		return err
	}
	res := s.db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll truncates the table and inserts rec as its only row, in one
// transaction.
func (s *GormStore) ReplaceAll(collection string, rec Record) error {
	table, err := s.table(collection)
	if err != nil {
		return err
	}
	row := map[string]any(encodeRow(collection, rec))
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
		if err := tx.Table(table).Create(row).Error; err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		return nil
	})
}
