package store

import "errors"

// Record is the raw, untyped representation of a stored entity as the
// backend returns it. Field values keep whatever shape the backend uses
// (JSON numbers, 0/1 booleans, JSON-encoded text columns); the normalize
// package turns them into canonical typed models.
type Record = map[string]any

// Collection names shared by both backends.
const (
	Settings   = "site_settings"
	Categories = "categories"
	Products   = "products"
	Orders     = "orders"
	Users      = "users"
)

// ErrNotFound is returned when an id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// Store is the persistence adapter. Two interchangeable implementations
// exist: a whole-file JSON document store and a relational table store.
type Store interface {
	// Get returns every record of the collection.
	Get(collection string) ([]Record, error)
	// Insert appends a new record to the collection.
	Insert(collection string, rec Record) error
	// UpdateByID merges patch into the record with the given id and
	// returns the updated record, or ErrNotFound.
	UpdateByID(collection, id string, patch Record) (Record, error)
	// DeleteByID hard-removes a record. It returns ErrNotFound if the
	// id does not exist.
	DeleteByID(collection, id string) error
	// ReplaceAll drops every record of the collection and stores rec as
	// its single element (singleton upsert).
	ReplaceAll(collection string, rec Record) error
}
