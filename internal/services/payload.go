package services

import (
	"time"

	"github.com/google/uuid"

	"beautestore/internal/store"
)

// pickAllowed copies only the allowlisted keys out of a request body,
// silently dropping everything else.
func pickAllowed(body store.Record, allowed []string) store.Record {
	out := store.Record{}
	for _, key := range allowed {
		if value, ok := body[key]; ok {
			out[key] = value
		}
	}
	return out
}

// stamp assigns a fresh server-side identity and creation timestamp.
// Any id or created_date supplied by the client is overwritten.
func stamp(rec store.Record) store.Record {
	rec["id"] = uuid.New().String()
	rec["created_date"] = time.Now().Format(time.RFC3339)
	return rec
}

// findByID scans a collection for the record with the given id.
func findByID(s store.Store, collection, id string) (store.Record, error) {
	records, err := s.Get(collection)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if str, ok := rec["id"].(string); ok && str == id {
			return rec, nil
		}
	}
	return nil, store.ErrNotFound
}
