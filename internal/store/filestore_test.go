package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"beautestore/internal/store"
)

func newFileStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	fs, err := store.NewFileStore(path)
	assert.NoError(t, err)
	return fs, path
}

func TestFileStoreSeedsDefaultDocument(t *testing.T) {
	fs, _ := newFileStore(t)

	settings, err := fs.Get(store.Settings)
	assert.NoError(t, err)
	assert.Len(t, settings, 1)

	categories, err := fs.Get(store.Categories)
	assert.NoError(t, err)
	assert.Len(t, categories, 3)

	users, err := fs.Get(store.Users)
	assert.NoError(t, err)
	assert.Len(t, users, 1)

	products, err := fs.Get(store.Products)
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestFileStoreInsertAndReload(t *testing.T) {
	fs, path := newFileStore(t)

	err := fs.Insert(store.Products, store.Record{"id": "p1", "name": "Widget", "price": 1000})
	assert.NoError(t, err)

	// A fresh store on the same file must see the write.
	reopened, err := store.NewFileStore(path)
	assert.NoError(t, err)
	products, err := reopened.Get(store.Products)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0]["name"])
}

func TestFileStoreUpdateByID(t *testing.T) {
	fs, _ := newFileStore(t)
	assert.NoError(t, fs.Insert(store.Products, store.Record{"id": "p1", "name": "Widget", "price": 1000}))

	updated, err := fs.UpdateByID(store.Products, "p1", store.Record{"price": 1500})
	assert.NoError(t, err)
	assert.Equal(t, 1500, updated["price"])
	assert.Equal(t, "Widget", updated["name"], "untouched fields survive the patch")

	_, err = fs.UpdateByID(store.Products, "missing", store.Record{"price": 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFileStoreDeleteByID(t *testing.T) {
	fs, _ := newFileStore(t)
	assert.NoError(t, fs.Insert(store.Products, store.Record{"id": "p1", "name": "Widget"}))

	assert.NoError(t, fs.DeleteByID(store.Products, "p1"))
	products, _ := fs.Get(store.Products)
	assert.Empty(t, products)

	err := fs.DeleteByID(store.Products, "p1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	products, _ = fs.Get(store.Products)
	assert.Empty(t, products, "failed delete leaves the collection unchanged")
}

func TestFileStoreReplaceAllKeepsSingleRecord(t *testing.T) {
	fs, _ := newFileStore(t)

	assert.NoError(t, fs.ReplaceAll(store.Settings, store.Record{"id": "s2", "site_name": "New"}))
	assert.NoError(t, fs.ReplaceAll(store.Settings, store.Record{"id": "s3", "site_name": "Newer"}))

	settings, err := fs.Get(store.Settings)
	assert.NoError(t, err)
	assert.Len(t, settings, 1)
	assert.Equal(t, "s3", settings[0]["id"])
}

func TestFileStoreUnknownCollection(t *testing.T) {
	fs, _ := newFileStore(t)
	_, err := fs.Get("carts")
	assert.Error(t, err)
}
