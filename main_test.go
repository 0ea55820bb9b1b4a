package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewAppWiring boots the whole application against a throwaway
// file store and checks the public surface responds.
func TestNewAppWiring(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("DATA_FILE", filepath.Join(dir, "db.json"))
	t.Setenv("UPLOAD_DIR", filepath.Join(dir, "uploads"))
	t.Setenv("MESSAGES_LOG", filepath.Join(dir, "messages.log"))
	t.Setenv("RABBITMQ_URL", "")

	app, mqClient, err := NewApp()
	assert.NoError(t, err)
	assert.Nil(t, mqClient, "no broker configured")
	defer app.Shutdown()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ok", body["status"])

	// The seeded admin is reachable.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The seeded categories come back ranked.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/categories", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err = io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var categories []map[string]any
	assert.NoError(t, json.Unmarshal(raw, &categories))
	assert.Len(t, categories, 3)
	assert.Equal(t, "Coiffure", categories[0]["name"])
}

// TestAuthEnforcement verifies that back-office mutations are guarded
// when AUTH_REQUIRED is on.
func TestAuthEnforcement(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("DATA_FILE", filepath.Join(dir, "db.json"))
	t.Setenv("UPLOAD_DIR", filepath.Join(dir, "uploads"))
	t.Setenv("MESSAGES_LOG", filepath.Join(dir, "messages.log"))
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("ADMIN_PASSWORD", "secret123")

	app, _, err := NewApp()
	assert.NoError(t, err)
	defer app.Shutdown()

	// Mutations require a token.
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The storefront reads stay public.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
