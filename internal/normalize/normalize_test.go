package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"beautestore/internal/normalize"
	"beautestore/internal/store"
)

func TestProductCoercesNumericStrings(t *testing.T) {
	product := normalize.Product(store.Record{
		"id":    "p1",
		"name":  "Sèche-cheveux",
		"price": "45000",
		"stock": "12",
		"views": "120",
	})
	assert.Equal(t, 45000, product.Price)
	assert.Equal(t, 12, product.Stock)
	assert.Equal(t, 120, product.Views)
}

func TestProductCoercesBooleanRepresentations(t *testing.T) {
	product := normalize.Product(store.Record{
		"is_new":      int64(1),
		"is_promo":    "true",
		"is_featured": float64(0),
	})
	assert.True(t, product.IsNew)
	assert.True(t, product.IsPromo)
	assert.False(t, product.IsFeatured)
}

func TestProductAvailabilityDefaultsToTrue(t *testing.T) {
	assert.True(t, normalize.Product(store.Record{}).IsAvailable)
	assert.False(t, normalize.Product(store.Record{"is_available": int64(0)}).IsAvailable)
}

func TestProductDecodesImagesFromJSONColumn(t *testing.T) {
	product := normalize.Product(store.Record{
		"images": `["https://a.example/1.jpg","https://a.example/2.jpg"]`,
	})
	assert.Equal(t, []string{"https://a.example/1.jpg", "https://a.example/2.jpg"}, product.Images)
}

func TestProductMalformedImagesFallBackToEmpty(t *testing.T) {
	for _, raw := range []any{"not json", "{", nil, float64(3)} {
		product := normalize.Product(store.Record{"images": raw})
		assert.Equal(t, []string{}, product.Images)
	}
}

func TestProductDefaultsOnAbsentFields(t *testing.T) {
	product := normalize.Product(store.Record{"name": "Widget"})
	assert.Equal(t, 0, product.Price)
	assert.Equal(t, 0, product.Stock)
	assert.Equal(t, 0, product.Views)
	assert.Equal(t, []string{}, product.Images)
}

func TestCategoryReadsRelationalRankColumn(t *testing.T) {
	assert.Equal(t, 3, normalize.Category(store.Record{"order_index": int64(3)}).Order)
	assert.Equal(t, 2, normalize.Category(store.Record{"order": float64(2)}).Order)
	assert.Equal(t, 0, normalize.Category(store.Record{}).Order)
}

func TestOrderDecodesItemsFromJSONColumn(t *testing.T) {
	order := normalize.Order(store.Record{
		"items":        `[{"product_id":"p1","product_name":"Kit","quantity":2,"price":500,"total":1000}]`,
		"subtotal":     "2000",
		"delivery_fee": int64(200),
		"total":        float64(2200),
	})
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 2000, order.Subtotal)
	assert.Equal(t, 200, order.DeliveryFee)
	assert.Equal(t, 2200, order.Total)
}

func TestOrderMalformedItemsFallBackToEmpty(t *testing.T) {
	order := normalize.Order(store.Record{"items": "[{"})
	assert.Equal(t, 0, len(order.Items))
}

func TestSettingsCoercesFeeFields(t *testing.T) {
	settings := normalize.Settings(store.Record{
		"delivery_fee":            "2000",
		"free_delivery_threshold": int64(100000),
	})
	assert.Equal(t, 2000, settings.DeliveryFee)
	assert.Equal(t, 100000, settings.FreeDeliveryThreshold)
}

// Normalization must be idempotent: re-normalizing a record built from
// an already-normalized model changes nothing.
func TestNormalizeIsIdempotent(t *testing.T) {
	raw := store.Record{
		"id":       "p1",
		"name":     "Sèche-cheveux",
		"price":    "45000",
		"is_promo": int64(1),
		"images":   `["https://a.example/1.jpg"]`,
	}
	once := normalize.Product(raw)

	encoded, err := json.Marshal(once)
	assert.NoError(t, err)
	var rec store.Record
	assert.NoError(t, json.Unmarshal(encoded, &rec))

	assert.Equal(t, once, normalize.Product(rec))
}
