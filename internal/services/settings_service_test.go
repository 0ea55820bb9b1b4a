package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"beautestore/internal/services"
	"beautestore/internal/store"
)

func TestSettingsListReturnsAtMostOne(t *testing.T) {
	settings := services.NewSettingsService(newTestStore(t))

	listed, err := settings.List()
	assert.NoError(t, err)
	assert.Len(t, listed, 1, "the seed document carries one settings record")
}

func TestSettingsReplaceIsSingletonUpsert(t *testing.T) {
	svc := services.NewSettingsService(newTestStore(t))

	first, err := svc.Replace(store.Record{"site_name": "Beauté Store", "delivery_fee": 2000})
	assert.NoError(t, err)
	second, err := svc.Replace(store.Record{"site_name": "Beauté Store 2", "delivery_fee": 2500})
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	listed, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, "Beauté Store 2", listed[0].SiteName)
	assert.Equal(t, 2500, listed[0].DeliveryFee)
}

func TestSettingsUpdate(t *testing.T) {
	svc := services.NewSettingsService(newTestStore(t))
	created, err := svc.Replace(store.Record{"site_name": "Beauté Store", "delivery_fee": 2000})
	assert.NoError(t, err)

	updated, err := svc.Update(created.ID, store.Record{"delivery_fee": 3000})
	assert.NoError(t, err)
	assert.Equal(t, 3000, updated.DeliveryFee)
	assert.Equal(t, "Beauté Store", updated.SiteName)

	_, err = svc.Update("wrong-id", store.Record{"delivery_fee": 1})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Update(created.ID, store.Record{"bogus": 1})
	assert.ErrorIs(t, err, services.ErrEmptyPatch)
}
