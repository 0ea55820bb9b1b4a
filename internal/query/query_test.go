package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"beautestore/internal/query"
	"beautestore/internal/store"
)

func sampleProducts() []store.Record {
	return []store.Record{
		{"id": "p1", "name": "Sèche-cheveux", "price": float64(45000), "category_id": "c1", "is_promo": true, "views": float64(120)},
		{"id": "p2", "name": "Fauteuil", "price": float64(180000), "category_id": "c3", "is_promo": false, "views": float64(80)},
		{"id": "p3", "name": "Kit maquillage", "price": float64(65000), "category_id": "c2", "is_promo": true, "views": float64(45)},
		{"id": "p4", "name": "Lave-tête", "price": float64(220000), "category_id": "c3", "is_promo": false, "views": float64(32)},
		{"id": "p5", "name": "Tondeuse", "price": float64(30000), "category_id": "c1", "is_promo": false, "views": float64(200)},
	}
}

func ids(records []store.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec["id"].(string)
	}
	return out
}

func TestSelectFilterByString(t *testing.T) {
	got := query.Select(sampleProducts(), query.Criteria{
		Filters: map[string]string{"category_id": "c3"},
	})
	assert.Equal(t, []string{"p2", "p4"}, ids(got))
}

func TestSelectFilterByBoolean(t *testing.T) {
	got := query.Select(sampleProducts(), query.Criteria{
		Filters: map[string]string{"is_promo": "true"},
	})
	assert.Equal(t, []string{"p1", "p3"}, ids(got))
}

func TestSelectFilterByNumber(t *testing.T) {
	// The criterion arrives as a query-string value; comparison is
	// after string coercion, so "45000" matches the JSON number.
	got := query.Select(sampleProducts(), query.Criteria{
		Filters: map[string]string{"price": "45000"},
	})
	assert.Equal(t, []string{"p1"}, ids(got))
}

func TestSelectEmptyCriterionMatchesEverything(t *testing.T) {
	got := query.Select(sampleProducts(), query.Criteria{
		Filters: map[string]string{"category_id": ""},
	})
	assert.Len(t, got, 5)
}

func TestSelectUnknownFieldExcludesAll(t *testing.T) {
	// An absent field stringifies to "undefined", so a criterion on an
	// unknown key matches nothing.
	got := query.Select(sampleProducts(), query.Criteria{
		Filters: map[string]string{"no_such_field": "x"},
	})
	assert.Empty(t, got)
}

func TestSelectReservedKeysAreNotFilters(t *testing.T) {
	got := query.Select(sampleProducts(), query.Criteria{
		Filters: map[string]string{"sort": "price_desc", "limit": "2"},
	})
	assert.Len(t, got, 5)
}

func TestSelectSortShorthands(t *testing.T) {
	asc := query.Select(sampleProducts(), query.Criteria{Sort: "price_asc"})
	assert.Equal(t, []string{"p5", "p1", "p3", "p2", "p4"}, ids(asc))

	desc := query.Select(sampleProducts(), query.Criteria{Sort: "price_desc"})
	assert.Equal(t, []string{"p4", "p2", "p3", "p1", "p5"}, ids(desc))

	views := query.Select(sampleProducts(), query.Criteria{Sort: "-views"})
	assert.Equal(t, []string{"p5", "p1", "p2", "p3", "p4"}, ids(views))
}

func TestSelectGenericSortKey(t *testing.T) {
	byName := query.Select(sampleProducts(), query.Criteria{Sort: "name"})
	assert.Equal(t, "Fauteuil", byName[0]["name"])

	byNameDesc := query.Select(sampleProducts(), query.Criteria{Sort: "-name"})
	assert.Equal(t, "Tondeuse", byNameDesc[0]["name"])
}

func TestSelectAscDescAreExactReverses(t *testing.T) {
	asc := query.Select(sampleProducts(), query.Criteria{Sort: "price"})
	desc := query.Select(sampleProducts(), query.Criteria{Sort: "-price"})
	for i := range asc {
		assert.Equal(t, asc[i]["id"], desc[len(desc)-1-i]["id"])
	}
}

func TestSelectSortIsStableOnTies(t *testing.T) {
	records := []store.Record{
		{"id": "a", "order": float64(1)},
		{"id": "b", "order": float64(1)},
		{"id": "c", "order": float64(0)},
	}
	got := query.Select(records, query.Criteria{Sort: "order"})
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
}

func TestSelectMissingSortFieldComparesAsZero(t *testing.T) {
	records := []store.Record{
		{"id": "a", "views": float64(10)},
		{"id": "b"},
	}
	got := query.Select(records, query.Criteria{Sort: "views"})
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestSelectLimit(t *testing.T) {
	got := query.Select(sampleProducts(), query.Criteria{Sort: "price_desc", Limit: 2})
	assert.Equal(t, []string{"p4", "p2"}, ids(got))

	all := query.Select(sampleProducts(), query.Criteria{Limit: 10})
	assert.Len(t, all, 5)
}

func TestSelectIsIdempotent(t *testing.T) {
	criteria := query.Criteria{
		Filters: map[string]string{"is_promo": "true"},
		Sort:    "price_desc",
		Limit:   3,
	}
	once := query.Select(sampleProducts(), criteria)
	twice := query.Select(once, criteria)
	assert.Equal(t, once, twice)
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	records := sampleProducts()
	query.Select(records, query.Criteria{Sort: "price_desc"})
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(records))
}
