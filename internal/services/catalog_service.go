package services

import (
	"errors"
	"fmt"

	"beautestore/internal/models"
	"beautestore/internal/normalize"
	"beautestore/internal/query"
	"beautestore/internal/store"
)

// ErrEmptyPatch is returned when an update carries no allowlisted field.
var ErrEmptyPatch = errors.New("no updatable field in payload")

// ErrInvalidStatus is returned when an order patch carries a status
// outside the six known values.
var ErrInvalidStatus = errors.New("invalid order status")

// CatalogService handles business logic for products and categories.
type CatalogService struct {
	store store.Store
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(s store.Store) *CatalogService {
	return &CatalogService{store: s}
}

// ListProducts returns the filtered, sorted, limited product list.
// Products have no default sort; insertion order is kept unless the
// caller asks otherwise.
func (s *CatalogService) ListProducts(c query.Criteria) ([]models.Product, error) {
	records, err := s.store.Get(store.Products)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	selected := query.Select(records, c)
	products := make([]models.Product, len(selected))
	for i, rec := range selected {
		products[i] = normalize.Product(rec)
	}
	return products, nil
}

// GetProduct returns one product and counts the detail-page read by
// bumping its view counter.
func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	rec, err := findByID(s.store, store.Products, id)
	if err != nil {
		return models.Product{}, err
	}
	product := normalize.Product(rec)
	product.Views++

	// Best-effort counter: a failed bump must not hide the product.
	if _, err := s.store.UpdateByID(store.Products, id, store.Record{"views": product.Views}); err != nil {
		return normalize.Product(rec), nil
	}
	return product, nil
}

// CreateProduct persists the allowlisted fields with a server-stamped
// identity and returns the re-fetched, normalized record.
func (s *CatalogService) CreateProduct(body store.Record) (models.Product, error) {
	rec := stamp(pickAllowed(body, models.ProductFields))
	if err := s.store.Insert(store.Products, rec); err != nil {
		return models.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	stored, err := findByID(s.store, store.Products, rec["id"].(string))
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to reload created product: %w", err)
	}
	return normalize.Product(stored), nil
}

// UpdateProduct applies a partial patch of allowlisted fields.
func (s *CatalogService) UpdateProduct(id string, body store.Record) (models.Product, error) {
	patch := pickAllowed(body, models.ProductFields)
	if len(patch) == 0 {
		return models.Product{}, ErrEmptyPatch
	}
	updated, err := s.store.UpdateByID(store.Products, id, patch)
	if err != nil {
		return models.Product{}, err
	}
	return normalize.Product(updated), nil
}

// DeleteProduct hard-removes a product.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.store.DeleteByID(store.Products, id)
}

// ListCategories returns categories sorted by display rank unless the
// caller provides another sort key.
func (s *CatalogService) ListCategories(c query.Criteria) ([]models.Category, error) {
	if c.Sort == "" {
		c.Sort = "order"
	}
	records, err := s.store.Get(store.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	// The relational backend stores the rank as order_index; expose it
	// under the canonical key so sorting and filtering see it.
	for _, rec := range records {
		if _, ok := rec["order"]; !ok {
			if rank, ok := rec["order_index"]; ok {
				rec["order"] = rank
			}
		}
	}
	selected := query.Select(records, c)
	categories := make([]models.Category, len(selected))
	for i, rec := range selected {
		categories[i] = normalize.Category(rec)
	}
	return categories, nil
}

// CreateCategory persists the allowlisted fields with a server-stamped
// identity.
func (s *CatalogService) CreateCategory(body store.Record) (models.Category, error) {
	rec := stamp(pickAllowed(body, models.CategoryFields))
	if err := s.store.Insert(store.Categories, rec); err != nil {
		return models.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	stored, err := findByID(s.store, store.Categories, rec["id"].(string))
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to reload created category: %w", err)
	}
	return normalize.Category(stored), nil
}

// UpdateCategory applies a partial patch of allowlisted fields.
func (s *CatalogService) UpdateCategory(id string, body store.Record) (models.Category, error) {
	patch := pickAllowed(body, models.CategoryFields)
	if len(patch) == 0 {
		return models.Category{}, ErrEmptyPatch
	}
	updated, err := s.store.UpdateByID(store.Categories, id, patch)
	if err != nil {
		return models.Category{}, err
	}
	return normalize.Category(updated), nil
}

// DeleteCategory hard-removes a category. Products referencing it keep
// their dangling category_id; the reference is not enforced.
func (s *CatalogService) DeleteCategory(id string) error {
	return s.store.DeleteByID(store.Categories, id)
}
