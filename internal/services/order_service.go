package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"beautestore/internal/models"
	"beautestore/internal/normalize"
	"beautestore/internal/query"
	"beautestore/internal/store"
)

// EventPublisher publishes order lifecycle events to the message broker.
// A nil publisher disables eventing.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	store    store.Store
	events   EventPublisher
	validate *validator.Validate
}

// NewOrderService creates a new OrderService.
func NewOrderService(s store.Store, events EventPublisher) *OrderService {
	return &OrderService{
		store:    s,
		events:   events,
		validate: validator.New(),
	}
}

// ComputeTotals derives an order's subtotal from its line items and adds
// the delivery fee. Amounts are integer FCFA; there is no tax and no
// rounding step.
func ComputeTotals(items []models.OrderItem, deliveryFee int) (subtotal, total int) {
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}
	return subtotal, subtotal + deliveryFee
}

// List returns orders, newest first unless the caller sorts otherwise.
func (s *OrderService) List(c query.Criteria) ([]models.Order, error) {
	if c.Sort == "" {
		c.Sort = "-created_date"
	}
	records, err := s.store.Get(store.Orders)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	selected := query.Select(records, c)
	orders := make([]models.Order, len(selected))
	for i, rec := range selected {
		orders[i] = normalize.Order(rec)
	}
	return orders, nil
}

// Get returns one order by id.
func (s *OrderService) Get(id string) (models.Order, error) {
	rec, err := findByID(s.store, store.Orders, id)
	if err != nil {
		return models.Order{}, err
	}
	return normalize.Order(rec), nil
}

// Create persists a checkout submission. The subtotal, the total and
// each line total are recomputed server-side from the submitted line
// prices and quantities; client-supplied figures are overridden.
func (s *OrderService) Create(body store.Record) (models.Order, error) {
	rec := pickAllowed(body, models.OrderFields)
	draft := normalize.Order(rec)

	if err := s.validate.Struct(draft); err != nil {
		return models.Order{}, err
	}

	items := draft.Items
	for i := range items {
		items[i].Total = items[i].Price * items[i].Quantity
	}
	subtotal, total := ComputeTotals(items, draft.DeliveryFee)

	rec["items"] = itemsToRecords(items)
	rec["subtotal"] = subtotal
	rec["delivery_fee"] = draft.DeliveryFee
	rec["total"] = total
	if draft.Status == "" {
		rec["status"] = models.StatusPending
	}
	stamp(rec)

	if err := s.store.Insert(store.Orders, rec); err != nil {
		return models.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	stored, err := findByID(s.store, store.Orders, rec["id"].(string))
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to reload created order: %w", err)
	}

	order := normalize.Order(stored)
	s.publish("order.created", store.Record{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       order.Status,
		"total":        order.Total,
	})
	return order, nil
}

// Update applies a partial patch (status, admin notes, client details).
// If the patch carries a status it must be one of the six known values,
// but any transition between them is permitted.
func (s *OrderService) Update(id string, body store.Record) (models.Order, error) {
	patch := pickAllowed(body, models.OrderFields)
	if len(patch) == 0 {
		return models.Order{}, ErrEmptyPatch
	}

	statusChanged := false
	if raw, ok := patch["status"]; ok {
		status, _ := raw.(string)
		if !validStatus(status) {
			return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		statusChanged = true
	}
	if items, ok := patch["items"]; ok {
		patch["items"] = itemsToRecords(normalize.Order(store.Record{"items": items}).Items)
	}

	updated, err := s.store.UpdateByID(store.Orders, id, patch)
	if err != nil {
		return models.Order{}, err
	}

	order := normalize.Order(updated)
	if statusChanged {
		s.publish("order.status_changed", store.Record{
			"order_id": order.ID,
			"status":   order.Status,
		})
	}
	return order, nil
}

func validStatus(status string) bool {
	for _, known := range models.OrderStatuses {
		if status == known {
			return true
		}
	}
	return false
}

// publish sends an order event, logging instead of failing the request
// when the broker is unavailable.
func (s *OrderService) publish(routingKey string, payload store.Record) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.events.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

// itemsToRecords converts line items to plain records so both backends
// store them the same way.
func itemsToRecords(items []models.OrderItem) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = map[string]any{
			"product_id":    item.ProductID,
			"product_name":  item.ProductName,
			"product_image": item.ProductImage,
			"quantity":      item.Quantity,
			"price":         item.Price,
			"total":         item.Total,
		}
	}
	return out
}
