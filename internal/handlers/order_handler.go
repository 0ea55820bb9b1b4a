package handlers

import (
	"github.com/gofiber/fiber/v2"

	"beautestore/internal/services"
	"beautestore/internal/store"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// RegisterRoutes registers the order routes. Checkout (POST) stays
// public; listing and patching are back-office operations guarded by
// admin. Orders are never deleted.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	orders := router.Group("/orders")
	orders.Get("/", admin, h.HandleList)
	orders.Get("/:id", h.HandleGet)
	orders.Post("/", h.HandleCreate)
	orders.Put("/:id", admin, h.HandleUpdate)
}

// HandleList returns orders, newest first by default, filterable by
// status like any other field.
func (h *OrderHandler) HandleList(c *fiber.Ctx) error {
	orders, err := h.orders.List(criteriaFromQuery(c))
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(orders)
}

// HandleGet returns a single order, e.g. for the tracking page.
func (h *OrderHandler) HandleGet(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.Params("id"))
	if err != nil {
		return fail(c, err, "Commande introuvable")
	}
	return c.JSON(order)
}

// HandleCreate accepts a checkout submission, recomputes its totals
// server-side and persists it with status pending.
func (h *OrderHandler) HandleCreate(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	order, err := h.orders.Create(body)
	if err != nil {
		return fail(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleUpdate applies a partial patch, typically a status change or
// admin notes.
func (h *OrderHandler) HandleUpdate(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	order, err := h.orders.Update(c.Params("id"), body)
	if err != nil {
		return fail(c, err, "Commande introuvable")
	}
	return c.JSON(order)
}
