package handlers

import (
	"github.com/gofiber/fiber/v2"

	"beautestore/internal/services"
	"beautestore/internal/store"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	catalog *services.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// RegisterRoutes registers the product routes. admin guards mutations.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Get("/:id", h.HandleGet)
	products.Post("/", admin, h.HandleCreate)
	products.Put("/:id", admin, h.HandleUpdate)
	products.Delete("/:id", admin, h.HandleDelete)
}

// HandleList returns the filtered, sorted, limited product list. Empty
// results are a 200 with an empty array, never an error.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.catalog.ListProducts(criteriaFromQuery(c))
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(products)
}

// HandleGet returns a single product and counts the read as a view.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.catalog.GetProduct(c.Params("id"))
	if err != nil {
		return fail(c, err, "Produit introuvable")
	}
	return c.JSON(product)
}

// HandleCreate creates a product from the allowlisted body fields.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	product, err := h.catalog.CreateProduct(body)
	if err != nil {
		return fail(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate applies a partial patch to a product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	product, err := h.catalog.UpdateProduct(c.Params("id"), body)
	if err != nil {
		return fail(c, err, "Produit introuvable")
	}
	return c.JSON(product)
}

// HandleDelete hard-removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(c.Params("id")); err != nil {
		return fail(c, err, "Produit introuvable")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
