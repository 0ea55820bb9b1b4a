package handlers

import (
	"github.com/gofiber/fiber/v2"

	"beautestore/internal/services"
	"beautestore/internal/store"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	catalog *services.CatalogService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(catalog *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// RegisterRoutes registers the category routes. admin guards mutations.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleList)
	categories.Post("/", admin, h.HandleCreate)
	categories.Put("/:id", admin, h.HandleUpdate)
	categories.Delete("/:id", admin, h.HandleDelete)
}

// HandleList returns categories, ranked by display order by default.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(criteriaFromQuery(c))
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(categories)
}

// HandleCreate creates a category from the allowlisted body fields.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	category, err := h.catalog.CreateCategory(body)
	if err != nil {
		return fail(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdate applies a partial patch to a category.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	category, err := h.catalog.UpdateCategory(c.Params("id"), body)
	if err != nil {
		return fail(c, err, "Catégorie introuvable")
	}
	return c.JSON(category)
}

// HandleDelete hard-removes a category.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.Params("id")); err != nil {
		return fail(c, err, "Catégorie introuvable")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
