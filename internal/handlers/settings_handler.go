package handlers

import (
	"github.com/gofiber/fiber/v2"

	"beautestore/internal/services"
	"beautestore/internal/store"
)

// SettingsHandler handles HTTP requests for the singleton site
// settings.
type SettingsHandler struct {
	settings *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// RegisterRoutes registers the settings routes. admin guards mutations.
func (h *SettingsHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	settings := router.Group("/settings")
	settings.Get("/", h.HandleList)
	settings.Post("/", admin, h.HandleReplace)
	settings.Put("/:id", admin, h.HandleUpdate)
}

// HandleList returns an array of zero or one settings record.
func (h *SettingsHandler) HandleList(c *fiber.Ctx) error {
	settings, err := h.settings.List()
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(settings)
}

// HandleReplace stores the body as the new singleton record.
func (h *SettingsHandler) HandleReplace(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	settings, err := h.settings.Replace(body)
	if err != nil {
		return fail(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(settings)
}

// HandleUpdate patches the stored singleton; a mismatched id is a 404.
func (h *SettingsHandler) HandleUpdate(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	settings, err := h.settings.Update(c.Params("id"), body)
	if err != nil {
		return fail(c, err, "Paramètres introuvables")
	}
	return c.JSON(settings)
}
