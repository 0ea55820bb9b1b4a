package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"beautestore/internal/query"
	"beautestore/internal/services"
	"beautestore/internal/store"
)

// criteriaFromQuery turns the query string into list criteria: every
// key except the reserved sort/limit becomes a filter.
func criteriaFromQuery(c *fiber.Ctx) query.Criteria {
	filters := map[string]string{}
	for key, value := range c.Queries() {
		if key == query.KeySort || key == query.KeyLimit {
			continue
		}
		filters[key] = value
	}
	limit, _ := strconv.Atoi(c.Query(query.KeyLimit))
	return query.Criteria{
		Filters: filters,
		Sort:    c.Query(query.KeySort),
		Limit:   limit,
	}
}

// fail converts a service error to the matching HTTP response.
// notFoundMsg is the localized message used for unknown ids.
func fail(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundMsg,
		})
	case errors.Is(err, services.ErrEmptyPatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Aucun champ à mettre à jour",
		})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Statut de commande invalide",
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = "failed on the '" + e.Tag() + "' tag"
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation échouée",
			"errors":  fields,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Erreur interne du serveur",
	})
}

// badBody is the response for an unparseable JSON body.
func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Corps de requête invalide",
		"error":   err.Error(),
	})
}
