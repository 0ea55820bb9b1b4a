package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"beautestore/internal/store"
)

// IntegrationsHandler covers outbound integrations. Email delivery is
// not wired to a provider; messages land in an append-only log file
// that an operator (or a later worker) drains.
type IntegrationsHandler struct {
	messagesLog string
}

// NewIntegrationsHandler creates a new IntegrationsHandler appending to
// messagesLog.
func NewIntegrationsHandler(messagesLog string) *IntegrationsHandler {
	return &IntegrationsHandler{messagesLog: messagesLog}
}

// RegisterRoutes registers the integration routes.
func (h *IntegrationsHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/integrations/email", h.HandleEmail)
}

// HandleEmail appends the message payload, timestamped, as one JSON
// line.
func (h *IntegrationsHandler) HandleEmail(c *fiber.Ctx) error {
	var body store.Record
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	body["created_date"] = time.Now().Format(time.RFC3339)

	line, err := json.Marshal(body)
	if err != nil {
		return fail(c, fmt.Errorf("failed to encode message: %w", err), "")
	}

	f, err := os.OpenFile(h.messagesLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fail(c, fmt.Errorf("failed to open messages log: %w", err), "")
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fail(c, fmt.Errorf("failed to append message: %w", err), "")
	}
	return c.JSON(fiber.Map{"success": true})
}
