package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler stores multipart file uploads on local disk under a
// timestamp-prefixed filename. No deduplication or cleanup happens.
type UploadHandler struct {
	dir string
}

// NewUploadHandler creates a new UploadHandler writing into dir.
func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// RegisterRoutes registers the upload route.
func (h *UploadHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	router.Post("/uploads", admin, h.HandleUpload)
}

// HandleUpload saves the attached file and returns its public URL.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Fichier manquant",
		})
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(),
		strings.ReplaceAll(file.Filename, " ", "-"))
	if err := c.SaveFile(file, filepath.Join(h.dir, name)); err != nil {
		return fail(c, fmt.Errorf("failed to save upload: %w", err), "")
	}

	fileURL := c.Protocol() + "://" + c.Hostname() + "/uploads/" + name
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"file_url": fileURL})
}
