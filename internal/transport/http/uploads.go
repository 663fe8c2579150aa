package http

import (
	"log"

	"netshots-service/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// UploadPicture takes a multipart "file" field, stores it in R2, and returns
// the public URL the client can then use as a picture reference.
func (h *Handler) UploadPicture(c *fiber.Ctx) error {
	if h.uploads == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "uploads are not enabled"})
	}

	uid := middleware.UserID(c)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart field 'file' is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read uploaded file"})
	}
	defer file.Close()

	url, err := h.uploads.UploadPicture(c.Context(), file, fileHeader.Filename, uid)
	if err != nil {
		log.Printf("❌ [UPLOAD] Failed for %s (%s): %v", uid, fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "upload failed"})
	}

	log.Printf("✅ [UPLOAD] %s → %s", fileHeader.Filename, url)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
