package http

import (
	"log"

	"netshots-service/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetMyProfile(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	profile, err := h.profiles.Get(c.Context(), uid)
	if err != nil {
		return respondError(c, err, "Profile not found")
	}
	return c.JSON(profile.ToWire())
}

// GetProfile fetches any profile; a valid token is still required even for
// a public fetch.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.Get(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err, "Profile not found")
	}
	return c.JSON(profile.ToWire())
}

func (h *Handler) CreateOrUpdateProfile(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.CreateOrUpdate(c.Context(), uid, payload, middleware.Email(c))
	if err != nil {
		log.Printf("❌ [PROFILE] CreateOrUpdate failed for %s: %v", uid, err)
		return respondError(c, err, "Profile not found")
	}
	return c.JSON(profile.ToWire())
}

func (h *Handler) UpdateMyProfile(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Update(c.Context(), uid, payload, middleware.Email(c))
	if err != nil {
		return respondError(c, err, "Profile not found")
	}
	return c.JSON(profile.ToWire())
}

func (h *Handler) DeleteMyProfile(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	if err := h.profiles.Delete(c.Context(), uid); err != nil {
		return respondError(c, err, "Profile not found")
	}
	log.Printf("✅ [PROFILE] Deleted profile %s (matches cascaded)", uid)
	return c.JSON(fiber.Map{"deleted": uid})
}
