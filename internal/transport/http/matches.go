package http

import (
	"errors"
	"log"

	"netshots-service/internal/middleware"
	"netshots-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetMyMatches(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	matches, err := h.matches.ListByOwner(c.Context(), uid)
	if err != nil {
		return err
	}

	out := make([]map[string]interface{}, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ToWire())
	}
	return c.JSON(out)
}

// GetMatchesForUser lets any authenticated user view another user's history.
func (h *Handler) GetMatchesForUser(c *fiber.Ctx) error {
	matches, err := h.matches.ListByOwner(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}

	out := make([]map[string]interface{}, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ToWire())
	}
	return c.JSON(out)
}

func (h *Handler) CreateMatch(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	match, err := h.matches.Create(c.Context(), uid, payload)
	if err != nil {
		log.Printf("❌ [MATCH] Create failed for %s: %v", uid, err)
		return respondError(c, err, "Match not found")
	}
	return c.JSON(match.ToWire())
}

func (h *Handler) UpdateMatch(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	match, err := h.matches.Update(c.Context(), uid, c.Params("matchId"), payload)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot update a match you do not own"})
		}
		return respondError(c, err, "Match not found")
	}
	return c.JSON(match.ToWire())
}

func (h *Handler) DeleteMatch(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	matchID := c.Params("matchId")

	if err := h.matches.Delete(c.Context(), uid, matchID); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot delete a match you do not own"})
		}
		return respondError(c, err, "Match not found")
	}
	return c.JSON(fiber.Map{"deleted": matchID})
}

// GetMatchResults returns the win/loss outcomes for a user, oldest first.
func (h *Handler) GetMatchResults(c *fiber.Ctx) error {
	results, err := h.matches.Results(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}
