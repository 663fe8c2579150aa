package http

import (
	"netshots-service/internal/middleware"
	"netshots-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetFeed(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	limit := c.QueryInt("limit", service.DefaultFeedLimit)
	offset := c.QueryInt("offset", 0)

	items, err := h.feed.Feed(c.Context(), uid, limit, offset)
	if err != nil {
		return err
	}

	out := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		out = append(out, fiber.Map{
			"match": item.Match.ToWire(),
			"user":  item.User,
		})
	}
	return c.JSON(out)
}

func (h *Handler) SearchUsers(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	results, err := h.feed.SearchUsers(c.Context(), uid, c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}
